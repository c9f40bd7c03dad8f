package fans

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/ui"
	"github.com/arrayfan/arrayfan/internal/util"
)

type FileFan struct {
	Config configuration.FanConfig `json:"config"`
}

func (fan *FileFan) GetId() string {
	return fan.Config.ID
}

func (fan *FileFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *FileFan) GetPwm() (result int, err error) {
	filePath, err := fan.resolvePath()
	if err != nil {
		return MinPwmValue, err
	}

	return util.ReadIntFromFile(filePath)
}

func (fan *FileFan) SetPwm(pwm int) (err error) {
	filePath, err := fan.resolvePath()
	if err != nil {
		return err
	}

	err = util.WriteIntToFile(pwm, filePath)
	if err != nil {
		ui.Error("Unable to write to file: %v", filePath)
	}
	return err
}

func (fan *FileFan) GetRpm() (int, error) {
	return 0, nil
}

func (fan *FileFan) GetControlMode() (ControlMode, error) {
	return ControlModePWM, nil
}

func (fan *FileFan) SetControlMode(mode ControlMode) (err error) {
	// nothing to do
	return nil
}

func (fan *FileFan) Supports(feature FeatureFlag) bool {
	switch feature {
	case FeatureControlMode:
		return false
	case FeatureRpmSensor:
		return false
	}
	return false
}

// resolvePath expands a leading "~" in the configured path to the home
// directory of the current user.
func (fan *FileFan) resolvePath() (string, error) {
	filePath := fan.Config.File.Path
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}

	currentUser, err := user.Current()
	if err != nil {
		return "", err
	}

	return filepath.Join(currentUser.HomeDir, filePath[1:]), nil
}
