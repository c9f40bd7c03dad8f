package fans

import (
	"errors"
	"fmt"

	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/ui"
	"github.com/arrayfan/arrayfan/internal/util"
)

type HwMonFan struct {
	Name      string                  `json:"name"`
	Label     string                  `json:"label"`
	Index     int                     `json:"index"`
	RpmInput  string                  `json:"rpminput"`
	PwmOutput string                  `json:"pwmoutput"`
	Config    configuration.FanConfig `json:"config"`
}

func (fan *HwMonFan) GetId() string {
	return fan.Config.ID
}

func (fan *HwMonFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *HwMonFan) GetPwm() (int, error) {
	return util.ReadIntFromFile(fan.PwmOutput)
}

func (fan *HwMonFan) SetPwm(pwm int) (err error) {
	ui.Debug("Setting %s (%s) to %d ...", fan.Config.ID, fan.Label, pwm)

	return util.WriteIntToFile(pwm, fan.PwmOutput)
}

func (fan *HwMonFan) GetRpm() (int, error) {
	if len(fan.RpmInput) <= 0 {
		return 0, errors.New("no rpm input")
	}
	return util.ReadIntFromFile(fan.RpmInput)
}

func (fan *HwMonFan) GetControlMode() (ControlMode, error) {
	pwmEnabledFilePath := fan.PwmOutput + "_enable"
	value, err := util.ReadIntFromFile(pwmEnabledFilePath)
	if err != nil {
		return ControlModeDisabled, err
	}
	return ControlMode(value), nil
}

// SetControlMode writes the given value to pwmX_enable
// Possible values (unsure if these are true for all scenarios):
// 0 - no control (results in max speed)
// 1 - manual pwm control
// 2 - motherboard pwm control
func (fan *HwMonFan) SetControlMode(mode ControlMode) (err error) {
	pwmEnabledFilePath := fan.PwmOutput + "_enable"
	err = util.WriteIntToFile(int(mode), pwmEnabledFilePath)
	if err == nil {
		currentValue, err := util.ReadIntFromFile(pwmEnabledFilePath)
		if err != nil || ControlMode(currentValue) != mode {
			return errors.New(fmt.Sprintf("PWM mode stuck to %d", currentValue))
		}
	}
	return err
}

func (fan *HwMonFan) Supports(feature FeatureFlag) bool {
	switch feature {
	case FeatureControlMode:
		return true
	case FeatureRpmSensor:
		return len(fan.RpmInput) > 0
	}
	return false
}
