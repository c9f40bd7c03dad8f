package sensors

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/util"
)

type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor *FileSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor *FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor *FileSensor) GetValue() (int, error) {
	filePath := sensor.Config.File.Path
	// resolve home dir path
	if strings.HasPrefix(filePath, "~") {
		currentUser, err := user.Current()
		if err != nil {
			return 0, err
		}

		filePath = filepath.Join(currentUser.HomeDir, filePath[1:])
	}

	value, err := util.ReadIntFromFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("unable to read file sensor %s: %w", filePath, err)
	}

	// sysfs-style millidegree files and plain degree files are both accepted
	if value >= 1000 {
		value = value / 1000
	}
	return value, nil
}
