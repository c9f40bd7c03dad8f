package sensors

import (
	"fmt"

	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/util"
)

type HwmonSensor struct {
	Label  string                     `json:"label"`
	Index  int                        `json:"index"`
	Input  string                     `json:"string"`
	Max    int                        `json:"max"`
	Min    int                        `json:"min"`
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor *HwmonSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor *HwmonSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

// GetValue reads the sysfs temperature input of this sensor. The kernel
// reports millidegrees, which are converted to whole degrees here.
func (sensor *HwmonSensor) GetValue() (int, error) {
	millidegrees, err := util.ReadIntFromFile(sensor.Input)
	if err != nil {
		return 0, fmt.Errorf("unable to read hwmon sensor %s: %w", sensor.Input, err)
	}
	return millidegrees / 1000, nil
}
