package sensors

import (
	"fmt"

	"github.com/arrayfan/arrayfan/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

var (
	SensorMap = cmap.New[Sensor]()
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// GetValue returns the current temperature of this sensor in whole
	// degrees Celsius
	GetValue() (int, error)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.HwMon != nil {
		return &HwmonSensor{
			Index:  config.HwMon.Index,
			Input:  config.HwMon.TempInput,
			Config: config,
		}, nil
	}

	if config.File != nil {
		return &FileSensor{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.ID)
}

// GetSensor returns the registered sensor with the given id.
func GetSensor(id string) (Sensor, error) {
	sensor, ok := SensorMap.Get(id)
	if !ok {
		return nil, fmt.Errorf("no sensor with id found: %s", id)
	}
	return sensor, nil
}
