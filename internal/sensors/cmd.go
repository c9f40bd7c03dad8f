package sensors

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/util"
)

const cmdTimeout = 2 * time.Second

type CmdSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor *CmdSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor *CmdSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor *CmdSensor) GetValue() (int, error) {
	cmdConfig := sensor.Config.Cmd

	output, err := util.SafeCmdExecution(cmdConfig.Exec, cmdConfig.Args, cmdTimeout)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: %w", sensor.GetId(), err)
	}

	output = strings.TrimSpace(output)
	temp, err := strconv.ParseFloat(output, 64)
	if err != nil {
		return 0, fmt.Errorf("sensor %s: unable to parse temperature '%s': %w", sensor.GetId(), output, err)
	}

	return int(temp), nil
}
