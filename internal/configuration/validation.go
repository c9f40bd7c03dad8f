package configuration

import (
	"errors"
	"fmt"

	"github.com/arrayfan/arrayfan/internal/util"
	"golang.org/x/exp/slices"
)

// Validate checks the current configuration for errors that would make a
// decision run unsafe or undefined. It must pass before any PWM value is
// computed or written.
func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	err := validatePolicy(&config.Policy)
	if err != nil {
		return err
	}
	err = validateCpuSensor(config)
	if err != nil {
		return err
	}
	err = validateFans(config)
	if err != nil {
		return err
	}

	if config.CpuSensor.Cmd != nil && len(path) > 0 {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return errors.New(fmt.Sprintf("Config file '%s' has invalid permissions: %s", path, err))
		}
	}

	return nil
}

func validatePolicy(policy *PolicyConfig) error {
	thresholds := map[string]ThresholdConfig{
		"driveTemps": policy.DriveTemps,
		"cacheTemps": policy.CacheTemps,
		"cpuTemps":   policy.CpuTemps,
	}
	for name, t := range thresholds {
		// high == low would make the curve step division undefined, so
		// it is rejected here and never reaches evaluation
		if t.High <= t.Low {
			return errors.New(fmt.Sprintf("Policy %s: high threshold (%d) must be greater than low threshold (%d)", name, t.High, t.Low))
		}
	}

	if policy.MinPwm < 0 {
		return errors.New(fmt.Sprintf("Policy: minPwm must not be negative, got %d", policy.MinPwm))
	}
	if policy.MaxPwm > 255 {
		return errors.New(fmt.Sprintf("Policy: maxPwm must not exceed 255, got %d", policy.MaxPwm))
	}
	if policy.MinPwm >= policy.MaxPwm {
		return errors.New(fmt.Sprintf("Policy: minPwm (%d) must be less than maxPwm (%d)", policy.MinPwm, policy.MaxPwm))
	}
	if policy.OffPwm < 0 || policy.OffPwm > policy.MinPwm {
		return errors.New(fmt.Sprintf("Policy: offPwm (%d) must be in [0, minPwm]", policy.OffPwm))
	}

	return nil
}

func validateCpuSensor(config *Configuration) error {
	sensorConfig := config.CpuSensor

	subConfigs := 0
	if sensorConfig.HwMon != nil {
		subConfigs++
	}
	if sensorConfig.File != nil {
		subConfigs++
	}
	if sensorConfig.Cmd != nil {
		subConfigs++
	}
	if subConfigs > 1 {
		return errors.New(fmt.Sprintf("Sensor %s: only one sensor type can be used per sensor definition block", sensorConfig.ID))
	}
	if subConfigs <= 0 {
		return errors.New(fmt.Sprintf("Sensor %s: sub-configuration for the cpu sensor is missing, use one of: hwmon | file | cmd", sensorConfig.ID))
	}

	if sensorConfig.HwMon != nil {
		if sensorConfig.HwMon.Index <= 0 {
			return errors.New(fmt.Sprintf("Sensor %s: invalid index, must be >= 1", sensorConfig.ID))
		}
	}

	if sensorConfig.Cmd != nil {
		if len(sensorConfig.Cmd.Exec) <= 0 {
			return errors.New(fmt.Sprintf("Sensor %s: cmd executable is missing", sensorConfig.ID))
		}
	}

	return nil
}

func validateFans(config *Configuration) error {
	var ids []string
	for _, fanConfig := range config.Fans {
		if slices.Contains(ids, fanConfig.ID) {
			return errors.New(fmt.Sprintf("duplicate fan id detected: %s", fanConfig.ID))
		}
		ids = append(ids, fanConfig.ID)

		subConfigs := 0
		if fanConfig.HwMon != nil {
			subConfigs++
		}
		if fanConfig.File != nil {
			subConfigs++
		}

		if subConfigs > 1 {
			return errors.New(fmt.Sprintf("Fan %s: only one fan type can be used per fan definition block", fanConfig.ID))
		}
		if subConfigs <= 0 {
			return errors.New(fmt.Sprintf("Fan %s: sub-configuration for fan is missing, use one of: hwmon | file", fanConfig.ID))
		}

		if fanConfig.HwMon != nil {
			if fanConfig.HwMon.Index <= 0 {
				return errors.New(fmt.Sprintf("Fan %s: invalid index, must be >= 1", fanConfig.ID))
			}
		}

		if fanConfig.File != nil {
			if len(fanConfig.File.Path) <= 0 {
				return errors.New(fmt.Sprintf("Fan %s: no file path provided", fanConfig.ID))
			}
		}
	}

	if len(config.Fans) <= 0 {
		return errors.New("no fan configurations found")
	}

	return nil
}
