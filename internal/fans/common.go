package fans

import (
	"fmt"

	"github.com/arrayfan/arrayfan/internal/configuration"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	MaxPwmValue = 255
	MinPwmValue = 0
)

type FeatureFlag int

const (
	FeatureRpmSensor   FeatureFlag = 0
	FeatureControlMode FeatureFlag = 1
)

type ControlMode int

const (
	// ControlModeDisabled completely disables control, resulting in a 100% voltage/PWM signal output
	ControlModeDisabled ControlMode = 0
	// ControlModePWM enables manual, fixed speed control via setting the pwm value
	ControlModePWM ControlMode = 1
	// ControlModeAutomatic enables automatic control by the integrated control of the mainboard
	ControlModeAutomatic ControlMode = 2
)

var (
	FanMap = cmap.New[Fan]()
)

type Fan interface {
	GetId() string

	GetConfig() configuration.FanConfig

	// GetPwm returns the current PWM value of this fan
	GetPwm() (int, error)
	SetPwm(pwm int) (err error)

	// GetRpm returns the current RPM value of this fan
	GetRpm() (int, error)

	// GetControlMode returns the current control mode of this fan
	GetControlMode() (ControlMode, error)
	SetControlMode(mode ControlMode) (err error)

	Supports(feature FeatureFlag) bool
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.HwMon != nil {
		return &HwMonFan{
			Label:     config.ID,
			Index:     config.HwMon.Index,
			PwmOutput: config.HwMon.PwmOutput,
			RpmInput:  config.HwMon.RpmInput,
			Config:    config,
		}, nil
	}

	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching fan type for fan: %s", config.ID)
}

// ApplyPwm puts the fan into manual control mode if it is not already,
// then writes the given PWM value.
func ApplyPwm(fan Fan, pwm int) error {
	if fan.Supports(FeatureControlMode) {
		mode, err := fan.GetControlMode()
		if err != nil {
			return fmt.Errorf("fan %s: unable to read control mode: %w", fan.GetId(), err)
		}
		if mode != ControlModePWM {
			if err := fan.SetControlMode(ControlModePWM); err != nil {
				return fmt.Errorf("fan %s: unable to enable manual control: %w", fan.GetId(), err)
			}
		}
	}

	if err := fan.SetPwm(pwm); err != nil {
		return fmt.Errorf("fan %s: unable to set pwm: %w", fan.GetId(), err)
	}
	return nil
}
