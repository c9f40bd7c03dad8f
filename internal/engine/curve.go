package engine

import "github.com/arrayfan/arrayfan/internal/configuration"

// PwmLimits are the global output bounds of the fan curve.
type PwmLimits struct {
	Min int `json:"min"`
	Max int `json:"max"`
	Off int `json:"off"`
}

// LimitsFromPolicy extracts the PWM bounds of the given policy.
func LimitsFromPolicy(policy configuration.PolicyConfig) PwmLimits {
	return PwmLimits{
		Min: policy.MinPwm,
		Max: policy.MaxPwm,
		Off: policy.OffPwm,
	}
}

// Curve maps a temperature to a PWM value using a piecewise linear curve:
// below low the fan is off, above high it runs at Max, in between the
// value rises from Min in equal steps per degree.
//
// The per-degree step uses truncating integer division, so when
// (Max - Min) is not evenly divisible by (high - low) the value at
// temp == high stays below Max and jumps to Max one degree later. This
// matches the established behavior of the curve and is covered by tests.
//
// high == low is rejected at configuration validation time and must not
// reach this function.
func Curve(temp int, low int, high int, limits PwmLimits) int {
	if temp < low {
		return limits.Off
	}
	if temp > high {
		return limits.Max
	}

	step := (limits.Max - limits.Min) / (high - low)
	return limits.Min + (temp-low)*step
}
