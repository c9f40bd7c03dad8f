package engine

import (
	"fmt"

	"github.com/arrayfan/arrayfan/internal/configuration"
)

// Source identifies which temperature domain produced a PWM value.
type Source string

const (
	SourceDrives Source = "drives"
	SourceCache  Source = "cache"
	SourceCpu    Source = "cpu"
)

// Evaluation is the result of a single temperature source: the PWM value
// it asks for and a human-readable rationale.
type Evaluation struct {
	Pwm     int    `json:"pwm"`
	Message string `json:"message"`
}

// EvaluateDrives computes the PWM demand of the array disk group.
//
// An active disk without a valid reading means the true maximum is
// unknown, so the evaluation fails toward full cooling instead of
// trusting the readings that are available.
func EvaluateDrives(summary GroupSummary, thresholds configuration.ThresholdConfig, limits PwmLimits) Evaluation {
	switch {
	case summary.Size > 0 && summary.ReadableCount < summary.ActiveCount:
		return Evaluation{
			Pwm:     limits.Max,
			Message: "unable to read all disks",
		}
	case summary.ActiveCount == 0:
		return Evaluation{
			Pwm:     limits.Off,
			Message: "all disks in standby",
		}
	case summary.MaxTemp < thresholds.Low:
		return Evaluation{
			Pwm:     Curve(summary.MaxTemp, thresholds.Low, thresholds.High, limits),
			Message: fmt.Sprintf("hottest disk %s at %d°C is below %d°C", summary.MaxTempDisk, summary.MaxTemp, thresholds.Low),
		}
	case summary.MaxTemp <= thresholds.High:
		return Evaluation{
			Pwm:     Curve(summary.MaxTemp, thresholds.Low, thresholds.High, limits),
			Message: fmt.Sprintf("hottest disk %s at %d°C is within [%d°C, %d°C]", summary.MaxTempDisk, summary.MaxTemp, thresholds.Low, thresholds.High),
		}
	case summary.MaxTemp > thresholds.High:
		return Evaluation{
			Pwm:     Curve(summary.MaxTemp, thresholds.Low, thresholds.High, limits),
			Message: fmt.Sprintf("hottest disk %s at %d°C exceeds %d°C", summary.MaxTempDisk, summary.MaxTemp, thresholds.High),
		}
	default:
		// unreachable with integer comparisons, kept as an explicit
		// catch-all that resolves toward full cooling
		return Evaluation{
			Pwm:     limits.Max,
			Message: "unexpected disk state, forcing maximum cooling",
		}
	}
}

// EvaluateCache computes the PWM demand of the cache disk group. Having
// no active cache disks is normal, not a fault, so that case is silent.
func EvaluateCache(summary GroupSummary, thresholds configuration.ThresholdConfig, limits PwmLimits) Evaluation {
	if summary.ActiveCount == 0 {
		return Evaluation{Pwm: limits.Off}
	}

	return Evaluation{
		Pwm:     Curve(summary.MaxTemp, thresholds.Low, thresholds.High, limits),
		Message: fmt.Sprintf("hottest cache disk %s at %d°C", summary.MaxTempDisk, summary.MaxTemp),
	}
}

// EvaluateCpu computes the PWM demand of the CPU temperature reading.
// The reading itself comes from a pluggable sensor; a failed read is a
// fatal error handled before this point, never substituted with a
// default value.
func EvaluateCpu(temp int, thresholds configuration.ThresholdConfig, limits PwmLimits) Evaluation {
	pwm := Curve(temp, thresholds.Low, thresholds.High, limits)

	var message string
	switch {
	case temp < thresholds.Low:
		message = fmt.Sprintf("CPU at %d°C is below %d°C", temp, thresholds.Low)
	case temp <= thresholds.High:
		message = fmt.Sprintf("CPU at %d°C is within [%d°C, %d°C]", temp, thresholds.Low, thresholds.High)
	default:
		message = fmt.Sprintf("CPU at %d°C exceeds %d°C", temp, thresholds.High)
	}

	return Evaluation{Pwm: pwm, Message: message}
}

// Arbitrate selects the maximum of the three per-source PWM values.
//
// Tie-break rule (fixed, deliberate): cpu wins only when strictly greater
// than both other sources, cache wins only when strictly greater than
// both, and drives is the fallback on any tie.
func Arbitrate(drives Evaluation, cache Evaluation, cpu Evaluation) (int, Source) {
	switch {
	case cpu.Pwm > drives.Pwm && cpu.Pwm > cache.Pwm:
		return cpu.Pwm, SourceCpu
	case cache.Pwm > drives.Pwm && cache.Pwm > cpu.Pwm:
		return cache.Pwm, SourceCache
	default:
		return drives.Pwm, SourceDrives
	}
}
