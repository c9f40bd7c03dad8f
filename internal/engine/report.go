package engine

import (
	"fmt"
	"strings"

	"github.com/arrayfan/arrayfan/internal/configuration"
)

// BuildReport renders a decision as the multi-line status report printed
// after each run.
func BuildReport(decision Decision, policy configuration.PolicyConfig) string {
	var lines []string

	if decision.ArraySummary.MaxTempDisk != "none" {
		lines = append(lines, fmt.Sprintf("Hottest array disk: %s (%d°C)",
			decision.ArraySummary.MaxTempDisk, decision.ArraySummary.MaxTemp))
	} else {
		lines = append(lines, "Hottest array disk: none")
	}

	lines = append(lines, fmt.Sprintf("Drives: %s -> PWM %d", decision.Drives.Message, decision.Drives.Pwm))

	if decision.Cache.Message != "" {
		lines = append(lines, fmt.Sprintf("Cache:  %s -> PWM %d", decision.Cache.Message, decision.Cache.Pwm))
	} else {
		lines = append(lines, fmt.Sprintf("Cache:  no active cache disks -> PWM %d", decision.Cache.Pwm))
	}

	lines = append(lines, fmt.Sprintf("CPU:    %s -> PWM %d", decision.Cpu.Message, decision.Cpu.Pwm))

	if decision.ParityRunning {
		lines = append(lines, "Parity check or resync in progress")
	}

	percent := decision.Pwm * 100 / policy.MaxPwm
	lines = append(lines, fmt.Sprintf("Selected source: %s", decision.Source))
	lines = append(lines, fmt.Sprintf("Fan PWM: %d (%d%% of %d)", decision.Pwm, percent, policy.MaxPwm))

	return strings.Join(lines, "\n")
}
