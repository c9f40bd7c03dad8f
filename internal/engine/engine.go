// Package engine contains the temperature-to-PWM decision pipeline. It is
// pure: given a snapshot of sensor and inventory state it deterministically
// produces a final PWM decision, without touching any hardware.
package engine

import (
	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/inventory"
)

// Snapshot is the complete input of one decision run, read once at the
// start and never refreshed mid-run.
type Snapshot struct {
	Disks   []inventory.DiskRecord `json:"disks"`
	Status  inventory.SystemStatus `json:"status"`
	CpuTemp int                    `json:"cpuTemp"`
}

// Decision is the terminal output of the engine.
type Decision struct {
	Pwm    int    `json:"pwm"`
	Source Source `json:"source"`

	Drives Evaluation `json:"drives"`
	Cache  Evaluation `json:"cache"`
	Cpu    Evaluation `json:"cpu"`

	ArraySummary GroupSummary `json:"arraySummary"`
	CacheSummary GroupSummary `json:"cacheSummary"`
	CpuTemp      int          `json:"cpuTempCelsius"`

	ParityRunning bool `json:"parityRunning"`
}

// Run executes the full decision pipeline on the given snapshot:
// resolve the monitored disk groups, aggregate their temperatures,
// evaluate the three sources and arbitrate between them.
func Run(snapshot Snapshot, policy configuration.PolicyConfig) Decision {
	limits := LimitsFromPolicy(policy)

	arrayGroup, cacheGroup := Resolve(snapshot.Disks, policy)
	arraySummary := Aggregate(arrayGroup)
	cacheSummary := Aggregate(cacheGroup)

	drives := EvaluateDrives(arraySummary, policy.DriveTemps, limits)
	cache := EvaluateCache(cacheSummary, policy.CacheTemps, limits)
	cpu := EvaluateCpu(snapshot.CpuTemp, policy.CpuTemps, limits)

	pwm, source := Arbitrate(drives, cache, cpu)

	return Decision{
		Pwm:           pwm,
		Source:        source,
		Drives:        drives,
		Cache:         cache,
		Cpu:           cpu,
		ArraySummary:  arraySummary,
		CacheSummary:  cacheSummary,
		CpuTemp:       snapshot.CpuTemp,
		ParityRunning: snapshot.Status.ParityRunning(),
	}
}
