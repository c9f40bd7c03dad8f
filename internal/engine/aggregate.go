package engine

import "github.com/arrayfan/arrayfan/internal/inventory"

// GroupSummary is the aggregated temperature state of one disk group,
// recomputed from scratch on every run.
type GroupSummary struct {
	// MaxTemp is the highest valid reading among active disks, 0 if none.
	MaxTemp int `json:"maxTemp"`
	// MaxTempDisk names the disk holding that reading, "none" if there is
	// no valid reading. When several disks share the maximum the first
	// one seen keeps it.
	MaxTempDisk string `json:"maxTempDisk"`
	// ActiveCount is the number of spun-up disks in the group.
	ActiveCount int `json:"activeCount"`
	// ReadableCount is the number of active disks with a valid reading.
	// ReadableCount < ActiveCount signals a partial sensor failure.
	ReadableCount int `json:"readableCount"`
	// Size is the total number of disks in the group.
	Size int `json:"size"`
}

// Aggregate folds a disk group into its temperature summary. Spun-down
// disks contribute nothing; active disks without a valid reading count
// toward ActiveCount only.
func Aggregate(group []inventory.DiskRecord) GroupSummary {
	summary := GroupSummary{
		MaxTempDisk: "none",
		Size:        len(group),
	}

	for _, disk := range group {
		if disk.SpunDown {
			continue
		}
		summary.ActiveCount++

		if !disk.TempKnown {
			continue
		}
		summary.ReadableCount++

		if disk.Temp > summary.MaxTemp {
			summary.MaxTemp = disk.Temp
			summary.MaxTempDisk = disk.Name
		}
	}

	return summary
}
