package engine

import (
	"testing"

	"github.com/arrayfan/arrayfan/internal/inventory"
	"github.com/stretchr/testify/assert"
)

func TestRunTypicalWarmArray(t *testing.T) {
	// GIVEN
	// hottest array disk at 46°C, cool cache and CPU
	snapshot := Snapshot{
		Disks: []inventory.DiskRecord{
			{ID: "A", Name: "parity", Type: inventory.DiskTypeParity, Temp: 44, TempKnown: true},
			{ID: "B", Name: "disk1", Type: inventory.DiskTypeData, Temp: 46, TempKnown: true},
			{ID: "C", Name: "cache", Type: inventory.DiskTypeCache, Temp: 48, TempKnown: true},
		},
		CpuTemp: 50,
	}
	policy := createPolicy()

	// WHEN
	decision := Run(snapshot, policy)

	// THEN
	assert.Equal(t, 125, decision.Pwm)
	assert.Equal(t, SourceDrives, decision.Source)
	assert.Equal(t, 46, decision.ArraySummary.MaxTemp)
	assert.Equal(t, "disk1", decision.ArraySummary.MaxTempDisk)
	assert.Equal(t, 0, decision.Cache.Pwm)
	assert.Equal(t, 0, decision.Cpu.Pwm)
}

func TestRunAllDisksStandbyHotCpu(t *testing.T) {
	// GIVEN
	// every disk spun down, CPU above its high threshold
	snapshot := Snapshot{
		Disks: []inventory.DiskRecord{
			{ID: "A", Name: "parity", Type: inventory.DiskTypeParity, SpunDown: true},
			{ID: "B", Name: "disk1", Type: inventory.DiskTypeData, SpunDown: true},
			{ID: "C", Name: "cache", Type: inventory.DiskTypeCache, SpunDown: true},
		},
		CpuTemp: 80,
	}
	policy := createPolicy()

	// WHEN
	decision := Run(snapshot, policy)

	// THEN
	assert.Equal(t, 255, decision.Pwm)
	assert.Equal(t, SourceCpu, decision.Source)
	assert.Equal(t, 0, decision.Drives.Pwm)
	assert.Equal(t, "all disks in standby", decision.Drives.Message)
}

func TestRunPartialSensorFailureForcesMax(t *testing.T) {
	// GIVEN
	// two active array disks, one without a valid reading
	snapshot := Snapshot{
		Disks: []inventory.DiskRecord{
			{ID: "A", Name: "disk1", Type: inventory.DiskTypeData, Temp: 35, TempKnown: true},
			{ID: "B", Name: "disk2", Type: inventory.DiskTypeData, TempKnown: false},
		},
		CpuTemp: 40,
	}
	policy := createPolicy()

	// WHEN
	decision := Run(snapshot, policy)

	// THEN
	assert.Equal(t, 255, decision.Pwm)
	assert.Equal(t, SourceDrives, decision.Source)
	assert.Equal(t, "unable to read all disks", decision.Drives.Message)
}

func TestRunEmptySlotsAreIgnored(t *testing.T) {
	// GIVEN
	snapshot := Snapshot{
		Disks: []inventory.DiskRecord{
			{ID: "", Name: "disk5", Type: inventory.DiskTypeData, TempKnown: false},
			{ID: "A", Name: "disk1", Type: inventory.DiskTypeData, Temp: 46, TempKnown: true},
		},
		CpuTemp: 40,
	}
	policy := createPolicy()

	// WHEN
	decision := Run(snapshot, policy)

	// THEN
	// the empty slot must not trigger the unreadable-disk safety path
	assert.Equal(t, 125, decision.Pwm)
	assert.Equal(t, SourceDrives, decision.Source)
	assert.Equal(t, 1, decision.ArraySummary.Size)
}

func TestRunHotCacheDiskWithIncludeCacheDisabled(t *testing.T) {
	// GIVEN
	// a cache disk above its high threshold must drive full cooling no
	// matter how the array include flags are set
	snapshot := Snapshot{
		Disks: []inventory.DiskRecord{
			{ID: "C", Name: "cache", Type: inventory.DiskTypeCache, Temp: 70, TempKnown: true},
		},
		CpuTemp: 40,
	}
	policy := createPolicy()
	policy.IncludeCache = false

	// WHEN
	decision := Run(snapshot, policy)

	// THEN
	assert.Equal(t, 255, decision.Pwm)
	assert.Equal(t, SourceCache, decision.Source)
	assert.Equal(t, 70, decision.CacheSummary.MaxTemp)
}

func TestRunIsDeterministic(t *testing.T) {
	// GIVEN
	snapshot := Snapshot{
		Disks: []inventory.DiskRecord{
			{ID: "A", Name: "disk1", Type: inventory.DiskTypeData, Temp: 46, TempKnown: true},
			{ID: "C", Name: "cache", Type: inventory.DiskTypeCache, Temp: 58, TempKnown: true},
		},
		Status:  inventory.SystemStatus{MdResyncPos: 12345},
		CpuTemp: 65,
	}
	policy := createPolicy()

	// WHEN
	first := Run(snapshot, policy)
	second := Run(snapshot, policy)

	// THEN
	assert.Equal(t, first, second)
}

func TestRunSurfacesParityState(t *testing.T) {
	// GIVEN
	snapshot := Snapshot{
		Disks:   []inventory.DiskRecord{{ID: "A", Name: "disk1", Type: inventory.DiskTypeData, Temp: 30, TempKnown: true}},
		Status:  inventory.SystemStatus{MdResyncPos: 1},
		CpuTemp: 40,
	}
	policy := createPolicy()

	// WHEN
	decision := Run(snapshot, policy)

	// THEN
	// the parity indicator is reported but never changes the PWM value
	assert.True(t, decision.ParityRunning)
	assert.Equal(t, 0, decision.Pwm)
}
