package engine

import (
	"strings"
	"testing"

	"github.com/arrayfan/arrayfan/internal/inventory"
	"github.com/stretchr/testify/assert"
)

func TestBuildReportContainsAllSections(t *testing.T) {
	// GIVEN
	snapshot := Snapshot{
		Disks: []inventory.DiskRecord{
			{ID: "A", Name: "disk1", Type: inventory.DiskTypeData, Temp: 46, TempKnown: true},
		},
		CpuTemp: 50,
	}
	policy := createPolicy()
	decision := Run(snapshot, policy)

	// WHEN
	report := BuildReport(decision, policy)

	// THEN
	assert.Contains(t, report, "Hottest array disk: disk1 (46°C)")
	assert.Contains(t, report, "Drives:")
	assert.Contains(t, report, "Cache:")
	assert.Contains(t, report, "CPU:")
	assert.Contains(t, report, "Selected source: drives")
	assert.Contains(t, report, "Fan PWM: 125 (49% of 255)")
	assert.NotContains(t, report, "Parity")
}

func TestBuildReportParityLine(t *testing.T) {
	// GIVEN
	snapshot := Snapshot{
		Disks:   []inventory.DiskRecord{{ID: "A", Name: "disk1", Type: inventory.DiskTypeData, SpunDown: true}},
		Status:  inventory.SystemStatus{MdResyncPos: 99},
		CpuTemp: 40,
	}
	policy := createPolicy()
	decision := Run(snapshot, policy)

	// WHEN
	report := BuildReport(decision, policy)

	// THEN
	assert.Contains(t, report, "Parity check or resync in progress")
	assert.Contains(t, report, "Hottest array disk: none")
}

func TestBuildReportOneLinePerSection(t *testing.T) {
	// GIVEN
	snapshot := Snapshot{
		Disks:   []inventory.DiskRecord{{ID: "A", Name: "disk1", Type: inventory.DiskTypeData, Temp: 46, TempKnown: true}},
		CpuTemp: 50,
	}
	policy := createPolicy()
	decision := Run(snapshot, policy)

	// WHEN
	report := BuildReport(decision, policy)

	// THEN
	lines := strings.Split(report, "\n")
	assert.Len(t, lines, 6)
}
