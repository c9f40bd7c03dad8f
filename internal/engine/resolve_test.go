package engine

import (
	"testing"

	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/inventory"
	"github.com/stretchr/testify/assert"
)

func createPolicy() configuration.PolicyConfig {
	return configuration.PolicyConfig{
		IncludeParity: true,
		IncludeData:   true,
		IncludeCache:  true,
		DriveTemps:    configuration.ThresholdConfig{Low: 41, High: 52},
		CacheTemps:    configuration.ThresholdConfig{Low: 50, High: 65},
		CpuTemps:      configuration.ThresholdConfig{Low: 55, High: 75},
		MinPwm:        25,
		MaxPwm:        255,
		OffPwm:        0,
	}
}

func TestResolveSplitsArrayAndCache(t *testing.T) {
	// GIVEN
	disks := []inventory.DiskRecord{
		{ID: "WDC_A", Name: "parity", Type: inventory.DiskTypeParity},
		{ID: "WDC_B", Name: "disk1", Type: inventory.DiskTypeData},
		{ID: "SAM_C", Name: "cache", Type: inventory.DiskTypeCache},
	}
	policy := createPolicy()

	// WHEN
	array, cache := Resolve(disks, policy)

	// THEN
	assert.Len(t, array, 2)
	assert.Len(t, cache, 1)
	assert.Equal(t, "cache", cache[0].Name)
}

func TestResolveDropsEmptySlots(t *testing.T) {
	// GIVEN
	disks := []inventory.DiskRecord{
		{ID: "", Name: "disk2", Type: inventory.DiskTypeData},
		{ID: "WDC_B", Name: "disk1", Type: inventory.DiskTypeData},
	}
	policy := createPolicy()

	// WHEN
	array, cache := Resolve(disks, policy)

	// THEN
	assert.Len(t, array, 1)
	assert.Empty(t, cache)
	assert.Equal(t, "disk1", array[0].Name)
}

func TestResolveHonorsExclusions(t *testing.T) {
	// GIVEN
	disks := []inventory.DiskRecord{
		{ID: "WDC_A", Name: "parity", Type: inventory.DiskTypeParity},
		{ID: "WDC_B", Name: "disk1", Type: inventory.DiskTypeData},
		{ID: "SAM_C", Name: "cache", Type: inventory.DiskTypeCache},
	}
	policy := createPolicy()
	policy.ExcludeDisks = []string{"disk1", "cache"}

	// WHEN
	array, cache := Resolve(disks, policy)

	// THEN
	assert.Len(t, array, 1)
	assert.Equal(t, "parity", array[0].Name)
	assert.Empty(t, cache)
}

func TestResolveCacheNeverEntersArray(t *testing.T) {
	// GIVEN
	// even with every array include flag enabled, a cache disk must not
	// fall through into the array group
	disks := []inventory.DiskRecord{
		{ID: "SAM_C", Name: "cache", Type: inventory.DiskTypeCache},
	}
	policy := createPolicy()
	policy.IncludeFlash = true
	policy.IncludeUnassigned = true

	// WHEN
	array, cache := Resolve(disks, policy)

	// THEN
	assert.Empty(t, array)
	assert.Len(t, cache, 1)
}

func TestResolveCacheIgnoresIncludeFlags(t *testing.T) {
	// GIVEN
	// the cache group is built in its own pass, so cache monitoring keeps
	// working with every include flag disabled
	disks := []inventory.DiskRecord{
		{ID: "SAM_C", Name: "cache", Type: inventory.DiskTypeCache},
	}
	policy := createPolicy()
	policy.IncludeParity = false
	policy.IncludeData = false
	policy.IncludeCache = false

	// WHEN
	array, cache := Resolve(disks, policy)

	// THEN
	assert.Empty(t, array)
	assert.Len(t, cache, 1)
	assert.Equal(t, "cache", cache[0].Name)
}

func TestResolveGroupsAreDisjoint(t *testing.T) {
	// GIVEN
	disks := []inventory.DiskRecord{
		{ID: "A", Name: "parity", Type: inventory.DiskTypeParity},
		{ID: "B", Name: "disk1", Type: inventory.DiskTypeData},
		{ID: "C", Name: "cache", Type: inventory.DiskTypeCache},
		{ID: "D", Name: "flash", Type: inventory.DiskTypeFlash},
		{ID: "E", Name: "dev1", Type: inventory.DiskTypeUnassigned},
	}

	flagCombos := []configuration.PolicyConfig{
		createPolicy(),
		{IncludeCache: true},
		{IncludeParity: true, IncludeData: true, IncludeFlash: true, IncludeUnassigned: true, IncludeCache: true},
		{IncludeFlash: true},
	}

	for _, policy := range flagCombos {
		// WHEN
		array, cache := Resolve(disks, policy)

		// THEN
		seen := map[string]struct{}{}
		for _, disk := range array {
			seen[disk.ID] = struct{}{}
		}
		for _, disk := range cache {
			_, duplicate := seen[disk.ID]
			assert.False(t, duplicate, "disk %s in both groups", disk.ID)
		}
	}
}

func TestResolveIncludeFlags(t *testing.T) {
	// GIVEN
	disks := []inventory.DiskRecord{
		{ID: "A", Name: "parity", Type: inventory.DiskTypeParity},
		{ID: "B", Name: "disk1", Type: inventory.DiskTypeData},
		{ID: "D", Name: "flash", Type: inventory.DiskTypeFlash},
		{ID: "E", Name: "dev1", Type: inventory.DiskTypeUnassigned},
	}
	policy := configuration.PolicyConfig{
		IncludeFlash:      true,
		IncludeUnassigned: true,
	}

	// WHEN
	array, _ := Resolve(disks, policy)

	// THEN
	assert.Len(t, array, 2)
	assert.Equal(t, "flash", array[0].Name)
	assert.Equal(t, "dev1", array[1].Name)
}
