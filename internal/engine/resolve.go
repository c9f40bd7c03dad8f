package engine

import (
	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/arrayfan/arrayfan/internal/inventory"
)

// Resolve splits the raw disk inventory into the two monitored groups.
//
// The array group contains disks whose type is enabled by the policy's
// include flags (parity, data, flash, unassigned) and whose name is not
// excluded. The cache group is built unconditionally in a separate pass:
// every Cache-typed disk that is not excluded belongs to it, independent
// of the array include flags, so cache monitoring keeps working however
// the array flags are set. Cache and array are disjoint management
// domains, so a Cache-typed disk never enters the array group.
//
// Records without an ID describe empty bays and are dropped from both
// groups.
func Resolve(disks []inventory.DiskRecord, policy configuration.PolicyConfig) (array []inventory.DiskRecord, cache []inventory.DiskRecord) {
	excluded := make(map[string]struct{}, len(policy.ExcludeDisks))
	for _, name := range policy.ExcludeDisks {
		excluded[name] = struct{}{}
	}

	for _, disk := range disks {
		if disk.ID == "" {
			// empty bay
			continue
		}
		if _, ok := excluded[disk.Name]; ok {
			continue
		}

		if disk.Type == inventory.DiskTypeCache {
			cache = append(cache, disk)
			continue
		}

		if includesType(policy, disk.Type) {
			array = append(array, disk)
		}
	}

	return array, cache
}

func includesType(policy configuration.PolicyConfig, diskType inventory.DiskType) bool {
	switch diskType {
	case inventory.DiskTypeParity:
		return policy.IncludeParity
	case inventory.DiskTypeData:
		return policy.IncludeData
	case inventory.DiskTypeFlash:
		return policy.IncludeFlash
	case inventory.DiskTypeUnassigned:
		return policy.IncludeUnassigned
	default:
		return false
	}
}
