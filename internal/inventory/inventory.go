// Package inventory reads disk and array state from the host's sectioned
// key-value state files and turns them into typed records. All required
// fields are validated at parse time so the decision engine never has to
// deal with raw strings.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrInventoryMissing indicates that the primary disk inventory source is
// absent or unreadable. No PWM decision may be made in that case.
var ErrInventoryMissing = errors.New("disk inventory source missing")

// ReadDisks loads the primary disk inventory file. Each section describes
// one disk slot with at least name, type, id, temp and spundown keys.
func ReadDisks(path string) ([]DiskRecord, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInventoryMissing, path, err)
	}

	var disks []DiskRecord
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		disks = append(disks, parseDiskSection(section, ""))
	}

	return disks, nil
}

// ReadUnassigned loads the supplementary inventory of disks that are not
// assigned to the array. The file is optional; a missing file yields an
// empty result.
func ReadUnassigned(path string) ([]DiskRecord, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read unassigned device state %s: %v", path, err)
	}

	var disks []DiskRecord
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		disks = append(disks, parseDiskSection(section, DiskTypeUnassigned))
	}

	return disks, nil
}

// ReadStatus loads the global array state file.
func ReadStatus(path string) (SystemStatus, error) {
	file, err := ini.Load(path)
	if err != nil {
		return SystemStatus{}, fmt.Errorf("unable to read system state %s: %v", path, err)
	}

	status := SystemStatus{}
	key := file.Section(ini.DefaultSection).Key("mdResyncPos")
	if pos, err := key.Int64(); err == nil {
		status.MdResyncPos = pos
	}

	return status, nil
}

// parseDiskSection builds a DiskRecord from one state file section.
// forcedType overrides the section's own type key when non-empty.
func parseDiskSection(section *ini.Section, forcedType DiskType) DiskRecord {
	record := DiskRecord{
		ID:   section.Key("id").String(),
		Name: section.Key("name").String(),
	}
	if record.Name == "" {
		// section names keep their surrounding quotes when the host writes
		// them quoted
		record.Name = strings.Trim(section.Name(), `"`)
	}

	if forcedType != "" {
		record.Type = forcedType
	} else {
		record.Type = parseDiskType(section.Key("type").String())
	}

	record.SpunDown = section.Key("spundown").String() == "1"
	record.Temp, record.TempKnown = parseTemp(section.Key("temp").String())

	return record
}

func parseDiskType(value string) DiskType {
	switch strings.ToLower(value) {
	case "parity":
		return DiskTypeParity
	case "data":
		return DiskTypeData
	case "cache":
		return DiskTypeCache
	case "flash":
		return DiskTypeFlash
	default:
		return DiskTypeUnassigned
	}
}

// parseTemp interprets the temp key of a disk section. The host writes
// "*" (or nothing) when the sensor is not ready or the disk is asleep.
func parseTemp(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" || value == "*" {
		return 0, false
	}

	temp, err := strconv.Atoi(value)
	if err != nil || temp < 0 {
		return 0, false
	}

	return temp, true
}
