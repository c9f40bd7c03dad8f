package inventory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeStateFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)
	return path
}

func TestReadDisks(t *testing.T) {
	// GIVEN
	path := writeStateFile(t, "disks.ini", `
["parity"]
name="parity"
type="Parity"
id="WDC_WD80EFAX_ABC"
temp="38"
spundown="0"

["disk1"]
name="disk1"
type="Data"
id="WDC_WD80EFAX_DEF"
temp="46"
spundown="0"

["cache"]
name="cache"
type="Cache"
id="Samsung_SSD_860_GHI"
temp="41"
spundown="0"
`)

	// WHEN
	disks, err := ReadDisks(path)

	// THEN
	assert.NoError(t, err)
	assert.Len(t, disks, 3)

	assert.Equal(t, "parity", disks[0].Name)
	assert.Equal(t, DiskTypeParity, disks[0].Type)
	assert.Equal(t, "WDC_WD80EFAX_ABC", disks[0].ID)
	assert.Equal(t, 38, disks[0].Temp)
	assert.True(t, disks[0].TempKnown)
	assert.False(t, disks[0].SpunDown)

	assert.Equal(t, DiskTypeData, disks[1].Type)
	assert.Equal(t, DiskTypeCache, disks[2].Type)
}

func TestReadDisksEmptySlot(t *testing.T) {
	// GIVEN
	// an unpopulated slot has no id and no readable temperature
	path := writeStateFile(t, "disks.ini", `
["disk5"]
name="disk5"
type="Data"
id=""
temp="*"
spundown="0"
`)

	// WHEN
	disks, err := ReadDisks(path)

	// THEN
	assert.NoError(t, err)
	assert.Len(t, disks, 1)
	assert.Empty(t, disks[0].ID)
	assert.False(t, disks[0].TempKnown)
}

func TestReadDisksSpunDown(t *testing.T) {
	// GIVEN
	path := writeStateFile(t, "disks.ini", `
["disk1"]
name="disk1"
type="Data"
id="WDC_WD80EFAX_DEF"
temp="*"
spundown="1"
`)

	// WHEN
	disks, err := ReadDisks(path)

	// THEN
	assert.NoError(t, err)
	assert.True(t, disks[0].SpunDown)
	assert.False(t, disks[0].TempKnown)
}

func TestReadDisksUnknownTypeBecomesUnassigned(t *testing.T) {
	// GIVEN
	path := writeStateFile(t, "disks.ini", `
["disk1"]
name="disk1"
type="SomethingNew"
id="X"
temp="30"
spundown="0"
`)

	// WHEN
	disks, err := ReadDisks(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, DiskTypeUnassigned, disks[0].Type)
}

func TestReadDisksNegativeTempIsUnknown(t *testing.T) {
	// GIVEN
	path := writeStateFile(t, "disks.ini", `
["disk1"]
name="disk1"
type="Data"
id="X"
temp="-1"
spundown="0"
`)

	// WHEN
	disks, err := ReadDisks(path)

	// THEN
	assert.NoError(t, err)
	assert.False(t, disks[0].TempKnown)
}

func TestReadDisksMissingFile(t *testing.T) {
	// WHEN
	disks, err := ReadDisks(filepath.Join(t.TempDir(), "nope.ini"))

	// THEN
	assert.Nil(t, disks)
	assert.True(t, errors.Is(err, ErrInventoryMissing))
}

func TestReadUnassignedMissingFileIsEmpty(t *testing.T) {
	// WHEN
	disks, err := ReadUnassigned(filepath.Join(t.TempDir(), "devs.ini"))

	// THEN
	assert.NoError(t, err)
	assert.Empty(t, disks)
}

func TestReadUnassignedForcesType(t *testing.T) {
	// GIVEN
	// devs.ini sections carry no type key, every entry is unassigned
	path := writeStateFile(t, "devs.ini", `
["dev1"]
name="dev1"
id="TOSHIBA_HDWG11A_JKL"
temp="39"
spundown="0"
`)

	// WHEN
	disks, err := ReadUnassigned(path)

	// THEN
	assert.NoError(t, err)
	assert.Len(t, disks, 1)
	assert.Equal(t, DiskTypeUnassigned, disks[0].Type)
	assert.Equal(t, "dev1", disks[0].Name)
}

func TestReadStatus(t *testing.T) {
	// GIVEN
	path := writeStateFile(t, "var.ini", `
mdResyncPos="123456"
mdState="STARTED"
`)

	// WHEN
	status, err := ReadStatus(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, int64(123456), status.MdResyncPos)
	assert.True(t, status.ParityRunning())
}

func TestReadStatusIdle(t *testing.T) {
	// GIVEN
	path := writeStateFile(t, "var.ini", `
mdResyncPos="0"
`)

	// WHEN
	status, err := ReadStatus(path)

	// THEN
	assert.NoError(t, err)
	assert.False(t, status.ParityRunning())
}
