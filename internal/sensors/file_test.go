package sensors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arrayfan/arrayfan/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func createFileSensor(t *testing.T, content string) *FileSensor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temp1_input")
	err := os.WriteFile(path, []byte(content), 0o644)
	assert.NoError(t, err)

	return &FileSensor{
		Config: configuration.SensorConfig{
			ID:   "file_sensor",
			File: &configuration.FileSensorConfig{Path: path},
		},
	}
}

func TestFileSensorReadsWholeDegrees(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "46")

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 46, value)
}

func TestFileSensorConvertsMillidegrees(t *testing.T) {
	// GIVEN
	// sysfs thermal files report millidegrees
	sensor := createFileSensor(t, "46500\n")

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 46, value)
}

func TestFileSensorMissingFile(t *testing.T) {
	// GIVEN
	sensor := &FileSensor{
		Config: configuration.SensorConfig{
			ID:   "file_sensor",
			File: &configuration.FileSensorConfig{Path: filepath.Join(t.TempDir(), "nope")},
		},
	}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
}

func TestNewSensorRequiresSubConfig(t *testing.T) {
	// GIVEN
	config := configuration.SensorConfig{ID: "bare"}

	// WHEN
	_, err := NewSensor(config)

	// THEN
	assert.Error(t, err)
}

func TestGetSensorUnknownId(t *testing.T) {
	// WHEN
	_, err := GetSensor("does_not_exist")

	// THEN
	assert.Error(t, err)
}
