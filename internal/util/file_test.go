package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadIntFromFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "value")
	err := os.WriteFile(path, []byte(" 42\n"), 0o644)
	assert.NoError(t, err)

	// WHEN
	value, err := ReadIntFromFile(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestReadIntFromEmptyFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "value")
	err := os.WriteFile(path, []byte(""), 0o644)
	assert.NoError(t, err)

	// WHEN
	_, err = ReadIntFromFile(path)

	// THEN
	assert.Error(t, err)
}

func TestReadIntFromMissingFile(t *testing.T) {
	// WHEN
	value, err := ReadIntFromFile(filepath.Join(t.TempDir(), "nope"))

	// THEN
	assert.Error(t, err)
	assert.Equal(t, -1, value)
}

func TestWriteIntToFile(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "pwm1")

	// WHEN
	err := WriteIntToFile(128, path)

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "128", string(content))
}

func TestWriteFileAtomic(t *testing.T) {
	// GIVEN
	path := filepath.Join(t.TempDir(), "status.json")
	err := os.WriteFile(path, []byte("old"), 0o644)
	assert.NoError(t, err)

	// WHEN
	err = WriteFileAtomic(path, []byte(`{"pwm":125}`))

	// THEN
	assert.NoError(t, err)
	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, `{"pwm":125}`, string(content))
}
