package configuration

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeThreshold(t *testing.T, input interface{}) (interface{}, error) {
	t.Helper()
	hook := thresholdHookFunc()
	return hook(reflect.TypeOf(input), reflect.TypeOf(ThresholdConfig{}), input)
}

func TestThresholdHookParsesPair(t *testing.T) {
	// WHEN
	result, err := decodeThreshold(t, "41:52")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, ThresholdConfig{Low: 41, High: 52}, result)
}

func TestThresholdHookTrimsWhitespace(t *testing.T) {
	// WHEN
	result, err := decodeThreshold(t, " 50 : 65 ")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, ThresholdConfig{Low: 50, High: 65}, result)
}

func TestThresholdHookRejectsMalformedPair(t *testing.T) {
	// WHEN
	_, err := decodeThreshold(t, "41")

	// THEN
	assert.Error(t, err)
}

func TestThresholdHookRejectsNonNumeric(t *testing.T) {
	// WHEN
	_, err := decodeThreshold(t, "low:high")

	// THEN
	assert.Error(t, err)
}

func TestThresholdHookIgnoresOtherTypes(t *testing.T) {
	// GIVEN
	hook := thresholdHookFunc()
	input := 42

	// WHEN
	result, err := hook(reflect.TypeOf(input), reflect.TypeOf(""), input)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 42, result)
}
