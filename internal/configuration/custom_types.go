package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// thresholdHookFunc returns a mapstructure decode hook that accepts the
// compact "low:high" string form for threshold pairs, e.g.
//
//	driveTemps: 41:52
//
// in addition to the regular {low: 41, high: 52} map form.
func thresholdHookFunc() mapstructure.DecodeHookFuncType {
	thresholdType := reflect.TypeOf(ThresholdConfig{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != thresholdType || f.Kind() != reflect.String {
			return data, nil
		}

		text := strings.TrimSpace(data.(string))
		parts := strings.Split(text, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid threshold pair '%s', expected 'low:high'", text)
		}

		low, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid low threshold in '%s': %v", text, err)
		}
		high, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid high threshold in '%s': %v", text, err)
		}

		return ThresholdConfig{Low: low, High: high}, nil
	}
}
