package configuration

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// TemperatureUnit is the unit of the raw value reported by a sensor.
type TemperatureUnit string

const (
	// TemperatureUnitMilliCelsius is used by the linux thermal and hwmon subsystems
	TemperatureUnitMilliCelsius TemperatureUnit = "millicelsius"
	TemperatureUnitDeciCelsius  TemperatureUnit = "decicelsius"
	TemperatureUnitCelsius      TemperatureUnit = "celsius"
)

var TemperatureUnits = []TemperatureUnit{
	TemperatureUnitMilliCelsius,
	TemperatureUnitDeciCelsius,
	TemperatureUnitCelsius,
}

// ParseTemperatureUnit accepts the unit names case-insensitively,
// an empty value resolves to millicelsius.
func ParseTemperatureUnit(value string) (TemperatureUnit, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return TemperatureUnitMilliCelsius, nil
	}
	for _, unit := range TemperatureUnits {
		if string(unit) == value {
			return unit, nil
		}
	}
	return "", fmt.Errorf("unknown temperature unit '%s', use one of: millicelsius | decicelsius | celsius", value)
}

// TemperatureUnitHookFunc returns a mapstructure decode hook function for TemperatureUnit.
func TemperatureUnitHookFunc() mapstructure.DecodeHookFuncType {
	unitType := reflect.TypeOf(TemperatureUnit(""))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {

		if t != unitType {
			return data, nil
		}

		value, ok := data.(string)
		if !ok {
			return data, nil
		}

		return ParseTemperatureUnit(value)
	}
}
