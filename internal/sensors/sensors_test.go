package sensors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func createFileSensor(t *testing.T, content string, unit configuration.TemperatureUnit) Sensor {
	filePath := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(filePath, []byte(content), 0644)
	assert.NoError(t, err)

	sensor, err := NewSensor(configuration.SensorConfig{
		ID: "cpu",
		File: &configuration.FileSensorConfig{
			Path: filePath,
			Unit: unit,
		},
	})
	assert.NoError(t, err)
	return sensor
}

func TestNewSensor_NoSubConfig(t *testing.T) {
	// WHEN
	_, err := NewSensor(configuration.SensorConfig{ID: "cpu"})

	// THEN
	assert.EqualError(t, err, "no matching sensor type for sensor: cpu")
}

func TestFileSensor_GetValue_MilliCelsius(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "48312\n", configuration.TemperatureUnitMilliCelsius)

	// WHEN
	assert.NoError(t, sensor.Open())
	result, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, Temperature(483), result)
}

func TestFileSensor_GetValue_DefaultUnit(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "42599", "")

	// WHEN
	result, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, Temperature(425), result)
}

func TestFileSensor_GetValue_Celsius(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "48.3", configuration.TemperatureUnitCelsius)

	// WHEN
	result, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, Temperature(483), result)
}

func TestFileSensor_GetValue_Garbage(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "hot", configuration.TemperatureUnitMilliCelsius)

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.ErrorIs(t, err, ErrSensorRead)
	assert.False(t, errors.Is(err, ErrSensorUnavailable))
}

func TestFileSensor_Open_Missing(t *testing.T) {
	// GIVEN
	sensor, err := NewSensor(configuration.SensorConfig{
		ID: "cpu",
		File: &configuration.FileSensorConfig{
			Path: filepath.Join(t.TempDir(), "thermal_zone9", "temp"),
		},
	})
	assert.NoError(t, err)

	// WHEN
	err = sensor.Open()

	// THEN
	assert.ErrorIs(t, err, ErrSensorUnavailable)
}

func TestRead_Unavailable(t *testing.T) {
	// GIVEN
	sensor := createFileSensor(t, "", configuration.TemperatureUnitMilliCelsius)

	// WHEN
	sample := Read(sensor)

	// THEN
	assert.False(t, sample.Available())
	assert.ErrorIs(t, sample.Err, ErrSensorRead)
}

func TestTemperature_String(t *testing.T) {
	tests := []struct {
		value    Temperature
		expected string
	}{
		{value: 425, expected: "42.5"},
		{value: 500, expected: "50.0"},
		{value: 9, expected: "0.9"},
		{value: 0, expected: "0.0"},
		{value: -5, expected: "-0.5"},
		{value: -123, expected: "-12.3"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestTemperature_Degrees(t *testing.T) {
	assert.Equal(t, 44, Temperature(449).Degrees())
	assert.Equal(t, 45, Temperature(450).Degrees())
	assert.Equal(t, 0, Temperature(-5).Degrees())
}

func TestFromRaw(t *testing.T) {
	assert.Equal(t, Temperature(449), FromRaw(44999, configuration.TemperatureUnitMilliCelsius))
	assert.Equal(t, Temperature(449), FromRaw(449, configuration.TemperatureUnitDeciCelsius))
	assert.Equal(t, Temperature(449), FromRaw(44.9, configuration.TemperatureUnitCelsius))
}
