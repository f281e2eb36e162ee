package sensors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rpifan/rpifan/internal/configuration"
)

var (
	// ErrSensorUnavailable indicates that the sensor could not be found at all,
	// f.ex. because its driver is not loaded yet. Retrying later may succeed.
	ErrSensorUnavailable = errors.New("sensor unavailable")
	// ErrSensorRead indicates that the sensor was found, but a reading failed.
	ErrSensorRead = errors.New("sensor read failed")
)

type Sensor interface {
	GetId() string

	GetConfig() configuration.SensorConfig

	// Open acquires the sensor handle
	Open() error

	// GetValue returns the current temperature of this sensor
	GetValue() (Temperature, error)

	// Close releases the sensor handle
	Close() error
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.File != nil {
		return &FileSensor{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSensor{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.ID)
}

// Temperature in tenths of a degree celsius
type Temperature int

// Degrees returns the whole degrees, truncated towards zero
func (t Temperature) Degrees() int {
	return int(t) / 10
}

func (t Temperature) Celsius() float64 {
	return float64(t) / 10
}

// String formats the temperature with exactly one (truncated) decimal, f.ex. "42.5"
func (t Temperature) String() string {
	sign := ""
	whole := int(t) / 10
	fraction := int(t) % 10
	if t < 0 {
		sign = "-"
		whole = -whole
		fraction = -fraction
	}
	return fmt.Sprintf("%s%d.%d", sign, whole, fraction)
}

// FromRaw converts a raw sensor value of the given unit
func FromRaw(raw float64, unit configuration.TemperatureUnit) Temperature {
	switch unit {
	case configuration.TemperatureUnitCelsius:
		return Temperature(math.Round(raw * 10))
	case configuration.TemperatureUnitDeciCelsius:
		return Temperature(math.Round(raw))
	default:
		return Temperature(int(math.Round(raw)) / 100)
	}
}

// ParseRaw parses the textual output of a sensor
func ParseRaw(text string, unit configuration.TemperatureUnit) (Temperature, error) {
	raw, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	return FromRaw(raw, unit), nil
}

// Sample is the outcome of a single sensor reading
type Sample struct {
	Value Temperature
	Err   error
}

func (s Sample) Available() bool {
	return s.Err == nil
}

func Unavailable(err error) Sample {
	return Sample{Err: err}
}

// Read takes a fresh sample from the given sensor
func Read(sensor Sensor) Sample {
	value, err := sensor.GetValue()
	if err != nil {
		return Unavailable(err)
	}
	return Sample{Value: value}
}
