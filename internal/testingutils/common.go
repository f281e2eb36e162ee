package testingutils

import (
	"sync"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/sensors"
)

// MockSensor returns the given values in order, repeating the last one
type MockSensor struct {
	ID  string
	Err error

	mu     sync.Mutex
	values []sensors.Temperature
	index  int
}

func NewMockSensor(values ...sensors.Temperature) *MockSensor {
	return &MockSensor{
		ID:     "cpu",
		values: values,
	}
}

// NewUnavailableSensor creates a sensor which always fails with err
func NewUnavailableSensor(err error) *MockSensor {
	return &MockSensor{
		ID:  "cpu",
		Err: err,
	}
}

func (sensor *MockSensor) GetId() string {
	return sensor.ID
}

func (sensor *MockSensor) GetConfig() configuration.SensorConfig {
	return configuration.SensorConfig{ID: sensor.ID}
}

func (sensor *MockSensor) Open() error {
	return nil
}

func (sensor *MockSensor) GetValue() (sensors.Temperature, error) {
	sensor.mu.Lock()
	defer sensor.mu.Unlock()

	if sensor.Err != nil {
		return 0, sensor.Err
	}
	if len(sensor.values) == 0 {
		return 0, sensors.ErrSensorUnavailable
	}
	value := sensor.values[min(sensor.index, len(sensor.values)-1)]
	sensor.index++
	return value, nil
}

func (sensor *MockSensor) Close() error {
	return nil
}

// MockFan records every state it is set to
type MockFan struct {
	ID     string
	SetErr error

	mu  sync.Mutex
	set []bool
}

func NewMockFan() *MockFan {
	return &MockFan{ID: "fan"}
}

func (fan *MockFan) GetId() string {
	return fan.ID
}

func (fan *MockFan) GetConfig() configuration.FanConfig {
	return configuration.FanConfig{ID: fan.ID}
}

func (fan *MockFan) Open() error {
	return nil
}

func (fan *MockFan) Set(energized bool) error {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	fan.set = append(fan.set, energized)
	return fan.SetErr
}

func (fan *MockFan) Close() error {
	return nil
}

func (fan *MockFan) Calls() []bool {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return append([]bool{}, fan.set...)
}
