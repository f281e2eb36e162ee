package controller

import (
	"errors"
	"sync"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/sensors"
)

// tracker records the order in which handles are acquired and released
type tracker struct {
	mu     sync.Mutex
	events []string
}

func (t *tracker) record(event string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

func (t *tracker) Events() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string{}, t.events...)
}

type MockSensor struct {
	ID      string
	OpenErr error
	tracker *tracker

	mu     sync.Mutex
	values []sensors.Temperature
	errs   []error
	index  int
}

func (sensor *MockSensor) GetId() string {
	return sensor.ID
}

func (sensor *MockSensor) GetConfig() configuration.SensorConfig {
	return configuration.SensorConfig{ID: sensor.ID}
}

func (sensor *MockSensor) Open() error {
	sensor.tracker.record("sensor.open")
	return sensor.OpenErr
}

// GetValue returns the configured values in order, repeating the last one
func (sensor *MockSensor) GetValue() (sensors.Temperature, error) {
	sensor.mu.Lock()
	defer sensor.mu.Unlock()

	if len(sensor.values) == 0 {
		return 0, sensors.ErrSensorUnavailable
	}
	i := min(sensor.index, len(sensor.values)-1)
	sensor.index++
	if i < len(sensor.errs) && sensor.errs[i] != nil {
		return 0, sensor.errs[i]
	}
	return sensor.values[i], nil
}

func (sensor *MockSensor) Close() error {
	sensor.tracker.record("sensor.close")
	return nil
}

type MockFan struct {
	ID      string
	OpenErr error
	SetErr  error
	tracker *tracker

	mu  sync.Mutex
	set []bool
}

func (fan *MockFan) GetId() string {
	return fan.ID
}

func (fan *MockFan) GetConfig() configuration.FanConfig {
	return configuration.FanConfig{ID: fan.ID}
}

func (fan *MockFan) Open() error {
	fan.tracker.record("fan.open")
	return fan.OpenErr
}

func (fan *MockFan) Set(energized bool) error {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	fan.set = append(fan.set, energized)
	if energized {
		fan.tracker.record("fan.on")
	} else {
		fan.tracker.record("fan.off")
	}
	return fan.SetErr
}

func (fan *MockFan) Close() error {
	fan.tracker.record("fan.close")
	return nil
}

func (fan *MockFan) Calls() []bool {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return append([]bool{}, fan.set...)
}

var errNoDriver = errors.New("no driver")

func newSensor(values ...int) *MockSensor {
	sensor := &MockSensor{ID: "cpu"}
	for _, value := range values {
		sensor.values = append(sensor.values, sensors.Temperature(value))
	}
	return sensor
}
