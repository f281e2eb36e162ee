package sensors

import (
	"fmt"
	"os"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/util"
)

// FileSensor reads a single numeric value from a file,
// f.ex. /sys/class/thermal/thermal_zone0/temp
type FileSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor FileSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor FileSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor FileSensor) Open() error {
	filePath, err := util.ExpandPath(sensor.Config.File.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSensorUnavailable, sensor.GetId(), err)
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSensorUnavailable, sensor.GetId(), err)
	}
	return nil
}

func (sensor FileSensor) GetValue() (Temperature, error) {
	filePath, err := util.ExpandPath(sensor.Config.File.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSensorRead, sensor.GetId(), err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSensorRead, sensor.GetId(), err)
	}

	temperature, err := ParseRaw(string(data), sensor.Config.File.Unit)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSensorRead, sensor.GetId(), err)
	}
	return temperature, nil
}

func (sensor FileSensor) Close() error {
	return nil
}
