package sensors

import (
	"fmt"
	"time"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/util"
)

const cmdTimeout = 2 * time.Second

// CmdSensor runs an executable that prints the current temperature
type CmdSensor struct {
	Config configuration.SensorConfig `json:"configuration"`
}

func (sensor CmdSensor) GetId() string {
	return sensor.Config.ID
}

func (sensor CmdSensor) GetConfig() configuration.SensorConfig {
	return sensor.Config
}

func (sensor CmdSensor) Open() error {
	exec := sensor.Config.Cmd.Exec
	if _, err := util.CheckFilePermissionsForExecution(exec); err != nil {
		return fmt.Errorf("%w: %s: cannot execute %s: %w", ErrSensorUnavailable, sensor.GetId(), exec, err)
	}
	return nil
}

func (sensor CmdSensor) GetValue() (Temperature, error) {
	exec := sensor.Config.Cmd.Exec
	args := sensor.Config.Cmd.Args
	result, err := util.SafeCmdExecution(exec, args, cmdTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSensorRead, sensor.GetId(), err)
	}

	temperature, err := ParseRaw(result, sensor.Config.Cmd.Unit)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: unable to parse command output: %w", ErrSensorRead, sensor.GetId(), err)
	}
	return temperature, nil
}

func (sensor CmdSensor) Close() error {
	return nil
}
