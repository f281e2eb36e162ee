package endpoints

import (
	"os"

	"github.com/rpifan/rpifan/internal/controller"
	"github.com/rpifan/rpifan/internal/sensors"
)

const (
	StatusName    = "status"
	ThresholdName = "threshold_temp"
)

// StateAccess is the part of the control state visible to endpoints
type StateAccess interface {
	Snapshot() controller.Snapshot
	SetThreshold(tenths int) error
}

// Endpoint is a named pseudo-file
type Endpoint interface {
	Name() string
	Mode() os.FileMode
	// Content renders the current content
	Content() []byte
	Write(payload []byte) error
}

// StatusEndpoint reports the fan state together with a fresh temperature sample
type StatusEndpoint struct {
	state  StateAccess
	sensor sensors.Sensor
}

func NewStatusEndpoint(state StateAccess, sensor sensors.Sensor) *StatusEndpoint {
	return &StatusEndpoint{state: state, sensor: sensor}
}

func (e *StatusEndpoint) Name() string {
	return StatusName
}

func (e *StatusEndpoint) Mode() os.FileMode {
	return 0444
}

func (e *StatusEndpoint) Content() []byte {
	snapshot := e.state.Snapshot()
	sample := sensors.Read(e.sensor)
	return []byte(FormatStatus(snapshot.FanEnabled, sample))
}

func (e *StatusEndpoint) Write(payload []byte) error {
	return ErrReadOnly
}

// ThresholdEndpoint reads and writes the threshold in whole degrees
type ThresholdEndpoint struct {
	state StateAccess
}

func NewThresholdEndpoint(state StateAccess) *ThresholdEndpoint {
	return &ThresholdEndpoint{state: state}
}

func (e *ThresholdEndpoint) Name() string {
	return ThresholdName
}

func (e *ThresholdEndpoint) Mode() os.FileMode {
	return 0666
}

func (e *ThresholdEndpoint) Content() []byte {
	return []byte(FormatThreshold(e.state.Snapshot().ThresholdDegrees()))
}

func (e *ThresholdEndpoint) Write(payload []byte) error {
	degrees, err := ParseThreshold(payload)
	if err != nil {
		return err
	}
	return e.state.SetThreshold(degrees * 10)
}
