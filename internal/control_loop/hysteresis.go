package control_loop

import (
	"github.com/rpifan/rpifan/internal/sensors"
)

// HysteresisDegrees is the width of the band below the threshold
// in which the fan keeps its current state
const HysteresisDegrees = 5

// ControlLoop decides the next fan state for a temperature sample
type ControlLoop interface {
	Cycle(sample sensors.Sample, thresholdTenths int, previouslyEnabled bool) bool
}

// Hysteresis returns the next fan state.
// Temperature and threshold are compared in whole degrees, truncated.
// An unavailable sample keeps the previous state.
func Hysteresis(sample sensors.Sample, thresholdTenths int, previouslyEnabled bool) bool {
	if !sample.Available() {
		return previouslyEnabled
	}

	tempDegrees := sample.Value.Degrees()
	thresholdDegrees := thresholdTenths / 10

	if tempDegrees >= thresholdDegrees {
		return true
	}
	if tempDegrees < thresholdDegrees-HysteresisDegrees {
		return false
	}
	return previouslyEnabled
}

// HysteresisControlLoop is the default ControlLoop
type HysteresisControlLoop struct{}

func NewHysteresisControlLoop() *HysteresisControlLoop {
	return &HysteresisControlLoop{}
}

func (l *HysteresisControlLoop) Cycle(sample sensors.Sample, thresholdTenths int, previouslyEnabled bool) bool {
	return Hysteresis(sample, thresholdTenths, previouslyEnabled)
}
