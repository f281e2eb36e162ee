package controller

import (
	"errors"
	"fmt"
	"sync"
)

const (
	MinThresholdTenths     = 200
	MaxThresholdTenths     = 900
	DefaultThresholdTenths = 500
)

var ErrThresholdOutOfRange = errors.New("threshold out of range")

// Snapshot is a consistent copy of the control state
type Snapshot struct {
	FanEnabled      bool `json:"fanEnabled"`
	ThresholdTenths int  `json:"thresholdTenths"`
}

// ThresholdDegrees returns the threshold in whole degrees
func (s Snapshot) ThresholdDegrees() int {
	return s.ThresholdTenths / 10
}

// State is shared between the control loop, which owns the fan flag,
// and the endpoints, which own the threshold.
type State struct {
	mu              sync.RWMutex
	fanEnabled      bool
	thresholdTenths int
}

// NewState creates a State with the fan off
func NewState(thresholdTenths int) (*State, error) {
	if err := checkThreshold(thresholdTenths); err != nil {
		return nil, err
	}
	return &State{
		thresholdTenths: thresholdTenths,
	}, nil
}

func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		FanEnabled:      s.fanEnabled,
		ThresholdTenths: s.thresholdTenths,
	}
}

// SetThreshold commits a new threshold, in tenths of a degree
func (s *State) SetThreshold(tenths int) error {
	if err := checkThreshold(tenths); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thresholdTenths = tenths
	return nil
}

// setFanEnabled is reserved for the control loop. Callers hold Controller.tickMu
// or have joined the loop, since the read of the previous state and this write
// are not atomic.
func (s *State) setFanEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fanEnabled = enabled
}

func checkThreshold(tenths int) error {
	if tenths < MinThresholdTenths || tenths > MaxThresholdTenths {
		return fmt.Errorf("%w: %d, must be between %d and %d", ErrThresholdOutOfRange, tenths, MinThresholdTenths, MaxThresholdTenths)
	}
	return nil
}
