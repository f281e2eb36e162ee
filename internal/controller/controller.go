package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rpifan/rpifan/internal/control_loop"
	"github.com/rpifan/rpifan/internal/fans"
	"github.com/rpifan/rpifan/internal/sensors"
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/rpifan/rpifan/internal/util"
)

const DefaultTickRate = 5 * time.Second

var ErrAlreadyRunning = errors.New("controller is already running")

// InitError is returned by Start when a handle could not be acquired.
// Everything acquired before the failure has been released again.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("unable to acquire %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// TickResult describes the outcome of a single tick
type TickResult struct {
	Time            time.Time
	Sample          sensors.Sample
	ThresholdTenths int
	Previous        bool
	Enabled         bool
	// FanErr is set if the fan could not be switched
	FanErr error
}

func (r TickResult) Switched() bool {
	return r.Previous != r.Enabled
}

// Listener is notified after every tick, on the controller goroutine
type Listener interface {
	OnTick(result TickResult)
}

type ListenerFunc func(result TickResult)

func (f ListenerFunc) OnTick(result TickResult) {
	f(result)
}

// Statistics are counters since the controller was created
type Statistics struct {
	Ticks          uint64 `json:"ticks"`
	SensorErrors   uint64 `json:"sensorErrors"`
	ActuatorErrors uint64 `json:"actuatorErrors"`
	FanSwitches    uint64 `json:"fanSwitches"`
}

type Controller struct {
	state    *State
	sensor   sensors.Sensor
	fan      fans.Fan
	loop     control_loop.ControlLoop
	tickRate time.Duration
	history  *util.History

	listeners []Listener

	// serializes ticks
	tickMu        sync.Mutex
	sensorFailing bool

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool

	ticks          atomic.Uint64
	sensorErrors   atomic.Uint64
	actuatorErrors atomic.Uint64
	fanSwitches    atomic.Uint64
}

func NewController(state *State, sensor sensors.Sensor, fan fans.Fan, tickRate time.Duration, historySize int) *Controller {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Controller{
		state:    state,
		sensor:   sensor,
		fan:      fan,
		loop:     control_loop.NewHysteresisControlLoop(),
		tickRate: tickRate,
		history:  util.NewHistory(historySize),
	}
}

// AddListener registers a listener, this must happen before Start
func (c *Controller) AddListener(listener Listener) {
	c.listeners = append(c.listeners, listener)
}

func (c *Controller) State() *State {
	return c.state
}

func (c *Controller) Sensor() sensors.Sensor {
	return c.sensor
}

func (c *Controller) Fan() fans.Fan {
	return c.fan
}

func (c *Controller) TickRate() time.Duration {
	return c.tickRate
}

// History returns the recent available temperatures in degrees celsius, oldest first
func (c *Controller) History() []float64 {
	return c.history.Values()
}

func (c *Controller) Statistics() Statistics {
	return Statistics{
		Ticks:          c.ticks.Load(),
		SensorErrors:   c.sensorErrors.Load(),
		ActuatorErrors: c.actuatorErrors.Load(),
		FanSwitches:    c.fanSwitches.Load(),
	}
}

// Tick samples the sensor, decides the next fan state, commits it and drives the fan
func (c *Controller) Tick() TickResult {
	c.tickMu.Lock()
	defer c.tickMu.Unlock()

	c.ticks.Add(1)

	sample := sensors.Read(c.sensor)
	if !sample.Available() {
		c.sensorErrors.Add(1)
		if !c.sensorFailing {
			ui.Warning("Unable to read sensor %s, keeping fan state: %v", c.sensor.GetId(), sample.Err)
			c.sensorFailing = true
		}
	} else {
		if c.sensorFailing {
			ui.Info("Sensor %s is available again: %s °C", c.sensor.GetId(), sample.Value)
			c.sensorFailing = false
		}
		c.history.Append(sample.Value.Celsius())
	}

	snapshot := c.state.Snapshot()
	next := c.loop.Cycle(sample, snapshot.ThresholdTenths, snapshot.FanEnabled)
	c.state.setFanEnabled(next)

	result := TickResult{
		Time:            time.Now(),
		Sample:          sample,
		ThresholdTenths: snapshot.ThresholdTenths,
		Previous:        snapshot.FanEnabled,
		Enabled:         next,
	}

	if result.Switched() {
		c.fanSwitches.Add(1)
		if sample.Available() {
			ui.Info("Switching fan %s %s at %s °C (threshold %d °C)", c.fan.GetId(), fans.StateString(next), sample.Value, snapshot.ThresholdDegrees())
		}
	} else {
		ui.Debug("Fan %s stays %s", c.fan.GetId(), fans.StateString(next))
	}

	// the fan is driven on every tick, so a missed command heals itself
	err := c.fan.Set(next)
	if err != nil {
		c.actuatorErrors.Add(1)
		ui.Warning("Unable to switch fan %s %s: %v", c.fan.GetId(), fans.StateString(next), err)
		result.FanErr = err
	}

	for _, listener := range c.listeners {
		listener.OnTick(result)
	}

	return result
}

// Start acquires fan and sensor and schedules the first tick immediately
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return ErrAlreadyRunning
	}

	if err := c.fan.Open(); err != nil {
		return &InitError{Component: "fan " + c.fan.GetId(), Err: err}
	}
	if err := c.sensor.Open(); err != nil {
		if closeErr := c.fan.Close(); closeErr != nil {
			ui.Warning("Unable to release fan %s: %v", c.fan.GetId(), closeErr)
		}
		return &InitError{Component: "sensor " + c.sensor.GetId(), Err: err}
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	c.running = true

	ui.Info("Starting controller for fan %s with sensor %s (tick rate %s)", c.fan.GetId(), c.sensor.GetId(), c.tickRate)
	go c.runLoop(ctx, c.done)
	return nil
}

func (c *Controller) runLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			c.Tick()
			// rescheduled from now, missed ticks are not made up
			timer.Reset(c.tickRate)
		}
	}
}

// Stop waits for a running tick to finish, switches the fan off and releases fan and sensor
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil
	}

	c.cancel()
	<-c.done
	c.running = false

	ui.Info("Stopping controller for fan %s", c.fan.GetId())

	var errs []error
	if err := c.fan.Set(false); err != nil {
		ui.Warning("Unable to switch fan %s off, make sure it is not left running: %v", c.fan.GetId(), err)
		errs = append(errs, err)
	}
	c.state.setFanEnabled(false)

	if err := c.sensor.Close(); err != nil {
		errs = append(errs, fmt.Errorf("release sensor %s: %w", c.sensor.GetId(), err))
	}
	if err := c.fan.Close(); err != nil {
		errs = append(errs, fmt.Errorf("release fan %s: %w", c.fan.GetId(), err))
	}
	return errors.Join(errs...)
}

// Run starts the controller and stops it once ctx is done
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return c.Stop()
}
