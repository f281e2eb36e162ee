package fans

import (
	"fmt"
	"sync"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/stianeikeland/go-rpio/v4"
)

// RpioFan drives a BCM gpio pin through /dev/gpiomem
type RpioFan struct {
	Config configuration.FanConfig `json:"configuration"`

	mu     sync.Mutex
	pin    rpio.Pin
	opened bool
}

func (fan *RpioFan) GetId() string {
	return fan.Config.ID
}

func (fan *RpioFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *RpioFan) Open() error {
	fan.mu.Lock()
	defer fan.mu.Unlock()

	if err := rpio.Open(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFanUnavailable, fan.GetId(), err)
	}
	fan.pin = rpio.Pin(fan.Config.Rpio.Pin)
	fan.pin.Output()
	fan.opened = true
	return nil
}

func (fan *RpioFan) Set(energized bool) error {
	fan.mu.Lock()
	defer fan.mu.Unlock()

	if !fan.opened {
		return fmt.Errorf("fan %s: not opened", fan.GetId())
	}
	if level(energized, fan.Config.Rpio.ActiveLow) == 1 {
		fan.pin.Write(rpio.High)
	} else {
		fan.pin.Write(rpio.Low)
	}
	return nil
}

func (fan *RpioFan) Close() error {
	fan.mu.Lock()
	defer fan.mu.Unlock()

	if !fan.opened {
		return nil
	}
	fan.opened = false
	return rpio.Close()
}
