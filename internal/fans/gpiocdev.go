//go:build linux

package fans

import (
	"fmt"
	"sync"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/warthog618/go-gpiocdev"
)

const consumer = "rpifan"

// GpiocdevFan drives a gpio line through the linux gpio character device
type GpiocdevFan struct {
	Config configuration.FanConfig `json:"configuration"`

	mu   sync.Mutex
	line *gpiocdev.Line
}

func (fan *GpiocdevFan) GetId() string {
	return fan.Config.ID
}

func (fan *GpiocdevFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *GpiocdevFan) Open() error {
	fan.mu.Lock()
	defer fan.mu.Unlock()

	config := fan.Config.Gpiocdev
	options := []gpiocdev.LineReqOption{
		gpiocdev.WithConsumer(consumer),
		// request the line inactive, so the fan is off until the first tick
		gpiocdev.AsOutput(0),
	}
	if config.ActiveLow {
		options = append(options, gpiocdev.AsActiveLow)
	}

	line, err := gpiocdev.RequestLine(config.Chip, config.Line, options...)
	if err != nil {
		return fmt.Errorf("%w: %s: request line %s:%d: %w", ErrFanUnavailable, fan.GetId(), config.Chip, config.Line, err)
	}
	fan.line = line
	return nil
}

func (fan *GpiocdevFan) Set(energized bool) error {
	fan.mu.Lock()
	defer fan.mu.Unlock()

	if fan.line == nil {
		return fmt.Errorf("fan %s: not opened", fan.GetId())
	}
	// active low is handled by the line configuration
	if err := fan.line.SetValue(level(energized, false)); err != nil {
		return fmt.Errorf("fan %s: set line value: %w", fan.GetId(), err)
	}
	return nil
}

func (fan *GpiocdevFan) Close() error {
	fan.mu.Lock()
	defer fan.mu.Unlock()

	if fan.line == nil {
		return nil
	}
	err := fan.line.Close()
	fan.line = nil
	return err
}

// Chips lists the gpio character devices, f.ex. gpiochip0
func Chips() []string {
	return gpiocdev.Chips()
}
