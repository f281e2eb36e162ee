//go:build !linux

package fans

import (
	"fmt"

	"github.com/rpifan/rpifan/internal/configuration"
)

// GpiocdevFan is not available on non-Linux platforms.
type GpiocdevFan struct {
	Config configuration.FanConfig `json:"configuration"`
}

func (fan *GpiocdevFan) GetId() string {
	return fan.Config.ID
}

func (fan *GpiocdevFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *GpiocdevFan) Open() error {
	return fmt.Errorf("%w: %s: gpio character device requires Linux", ErrFanUnavailable, fan.GetId())
}

func (fan *GpiocdevFan) Set(energized bool) error {
	return fmt.Errorf("fan %s: gpio character device requires Linux", fan.GetId())
}

func (fan *GpiocdevFan) Close() error {
	return nil
}

func Chips() []string {
	return []string{}
}
