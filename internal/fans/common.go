package fans

import (
	"errors"
	"fmt"

	"github.com/rpifan/rpifan/internal/configuration"
)

// ErrFanUnavailable indicates that the fan could not be acquired
var ErrFanUnavailable = errors.New("fan unavailable")

// Fan is a binary cooling actuator
type Fan interface {
	GetId() string

	GetConfig() configuration.FanConfig

	// Open acquires the fan handle
	Open() error

	// Set energizes or de-energizes the fan. Setting the current state again is allowed.
	Set(energized bool) error

	// Close releases the fan handle, it does not change the fan state
	Close() error
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.File != nil {
		return &FileFan{
			Config: config,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdFan{
			Config: config,
		}, nil
	}

	if config.Rpio != nil {
		return &RpioFan{
			Config: config,
		}, nil
	}

	if config.Gpiocdev != nil {
		return &GpiocdevFan{
			Config: config,
		}, nil
	}

	return nil, fmt.Errorf("no matching fan type for fan: %s", config.ID)
}

// level maps the logical fan state to the output level
func level(energized bool, activeLow bool) int {
	if energized != activeLow {
		return 1
	}
	return 0
}

func StateString(energized bool) string {
	if energized {
		return "on"
	}
	return "off"
}
