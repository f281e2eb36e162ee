package fans

import (
	"fmt"
	"os"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/util"
)

// FileFan writes "1" or "0" to a file, f.ex. /sys/class/gpio/gpio17/value
type FileFan struct {
	Config configuration.FanConfig `json:"configuration"`
}

func (fan FileFan) GetId() string {
	return fan.Config.ID
}

func (fan FileFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan FileFan) Open() error {
	filePath, err := util.ExpandPath(fan.Config.File.Path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFanUnavailable, fan.GetId(), err)
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFanUnavailable, fan.GetId(), err)
	}
	return nil
}

func (fan *FileFan) Set(energized bool) error {
	filePath, err := util.ExpandPath(fan.Config.File.Path)
	if err != nil {
		return err
	}

	value := level(energized, fan.Config.File.ActiveLow)
	err = util.WriteIntToFile(value, filePath)
	if err != nil {
		return fmt.Errorf("fan %s: unable to write to file %s: %w", fan.GetId(), filePath, err)
	}
	return nil
}

func (fan FileFan) Close() error {
	return nil
}
