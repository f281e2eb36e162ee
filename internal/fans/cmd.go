package fans

import (
	"fmt"
	"time"

	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/util"
)

const cmdTimeout = 2 * time.Second

// CmdFan runs an executable to switch the fan, using OnArgs or OffArgs
type CmdFan struct {
	Config configuration.FanConfig `json:"configuration"`
}

func (fan CmdFan) GetId() string {
	return fan.Config.ID
}

func (fan CmdFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan CmdFan) Open() error {
	exec := fan.Config.Cmd.Exec
	if _, err := util.CheckFilePermissionsForExecution(exec); err != nil {
		return fmt.Errorf("%w: %s: cannot execute %s: %w", ErrFanUnavailable, fan.GetId(), exec, err)
	}
	return nil
}

func (fan *CmdFan) Set(energized bool) error {
	args := fan.Config.Cmd.OffArgs
	if energized {
		args = fan.Config.Cmd.OnArgs
	}
	_, err := util.SafeCmdExecution(fan.Config.Cmd.Exec, args, cmdTimeout)
	if err != nil {
		return fmt.Errorf("fan %s: %w", fan.GetId(), err)
	}
	return nil
}

func (fan CmdFan) Close() error {
	return nil
}
