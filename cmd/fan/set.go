package fan

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:       "set on|off",
	Short:     "Switch the fan directly, f.ex. to check the wiring. Stop the daemon first.",
	Long:      ``,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()
		fan, err := getFan()
		pterm.EnableOutput()
		if err != nil {
			return err
		}

		energized := args[0] == "on"

		if err := fan.Open(); err != nil {
			return err
		}
		defer func() {
			if err := fan.Close(); err != nil {
				ui.Warning("Unable to release fan %s: %v", fan.GetId(), err)
			}
		}()

		err = fan.Set(energized)
		if err != nil {
			return fmt.Errorf("unable to switch fan %s: %w", fan.GetId(), err)
		}
		ui.Success("Fan %s switched %s", fan.GetId(), args[0])
		return nil
	},
}

func init() {
	Command.AddCommand(setCmd)
}
