package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rpifan/rpifan/internal/api"
	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/endpoints"
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/spf13/cobra"
)

var thresholdCmd = &cobra.Command{
	Use:   "threshold [degrees]",
	Short: "Get/Set the temperature at which the fan is switched on ([20..90])",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()
		_, err := configuration.LoadAndValidate()
		pterm.EnableOutput()
		if err != nil {
			return err
		}

		client := api.NewClient(configuration.CurrentConfig.Api)

		if len(args) == 0 {
			content, err := client.Read(endpoints.ThresholdName)
			if err != nil {
				return err
			}
			fmt.Print(content)
			return nil
		}

		// the daemon checks this as well, but this gives a better message
		degrees, err := endpoints.ParseThreshold([]byte(args[0]))
		if err != nil {
			return err
		}
		err = client.Write(endpoints.ThresholdName, fmt.Sprintf("%d\n", degrees))
		if err != nil {
			return err
		}
		ui.Success("Threshold set to %d °C", degrees)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(thresholdCmd)
}
