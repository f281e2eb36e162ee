package cmd

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rpifan/rpifan/internal/api"
	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/endpoints"
	"github.com/spf13/cobra"
)

var statusTable bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the fan status and threshold of the running daemon",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()
		_, err := configuration.LoadAndValidate()
		pterm.EnableOutput()
		if err != nil {
			return err
		}

		client := api.NewClient(configuration.CurrentConfig.Api)

		if !statusTable {
			for _, name := range []string{endpoints.StatusName, endpoints.ThresholdName} {
				content, err := client.Read(name)
				if err != nil {
					return err
				}
				fmt.Print(content)
			}
			return nil
		}

		state, err := client.GetState()
		if err != nil {
			return err
		}
		temperature := "N/A"
		if state.Temperature != nil {
			temperature = fmt.Sprintf("%.1f °C", *state.Temperature)
		}
		fanState := "off"
		if state.FanEnabled {
			fanState = "on"
		}
		printTable([]string{"", ""}, [][]string{
			{"Fan", fmt.Sprintf("%s (%s)", fanState, state.FanId)},
			{"Temperature", fmt.Sprintf("%s (%s)", temperature, state.SensorId)},
			{"Threshold", fmt.Sprintf("%d °C", state.ThresholdCelsius)},
			{"Tick rate", state.TickRate},
			{"Ticks", strconv.FormatUint(state.Statistics.Ticks, 10)},
			{"Fan switches", strconv.FormatUint(state.Statistics.FanSwitches, 10)},
			{"Sensor errors", strconv.FormatUint(state.Statistics.SensorErrors, 10)},
			{"Actuator errors", strconv.FormatUint(state.Statistics.ActuatorErrors, 10)},
		})
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVarP(&statusTable, "table", "t", false, "Print a detailed table")
	rootCmd.AddCommand(statusCmd)
}
