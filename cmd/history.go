package cmd

import (
	"github.com/guptarohit/asciigraph"
	"github.com/pterm/pterm"
	"github.com/rpifan/rpifan/internal/api"
	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Plot the recent temperatures seen by the running daemon",
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
		history, err := client.GetHistory()
		if err != nil {
			return err
		}

		if len(history.Values) == 0 {
			ui.Printfln("No temperature data yet...")
			return nil
		}

		caption := "Temperature (°C)"
		graph := asciigraph.Plot(history.Values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln("%s", graph)
		ui.Printfln("min: %.1f °C  avg: %.1f °C  max: %.1f °C", history.Min, history.Avg, history.Max)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
