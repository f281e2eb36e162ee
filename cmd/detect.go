package cmd

import (
	"github.com/rpifan/rpifan/internal/fans"
	"github.com/rpifan/rpifan/internal/sensors"
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect devices",
	Long:  `Detects all thermal zones and gpio chips and prints them as a list`,
	Run: func(cmd *cobra.Command, args []string) {
		zones := sensors.FindThermalZones(sensors.ThermalBasePath)

		var sensorRows [][]string
		for _, zone := range zones {
			valueText := "N/A"
			sensor, err := sensors.NewSensor(zone.SensorConfig())
			if err == nil {
				value, err := sensor.GetValue()
				if err == nil {
					valueText = value.String() + " °C"
				}
			}
			sensorRows = append(sensorRows, []string{"", zone.Name, zone.Type, zone.Path, valueText})
		}

		var chipRows [][]string
		for _, chip := range fans.Chips() {
			chipRows = append(chipRows, []string{"", chip})
		}

		if len(sensorRows) == 0 && len(chipRows) == 0 {
			ui.Warning("No thermal zones or gpio chips found")
			return
		}
		if len(sensorRows) > 0 {
			printTable([]string{"Sensors", "Name", "Type", "Path", "Value"}, sensorRows)
		}
		if len(chipRows) > 0 {
			printTable([]string{"GPIO", "Chip"}, chipRows)
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
