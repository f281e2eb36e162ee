package sensor

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/sensors"
	"github.com/spf13/cobra"
)

var raw bool

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current temperature of the configured sensor",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		sensor, err := getSensor()
		if err != nil {
			return err
		}

		if err := sensor.Open(); err != nil {
			return err
		}
		defer sensor.Close()

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		if raw {
			fmt.Printf("%d", int(value))
		} else {
			fmt.Printf("%s °C\n", value)
		}
		return nil
	},
}

func init() {
	Command.Flags().BoolVarP(&raw, "raw", "r", false, "Print tenths of a degree, without unit")
}

func getSensor() (sensors.Sensor, error) {
	_, err := configuration.LoadAndValidate()
	if err != nil {
		return nil, err
	}
	return sensors.NewSensor(configuration.CurrentConfig.Sensor)
}
