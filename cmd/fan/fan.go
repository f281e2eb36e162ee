package fan

import (
	"github.com/rpifan/rpifan/internal/configuration"
	"github.com/rpifan/rpifan/internal/fans"
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getFan() (fans.Fan, error) {
	_, err := configuration.LoadAndValidate()
	if err != nil {
		return nil, err
	}
	return fans.NewFan(configuration.CurrentConfig.Fan)
}
