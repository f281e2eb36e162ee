package cmd

import (
	"github.com/rpifan/rpifan/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/rpifan/rpifan/cmd.Version=..."
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of rpifan",
	Long:  `All software has versions. This is rpifan's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln("%s", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
