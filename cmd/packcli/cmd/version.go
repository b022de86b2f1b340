package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at release time; dev builds keep the default.
var version = "dev"

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print packcli's version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
