package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "packcli",
	Short: "pack rectangles into the smallest enclosing circle",
	Long: `packcli drives the Differential Evolution rectangle-in-circle
packing engine from the command line:
	- load a rectangle instance from a YAML file,
	- search for the smallest enclosing circle under a chosen rotation mode,
	- print the resulting poses (or write them back out as YAML).`,
}

// Execute adds all child commands to RootCmd and runs it. Called once by
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
