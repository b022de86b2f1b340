// Command packcli is the command-line front end for package pack: it loads
// a YAML rectangle instance, runs Solve, and prints the resulting layout.
package main

import "github.com/gopacklab/packcircle/cmd/packcli/cmd"

func main() {
	cmd.Execute()
}
