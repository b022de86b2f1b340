package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopacklab/packcircle/pack"
	"github.com/gopacklab/packcircle/packio"
)

var (
	solveModeFlag   string
	solveTargetFlag float64
	solveSeedFlag   int64
	solveMaxGenFlag int
	solveOutFlag    string
)

// solveCmd represents the solve command.
var solveCmd = &cobra.Command{
	Use:   "solve INSTANCE.yaml",
	Short: "pack an instance's rectangles into the smallest enclosing circle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := packio.LoadInstance(args[0])
		if err != nil {
			return err
		}

		mode, err := packio.ParseRotationMode(solveModeFlag)
		if err != nil {
			return err
		}

		opts := pack.DefaultOptions()
		opts.RotationMode = mode
		opts.TargetRadius = solveTargetFlag
		opts.Seed = solveSeedFlag
		if solveMaxGenFlag > 0 {
			opts.MaxGenerations = solveMaxGenFlag
		}

		res, err := pack.Solve(inst, opts)
		if err != nil {
			return err
		}

		data, err := packio.MarshalResult(res)
		if err != nil {
			return err
		}

		if solveOutFlag == "" {
			fmt.Println(res.String())
			fmt.Print(string(data))
			return nil
		}

		return os.WriteFile(solveOutFlag, data, 0o644)
	},
}

func init() {
	RootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveModeFlag, "mode", "AUTO", "rotation mode: FIXED_0, DISCRETE_90, DISCRETE_45, FREE, AUTO")
	solveCmd.Flags().Float64Var(&solveTargetFlag, "target-radius", 0, "stop early once a valid radius at or below this is found (0 disables)")
	solveCmd.Flags().Int64Var(&solveSeedFlag, "seed", 0, "master RNG seed")
	solveCmd.Flags().IntVar(&solveMaxGenFlag, "max-generations", 0, "override the DE generation cap (0 keeps the default)")
	solveCmd.Flags().StringVar(&solveOutFlag, "out", "", "write the result YAML to this file instead of stdout")
}
