package root

import (
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/gridlock/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridlock",
		Short: "Gridlock is a region-claim sudoku solver",
		Long: `A 9x9 sudoku solver built on candidate propagation, region-claim
generation and backtracking search with dead-state memoization.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())

	return rootCmd
}
