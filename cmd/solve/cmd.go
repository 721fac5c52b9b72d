package solve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/gridlock/internal/search"
	"github.com/puzzle-framework/gridlock/pkg/gridlock"
	"github.com/puzzle-framework/gridlock/pkg/gridlock/solver"
)

func NewSolveCommand() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "solve [path]",
		Short: "Solves a 9x9 sudoku puzzle",
		Long: `Solves a 9x9 sudoku puzzle read from a file, or from stdin when no
path is given. The expected input is 9 lines of 9 space-separated
tokens, with - denoting an empty cell. For instance:

5 3 - - 7 - - - -
6 - - 1 9 5 - - -
- 9 8 - - - - 6 -
8 - - - 6 - - - 3
4 - - 8 - 3 - - 1
7 - - - 2 - - - 6
- 6 - - - - 2 8 -
- - - 4 1 9 - - 5
- - - - 8 - - 7 9
`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", args[0])
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input := io.Reader(os.Stdin)
			if len(args) == 1 {
				puzzleFile, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("error opening puzzle file (%s): %w", args[0], err)
				}
				defer puzzleFile.Close()
				input = puzzleFile
			}
			return run(input, trace)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print the board after every forced placement")

	return cmd
}

func run(input io.Reader, trace bool) error {
	log := logrus.New()

	grid, err := ParseGrid(input)
	if err != nil {
		return fmt.Errorf("error parsing puzzle: %w", err)
	}

	// build solver
	var options []solver.Option
	if trace {
		options = append(options, solver.WithTracer(search.LoggingTracer{Writer: os.Stdout}))
	}
	so, err := solver.NewGridSolver(options...)
	if err != nil {
		return err
	}

	// get solution
	start := time.Now()
	solution, err := so.Solve(context.Background(), grid)
	elapsed := time.Since(start)

	if err != nil {
		if !errors.Is(err, gridlock.ErrNoSolution) {
			return err
		}
		fmt.Println("no solution found")
	} else {
		fmt.Println(solution.Grid())
	}

	stats := so.Stats()
	log.WithFields(logrus.Fields{
		"elapsed":         elapsed,
		"states":          stats.StatesEvaluated,
		"known_dead_hits": stats.KnownDeadHits,
	}).Info("search finished")

	return nil
}
