// Package solver exposes the public entry point for solving puzzles.
// It wraps the internal search engine behind a stable surface.
package solver

import (
	"context"

	"github.com/puzzle-framework/gridlock/internal/search"
	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

// Solution is the outcome of a successful solve: the filled grid plus
// the diagnostic counters gathered along the way.
type Solution struct {
	grid  gridlock.Grid
	stats gridlock.Stats
}

// Grid returns the solved grid. Every originally fixed cell keeps its
// digit.
func (s *Solution) Grid() gridlock.Grid {
	return s.grid
}

// Stats returns the search counters for this solve.
func (s *Solution) Stats() gridlock.Stats {
	return s.stats
}

// GridSolver solves 9x9 puzzles with candidate propagation, region
// claims and backtracking search. The zero value is not usable; build
// one with NewGridSolver.
type GridSolver struct {
	engine *search.Engine
}

// Option configures a GridSolver.
type Option func(s *GridSolver) error

// WithTracer installs a tracer that observes every forced placement
// the engine commits.
func WithTracer(t gridlock.Tracer) Option {
	return func(s *GridSolver) error {
		return search.WithTracer(t)(s.engine)
	}
}

// NewGridSolver builds a GridSolver.
func NewGridSolver(options ...Option) (*GridSolver, error) {
	engine, err := search.New()
	if err != nil {
		return nil, err
	}
	s := &GridSolver{engine: engine}
	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Solve returns a Solution consistent with the fixed cells of g, or
// gridlock.ErrNoSolution when the puzzle admits none. Cells of g that
// do not hold a digit 1..9 count as empty.
func (s *GridSolver) Solve(ctx context.Context, g gridlock.Grid) (*Solution, error) {
	solved, err := s.engine.Solve(ctx, g)
	if err != nil {
		return nil, err
	}
	return &Solution{grid: solved, stats: s.engine.Stats()}, nil
}

// Stats returns the counters of the most recent Solve, whether or not
// it found a solution.
func (s *GridSolver) Stats() gridlock.Stats {
	return s.engine.Stats()
}
