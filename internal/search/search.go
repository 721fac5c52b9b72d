package search

import (
	"context"

	"github.com/puzzle-framework/gridlock/internal/board"
	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

// Engine runs the backtracking search. Every call to Solve starts
// from a fresh dead-state registry and zeroed counters, so a single
// Engine can be reused across puzzles; it is not safe for concurrent
// use.
type Engine struct {
	tracer gridlock.Tracer

	// dead collects the value snapshots of board states proven to
	// have no solution. Lookup is a deliberate exact-match linear
	// scan over every recorded state.
	dead  []board.Snapshot
	stats gridlock.Stats
}

// New builds an Engine.
func New(options ...Option) (*Engine, error) {
	e := &Engine{}
	for _, option := range append(options, defaults...) {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Option configures an Engine.
type Option func(e *Engine) error

// WithTracer installs the tracer called on every forced placement.
func WithTracer(t gridlock.Tracer) Option {
	return func(e *Engine) error {
		e.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(e *Engine) error {
		if e.tracer == nil {
			e.tracer = DefaultTracer{}
		}
		return nil
	},
}

// Stats returns the counters accumulated by the most recent Solve.
func (e *Engine) Stats() gridlock.Stats {
	return e.stats
}

// Solve searches for a filled grid consistent with the given one.
// Values outside 1..9 in the input are treated as empty cells. When
// the search space is exhausted without a solution, the returned
// error is gridlock.ErrNoSolution. The search is synchronous and
// depth-first; the context is accepted for interface symmetry and
// not consulted mid-search.
func (e *Engine) Solve(_ context.Context, g gridlock.Grid) (gridlock.Grid, error) {
	e.dead = e.dead[:0]
	e.stats = gridlock.Stats{}

	result := e.solve(board.New(g))
	if result == nil {
		return gridlock.Grid{}, gridlock.ErrNoSolution
	}
	return *result, nil
}

// solve is one node of the recursive search. It never mutates the
// caller's board: the fixpoint loop and the branch loop below work on
// a private clone. A nil return means no solution is reachable from
// this state.
func (e *Engine) solve(t *board.Board) *gridlock.Grid {
	if e.knownDead(t) {
		return nil
	}
	e.stats.StatesEvaluated++

	tab := t.Clone()

	// Constraint-propagation fixpoint: refresh candidates, verify
	// feasibility, then commit every single-cell claim. The claim
	// list is sorted ascending by cell count, so the single-cell
	// claims form a prefix.
	var claims []*claim
	for {
		updates := 0
		propagate(tab)
		if !feasible(tab) {
			e.markDead(tab)
			return nil
		}

		claims = collectClaims(tab)
		forced := 0
		for _, cl := range claims {
			if len(cl.cells) != 1 {
				break
			}
			forced++
			row, col := cl.cells[0]/9, cl.cells[0]%9
			if tab.Value(row, col) == gridlock.Empty {
				tab.Place(row, col, cl.digit)
				updates++
				e.tracer.Trace(position{tab})
			}
		}
		claims = claims[forced:]

		if tab.Free() == 0 {
			grid := tab.Grid()
			return &grid
		}
		if updates == 0 {
			break
		}
	}

	// Branch over the remaining claims, smallest first, trying each
	// candidate cell in region scan order and undoing on failure.
	for _, cl := range claims {
		for _, cell := range cl.cells {
			row, col := cell/9, cell%9

			tab.Place(row, col, cl.digit)
			if tab.Free() == 0 {
				grid := tab.Grid()
				return &grid
			}
			if result := e.solve(tab); result != nil {
				return result
			}
			tab.Unplace(row, col)
		}
	}

	e.markDead(tab)
	return nil
}

// knownDead reports whether the board's snapshot was already proven
// unsolvable. A hit short-circuits the node before any propagation.
func (e *Engine) knownDead(b *board.Board) bool {
	snapshot := b.Snapshot()
	for _, dead := range e.dead {
		if dead == snapshot {
			e.stats.KnownDeadHits++
			return true
		}
	}
	return false
}

func (e *Engine) markDead(b *board.Board) {
	e.dead = append(e.dead, b.Snapshot())
}

// position adapts a board to the gridlock.SearchPosition handed to
// tracers.
type position struct {
	b *board.Board
}

func (p position) Grid() gridlock.Grid {
	return p.b.Grid()
}

func (p position) FreeCells() int {
	return p.b.Free()
}
