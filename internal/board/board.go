package board

import (
	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

// Cell holds one digit plus a validity flag per candidate digit.
// A filled cell never has pending candidates.
type Cell struct {
	value      gridlock.Digit
	candidates [9]bool
}

// Value returns the digit filled into the cell, or gridlock.Empty.
func (c *Cell) Value() gridlock.Digit {
	return c.value
}

// Fill writes d into the cell. Filling with a digit clears every
// candidate; clearing back to Empty leaves the candidate flags alone,
// the next propagation pass recomputes them from scratch anyway.
func (c *Cell) Fill(d gridlock.Digit) {
	c.value = d
	if d != gridlock.Empty {
		c.candidates = [9]bool{}
	}
}

// Candidate reports whether d is still a legal value for the cell.
func (c *Cell) Candidate(d gridlock.Digit) bool {
	return c.candidates[d-1]
}

// SetCandidate marks d as legal or illegal for the cell.
func (c *Cell) SetCandidate(d gridlock.Digit, ok bool) {
	c.candidates[d-1] = ok
}

// Snapshot is the comparable value image of a board, one digit per
// cell in row-major order. Two boards with equal Snapshots hold the
// same filled values regardless of candidate state.
type Snapshot [81]gridlock.Digit

// Board is a 9x9 grid of cells plus the count of unfilled cells.
// A Board is owned by a single call frame at a time; the search
// engine clones it before mutating.
type Board struct {
	cells [9][9]Cell
	free  int
}

// New builds a board from the given grid. Values outside 1..9 are
// normalized to Empty. Free cells start with every candidate set.
func New(g gridlock.Grid) *Board {
	b := &Board{}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			d := g[row][col]
			if !d.IsDigit() {
				d = gridlock.Empty
				b.free++
			}
			cell := &b.cells[row][col]
			cell.value = d
			if d == gridlock.Empty {
				for i := range cell.candidates {
					cell.candidates[i] = true
				}
			}
		}
	}
	return b
}

// Clone returns a private copy of the board. Cells are value types,
// so a struct copy is a deep copy.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Cell returns the cell at (row, col).
func (b *Board) Cell(row, col int) *Cell {
	return &b.cells[row][col]
}

// Value returns the digit at (row, col), or gridlock.Empty.
func (b *Board) Value(row, col int) gridlock.Digit {
	return b.cells[row][col].value
}

// Free returns the number of unfilled cells.
func (b *Board) Free() int {
	return b.free
}

// Place fills (row, col) with d and decrements the free count.
func (b *Board) Place(row, col int, d gridlock.Digit) {
	b.cells[row][col].Fill(d)
	b.free--
}

// Unplace reverts (row, col) to Empty and increments the free count.
func (b *Board) Unplace(row, col int) {
	b.cells[row][col].Fill(gridlock.Empty)
	b.free++
}

// Snapshot captures the board's filled values.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			s[row*9+col] = b.cells[row][col].value
		}
	}
	return s
}

// Grid converts the board back to its value form.
func (b *Board) Grid() gridlock.Grid {
	var g gridlock.Grid
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			g[row][col] = b.cells[row][col].value
		}
	}
	return g
}
