package gridlock

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSolution is returned by the solver when the search space has
// been exhausted without reaching a fully filled board. It marks an
// expected outcome, not a fault: callers are expected to test for it
// with errors.Is and handle it as a first-class result.
var ErrNoSolution = errors.New("no solution found")

// Digit is one of the nine values a cell may hold. The zero value is
// Empty, the sentinel for an unfilled cell.
type Digit uint8

// Empty marks a cell that has not been filled yet.
const Empty Digit = 0

// IsDigit reports whether d is one of the nine playable values.
func (d Digit) IsDigit() bool {
	return d >= 1 && d <= 9
}

// Grid is a 9x9 board of digits. Rows are indexed first. Unfilled
// cells hold Empty.
type Grid [9][9]Digit

// Complete reports whether every cell of the grid is filled.
func (g Grid) Complete() bool {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if !g[row][col].IsDigit() {
				return false
			}
		}
	}
	return true
}

// Valid reports whether the grid is completely filled and every row,
// column and 3x3 block contains each digit exactly once.
func (g Grid) Valid() bool {
	if !g.Complete() {
		return false
	}
	var rows, cols, blocks [9][10]int
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			d := g[row][col]
			rows[row][d]++
			cols[col][d]++
			blocks[(row/3)*3+col/3][d]++
		}
	}
	for i := 0; i < 9; i++ {
		for d := Digit(1); d <= 9; d++ {
			if rows[i][d] != 1 || cols[i][d] != 1 || blocks[i][d] != 1 {
				return false
			}
		}
	}
	return true
}

// String renders the grid as an ASCII box, one character per cell,
// with `-` standing in for empty cells:
//
//	+-------+-------+-------+
//	| 5 3 - | - 7 - | - - - |
//	| 6 - - | 1 9 5 | - - - |
//	...
func (g Grid) String() string {
	var sb strings.Builder
	sb.WriteString("+-------+-------+-------+\n")
	for row := 0; row < 9; row++ {
		sb.WriteString("|")
		for col := 0; col < 9; col++ {
			if d := g[row][col]; d.IsDigit() {
				fmt.Fprintf(&sb, " %d", d)
			} else {
				sb.WriteString(" -")
			}
			if col == 2 || col == 5 {
				sb.WriteString(" |")
			}
		}
		sb.WriteString(" |\n")
		if row == 2 || row == 5 {
			sb.WriteString("+-------+-------+-------+\n")
		}
	}
	sb.WriteString("+-------+-------+-------+")
	return sb.String()
}

// Stats carries the diagnostic counters accumulated during one solve.
// They carry no semantic meaning beyond instrumentation.
type Stats struct {
	// StatesEvaluated is the number of board states the search
	// engine examined, forced-placement fixpoints included.
	StatesEvaluated int
	// KnownDeadHits is the number of times the search arrived at a
	// board state already proven to have no solution.
	KnownDeadHits int
}

// SearchPosition describes a point reached during the search, handed
// to a Tracer whenever the engine commits a forced placement.
type SearchPosition interface {
	// Grid returns the board values at this position.
	Grid() Grid
	// FreeCells returns the number of still-unfilled cells.
	FreeCells() int
}

// Tracer values are called during solving to capture intermediate
// boards for debugging or visualization. Tracing has no effect on the
// solving semantics.
type Tracer interface {
	Trace(p SearchPosition)
}
