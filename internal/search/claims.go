package search

import (
	"github.com/puzzle-framework/gridlock/internal/board"
	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

// regionKind tags the region a claim was generated from. It is kept
// for bookkeeping only; ordering and branching ignore it.
type regionKind int

const (
	regionBlock regionKind = iota
	regionRow
	regionColumn
)

// claim states that a digit, still unplaced in some region, must
// occupy one of the listed cells. Cells are encoded row*9+col, in
// region scan order. A claim with a single cell is a forced
// placement; a claim with none makes the board infeasible.
type claim struct {
	digit gridlock.Digit
	kind  regionKind
	cells []int
}

// collectClaims produces one claim per (digit, region) pair where the
// digit is still pending, sorted ascending by cell count. Among equal
// counts generation order is preserved: digits outermost, then block
// scan, row scan, column scan. A claim identical to an earlier one
// (same digit, same ordered cell list) is suppressed; this happens
// when a block's candidates for a digit collapse onto a single row or
// column.
func collectClaims(b *board.Board) []*claim {
	var claims []*claim

	for d := gridlock.Digit(1); d <= 9; d++ {
		for blockRow := 0; blockRow < 3; blockRow++ {
		blocks:
			for blockCol := 0; blockCol < 3; blockCol++ {
				cl := &claim{digit: d, kind: regionBlock}
				for i := blockRow * 3; i < blockRow*3+3; i++ {
					for j := blockCol * 3; j < blockCol*3+3; j++ {
						if b.Value(i, j) == d {
							continue blocks
						}
						if b.Value(i, j) == gridlock.Empty && b.Cell(i, j).Candidate(d) {
							cl.cells = append(cl.cells, i*9+j)
						}
					}
				}
				claims = insertClaim(claims, cl)
			}
		}

	rows:
		for row := 0; row < 9; row++ {
			cl := &claim{digit: d, kind: regionRow}
			for col := 0; col < 9; col++ {
				if b.Value(row, col) == d {
					continue rows
				}
				if b.Value(row, col) == gridlock.Empty && b.Cell(row, col).Candidate(d) {
					cl.cells = append(cl.cells, row*9+col)
				}
			}
			claims = insertClaim(claims, cl)
		}

	columns:
		for col := 0; col < 9; col++ {
			cl := &claim{digit: d, kind: regionColumn}
			for row := 0; row < 9; row++ {
				if b.Value(row, col) == d {
					continue columns
				}
				if b.Value(row, col) == gridlock.Empty && b.Cell(row, col).Candidate(d) {
					cl.cells = append(cl.cells, row*9+col)
				}
			}
			claims = insertClaim(claims, cl)
		}
	}

	return claims
}

// insertClaim keeps the list sorted ascending by cell count. The new
// claim lands after every existing claim of equal or smaller count,
// unless an exact duplicate is already present, in which case the
// list is returned unchanged.
func insertClaim(claims []*claim, cl *claim) []*claim {
	pos := 0
	for _, existing := range claims {
		if existing.digit == cl.digit && sameCells(existing.cells, cl.cells) {
			return claims
		}
		if len(existing.cells) <= len(cl.cells) {
			pos++
		}
	}
	claims = append(claims, nil)
	copy(claims[pos+1:], claims[pos:])
	claims[pos] = cl
	return claims
}

func sameCells(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
