package search

import (
	"github.com/puzzle-framework/gridlock/internal/board"
	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

// feasible reports whether every digit still pending in every region
// has at least one free cell left that admits it. A single (region,
// digit) pair without a legal position makes the whole board dead.
func feasible(b *board.Board) bool {
	for blockRow := 0; blockRow < 3; blockRow++ {
		for blockCol := 0; blockCol < 3; blockCol++ {
			var pending [10]bool
			for d := gridlock.Digit(1); d <= 9; d++ {
				pending[d] = true
			}
			for i := blockRow * 3; i < blockRow*3+3; i++ {
				for j := blockCol * 3; j < blockCol*3+3; j++ {
					if d := b.Value(i, j); d != gridlock.Empty {
						pending[d] = false
					}
				}
			}
			for d := gridlock.Digit(1); d <= 9; d++ {
				if !pending[d] {
					continue
				}
				found := false
				for i := blockRow * 3; i < blockRow*3+3 && !found; i++ {
					for j := blockCol * 3; j < blockCol*3+3; j++ {
						if b.Value(i, j) == gridlock.Empty && b.Cell(i, j).Candidate(d) {
							found = true
							break
						}
					}
				}
				if !found {
					return false
				}
			}
		}
	}

	for row := 0; row < 9; row++ {
		var pending [10]bool
		for d := gridlock.Digit(1); d <= 9; d++ {
			pending[d] = true
		}
		for col := 0; col < 9; col++ {
			if d := b.Value(row, col); d != gridlock.Empty {
				pending[d] = false
			}
		}
		for d := gridlock.Digit(1); d <= 9; d++ {
			if !pending[d] {
				continue
			}
			found := false
			for col := 0; col < 9; col++ {
				if b.Value(row, col) == gridlock.Empty && b.Cell(row, col).Candidate(d) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	for col := 0; col < 9; col++ {
		var pending [10]bool
		for d := gridlock.Digit(1); d <= 9; d++ {
			pending[d] = true
		}
		for row := 0; row < 9; row++ {
			if d := b.Value(row, col); d != gridlock.Empty {
				pending[d] = false
			}
		}
		for d := gridlock.Digit(1); d <= 9; d++ {
			if !pending[d] {
				continue
			}
			found := false
			for row := 0; row < 9; row++ {
				if b.Value(row, col) == gridlock.Empty && b.Cell(row, col).Candidate(d) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	return true
}
