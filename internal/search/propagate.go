package search

import (
	"math/bits"

	"github.com/puzzle-framework/gridlock/internal/board"
	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

// propagate recomputes the candidate set of every free cell from the
// filled values, then applies four confinement refinements, each run
// once per pass:
//
//  1. if a block admits a digit in a single row only, the digit is
//     removed from that row's free cells outside the block;
//  2. the same for a single column;
//  3. if a row admits a digit inside a single block only, the digit is
//     removed from that block's free cells outside the row;
//  4. the same for columns.
//
// The pass is a pure function of the filled values, so running it
// twice in a row yields the identical candidate state.
func propagate(b *board.Board) {
	resetCandidates(b)
	confineBlocks(b)
	confineRows(b)
	confineColumns(b)
}

// resetCandidates marks a digit as a candidate for a free cell iff it
// does not already occur in the cell's block, row or column.
func resetCandidates(b *board.Board) {
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if b.Value(row, col) != gridlock.Empty {
				continue
			}
			for d := gridlock.Digit(1); d <= 9; d++ {
				b.Cell(row, col).SetCandidate(d, placeable(b, row, col, d))
			}
		}
	}
}

func placeable(b *board.Board, row, col int, d gridlock.Digit) bool {
	blockRow, blockCol := row/3*3, col/3*3
	for i := blockRow; i < blockRow+3; i++ {
		for j := blockCol; j < blockCol+3; j++ {
			if b.Value(i, j) == d {
				return false
			}
		}
	}
	for j := 0; j < 9; j++ {
		if b.Value(row, j) == d {
			return false
		}
	}
	for i := 0; i < 9; i++ {
		if b.Value(i, col) == d {
			return false
		}
	}
	return true
}

// confineBlocks applies refinements 1 and 2 in a single scan per
// block and digit.
func confineBlocks(b *board.Board) {
	for blockRow := 0; blockRow < 3; blockRow++ {
		for blockCol := 0; blockCol < 3; blockCol++ {
			for d := gridlock.Digit(1); d <= 9; d++ {
				var rowMask, colMask uint16
				lastRow, lastCol := -1, -1
				for i := blockRow * 3; i < blockRow*3+3; i++ {
					for j := blockCol * 3; j < blockCol*3+3; j++ {
						if b.Value(i, j) == gridlock.Empty && b.Cell(i, j).Candidate(d) {
							rowMask |= 1 << i
							colMask |= 1 << j
							lastRow, lastCol = i, j
						}
					}
				}
				if bits.OnesCount16(rowMask) == 1 {
					for c := 0; c < 9; c++ {
						if c/3 != blockCol && b.Value(lastRow, c) == gridlock.Empty {
							b.Cell(lastRow, c).SetCandidate(d, false)
						}
					}
				}
				if bits.OnesCount16(colMask) == 1 {
					for r := 0; r < 9; r++ {
						if r/3 != blockRow && b.Value(r, lastCol) == gridlock.Empty {
							b.Cell(r, lastCol).SetCandidate(d, false)
						}
					}
				}
			}
		}
	}
}

// confineRows applies refinement 3.
func confineRows(b *board.Board) {
	for row := 0; row < 9; row++ {
		for d := gridlock.Digit(1); d <= 9; d++ {
			var blockMask uint16
			lastBlockCol := -1
			for col := 0; col < 9; col++ {
				if b.Value(row, col) == gridlock.Empty && b.Cell(row, col).Candidate(d) {
					blockMask |= 1 << (col / 3)
					lastBlockCol = col / 3
				}
			}
			if bits.OnesCount16(blockMask) != 1 {
				continue
			}
			blockRow := row / 3
			for i := blockRow * 3; i < blockRow*3+3; i++ {
				for j := lastBlockCol * 3; j < lastBlockCol*3+3; j++ {
					if i != row && b.Value(i, j) == gridlock.Empty {
						b.Cell(i, j).SetCandidate(d, false)
					}
				}
			}
		}
	}
}

// confineColumns applies refinement 4.
func confineColumns(b *board.Board) {
	for col := 0; col < 9; col++ {
		for d := gridlock.Digit(1); d <= 9; d++ {
			var blockMask uint16
			lastBlockRow := -1
			for row := 0; row < 9; row++ {
				if b.Value(row, col) == gridlock.Empty && b.Cell(row, col).Candidate(d) {
					blockMask |= 1 << (row / 3)
					lastBlockRow = row / 3
				}
			}
			if bits.OnesCount16(blockMask) != 1 {
				continue
			}
			blockCol := col / 3
			for i := lastBlockRow * 3; i < lastBlockRow*3+3; i++ {
				for j := blockCol * 3; j < blockCol*3+3; j++ {
					if j != col && b.Value(i, j) == gridlock.Empty {
						b.Cell(i, j).SetCandidate(d, false)
					}
				}
			}
		}
	}
}
