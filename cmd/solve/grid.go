package solve

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

// ParseGrid reads a puzzle from r. The expected format is exactly 9
// lines of 9 space-separated single-character tokens, where `-`
// denotes an empty cell and `1`..`9` a fixed digit. For instance:
//
//	5 3 - - 7 - - - -
//	6 - - 1 9 5 - - -
//	...
//
// Anything else is rejected before it can reach the solver.
func ParseGrid(r io.Reader) (gridlock.Grid, error) {
	var grid gridlock.Grid

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if row >= 9 {
			return gridlock.Grid{}, fmt.Errorf("invalid grid: more than 9 rows")
		}

		tokens := strings.Fields(line)
		if len(tokens) != 9 {
			return gridlock.Grid{}, fmt.Errorf("invalid row %d (%s): expected 9 cells, got %d", row+1, line, len(tokens))
		}
		for col, token := range tokens {
			cell, err := parseCell(token)
			if err != nil {
				return gridlock.Grid{}, fmt.Errorf("invalid row %d (%s): %w", row+1, line, err)
			}
			grid[row][col] = cell
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return gridlock.Grid{}, fmt.Errorf("error reading grid data: %w", err)
	}
	if row != 9 {
		return gridlock.Grid{}, fmt.Errorf("invalid grid: expected 9 rows, got %d", row)
	}

	return grid, nil
}

func parseCell(token string) (gridlock.Digit, error) {
	if token == "-" {
		return gridlock.Empty, nil
	}
	if len(token) == 1 && token[0] >= '1' && token[0] <= '9' {
		return gridlock.Digit(token[0] - '0'), nil
	}
	return gridlock.Empty, fmt.Errorf("invalid cell (%s): expected - or a digit 1-9", token)
}
