package search

import (
	"fmt"
	"io"

	"github.com/puzzle-framework/gridlock/pkg/gridlock"
)

// DefaultTracer discards every traced position.
type DefaultTracer struct{}

func (DefaultTracer) Trace(_ gridlock.SearchPosition) {
}

// LoggingTracer renders every traced board to Writer, with the count
// of still-free cells in the footer.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p gridlock.SearchPosition) {
	fmt.Fprintf(t.Writer, "%s %02d free\n", p.Grid(), p.FreeCells())
}
