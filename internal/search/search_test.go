package search

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puzzle-framework/gridlock/internal/board"
)

func TestKnownDeadShortCircuitsBeforePropagation(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	b := board.New(classic)
	e.markDead(b)

	result := e.solve(b)

	assert.Nil(t, result)
	assert.Equal(t, 1, e.stats.KnownDeadHits)
	// the node bailed out before it counted as an evaluated state
	assert.Equal(t, 0, e.stats.StatesEvaluated)
}

func TestSolveResetsRegistryAndCounters(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	ctx := context.Background()
	_, err = e.Solve(ctx, classic)
	require.NoError(t, err)
	firstStats := e.Stats()

	_, err = e.Solve(ctx, classic)
	require.NoError(t, err)

	// a fresh registry means the second run cannot hit dead states
	// recorded by the first
	assert.Equal(t, firstStats, e.Stats())
}

func TestExhaustedNodeIsRecordedAsDead(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	// a filled row missing only 9, with 9 blocked by its column
	unsat := grid(
		"12345678-",
		"---------",
		"---------",
		"--------9",
		"---------",
		"---------",
		"---------",
		"---------",
		"---------",
	)
	b := board.New(unsat)

	require.Nil(t, e.solve(b))
	assert.Len(t, e.dead, 1)

	// replaying the same snapshot now hits the registry
	require.Nil(t, e.solve(b))
	assert.Equal(t, 1, e.stats.KnownDeadHits)
}

func TestForcedPlacementsAreTraced(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(WithTracer(LoggingTracer{Writer: &buf}))
	require.NoError(t, err)

	solved, err := e.Solve(context.Background(), almostSolved)
	require.NoError(t, err)

	assert.True(t, solved.Valid())
	// the single missing digit was committed as a forced placement
	assert.Contains(t, buf.String(), "00 free")
}

func TestSolveIgnoresContextMidSearch(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the search is synchronous and runs to completion regardless
	solved, err := e.Solve(ctx, classic)
	require.NoError(t, err)
	assert.True(t, solved.Valid())
}
