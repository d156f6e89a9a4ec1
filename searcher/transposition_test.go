package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranspositionTable(t *testing.T) {
	t.Run("exact values answer any window", func(t *testing.T) {
		tt := newTranspositionTable(8)
		tt.store(1, 3, 0, -1, 1)

		v, ok := tt.lookup(1, 3, NegInfinity, Infinity)
		require.True(t, ok)
		require.Equal(t, 0, v)
	})

	t.Run("fail-high values only settle windows they exceed", func(t *testing.T) {
		tt := newTranspositionTable(8)
		tt.store(1, 3, 1, -1, 1) // value >= beta is a lower bound

		_, ok := tt.lookup(1, 3, -1, 2)
		require.False(t, ok, "A lower bound below beta should not answer the window")

		v, ok := tt.lookup(1, 3, -1, 1)
		require.True(t, ok)
		require.Equal(t, 1, v)
	})

	t.Run("fail-low values only settle windows they undercut", func(t *testing.T) {
		tt := newTranspositionTable(8)
		tt.store(1, 3, -1, -1, 1) // value <= alpha is an upper bound

		_, ok := tt.lookup(1, 3, -2, 1)
		require.False(t, ok)

		v, ok := tt.lookup(1, 3, -1, 1)
		require.True(t, ok)
		require.Equal(t, -1, v)
	})

	t.Run("entries only answer searches with the same horizon", func(t *testing.T) {
		tt := newTranspositionTable(8)
		tt.store(1, 2, 0, -1, 1)

		_, ok := tt.lookup(1, 3, NegInfinity, Infinity)
		require.False(t, ok, "A shallower entry should not answer a deeper search")
		_, ok = tt.lookup(1, 1, NegInfinity, Infinity)
		require.False(t, ok, "A deeper entry should not answer a shallower search")

		tt.store(1, 1, 1, -5, 5)
		v, ok := tt.lookup(1, 1, NegInfinity, Infinity)
		require.True(t, ok)
		require.Equal(t, 1, v)
		_, ok = tt.lookup(1, 2, NegInfinity, Infinity)
		require.False(t, ok, "The newer entry replaces the older one")
	})

	t.Run("unlimited searches share one horizon", func(t *testing.T) {
		tt := newTranspositionTable(8)
		tt.store(1, Infinity, -1, NegInfinity, Infinity)

		v, ok := tt.lookup(1, Infinity, -1, 1)
		require.True(t, ok)
		require.Equal(t, -1, v)
	})

	t.Run("full table keeps existing keys only", func(t *testing.T) {
		tt := newTranspositionTable(2)
		tt.store(1, 1, 0, -1, 1)
		tt.store(2, 1, 0, -1, 1)
		tt.store(3, 1, 0, -1, 1)

		require.Equal(t, 2, tt.len())
		_, ok := tt.lookup(3, 1, NegInfinity, Infinity)
		require.False(t, ok)

		tt.store(1, 1, 1, 0, 2)
		v, ok := tt.lookup(1, 1, NegInfinity, Infinity)
		require.True(t, ok)
		require.Equal(t, 1, v)
	})
}
