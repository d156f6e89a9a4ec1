package nim

import (
	"bytes"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"nim/game"
)

func TestNew(t *testing.T) {
	t.Run("copies the supplied board", func(t *testing.T) {
		board := []int{0, 5, 3, 1}
		g, err := New(board, game.Max)
		require.NoError(t, err)

		board[1] = 99
		require.Equal(t, []int{0, 5, 3, 1}, g.Initial().Board(), "Caller storage should not alias the initial board")
	})

	t.Run("default board is not shared between games", func(t *testing.T) {
		g1 := Default()
		g2 := Default()
		next := g1.Result(g1.Initial(), Move{Row: 0, Count: 3})

		require.Equal(t, []int{0, 1}, next.Board())
		require.Equal(t, []int{3, 1}, g2.Initial().Board(), "Playing one default game should not affect another")
		require.Equal(t, []int{3, 1}, DefaultBoard)
	})

	t.Run("rejects an empty board", func(t *testing.T) {
		_, err := New(nil, game.Max)
		require.ErrorIs(t, err, ErrEmptyBoard)
	})

	t.Run("rejects negative piles", func(t *testing.T) {
		_, err := New([]int{1, -2}, game.Max)
		require.ErrorIs(t, err, ErrNegativePile)
	})

	t.Run("rejects an unknown first mover", func(t *testing.T) {
		_, err := New([]int{1}, game.Player("X"))
		require.Error(t, err)
	})

	t.Run("MustNew panics on invalid boards", func(t *testing.T) {
		require.Panics(t, func() { MustNew([]int{}, game.Max) })
	})
}

func TestActions(t *testing.T) {
	t.Run("lists moves row by row with ascending counts", func(t *testing.T) {
		g := MustNew([]int{0, 5, 3, 1}, game.Max)

		expected := []Move{
			{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
			{2, 1}, {2, 2}, {2, 3},
			{3, 1},
		}
		require.Equal(t, expected, g.Actions(g.Initial()))
	})

	t.Run("one move per removable object", func(t *testing.T) {
		for _, board := range [][]int{{3, 1}, {7, 5, 3, 1}, {0}, {2, 0, 2}, {4}} {
			g := MustNew(board, game.Max)
			moves := g.Actions(g.Initial())

			require.Len(t, moves, lo.Sum(board), "board %v", board)
			for _, m := range moves {
				require.Greater(t, board[m.Row], 0, "Empty rows should never be offered")
				require.True(t, m.Count >= 1 && m.Count <= board[m.Row])
			}
		}
	})

	t.Run("empty exactly when all piles are empty", func(t *testing.T) {
		g := MustNew([]int{0, 0, 0}, game.Max)

		require.Empty(t, g.Actions(g.Initial()))
		require.True(t, g.TerminalTest(g.Initial()))
	})

	t.Run("returned slice does not alias the state", func(t *testing.T) {
		g := MustNew([]int{2}, game.Max)
		moves := g.Actions(g.Initial())
		moves[0] = Move{Row: 7, Count: 7}

		require.Equal(t, Move{Row: 0, Count: 1}, g.Actions(g.Initial())[0])
	})
}

func TestResult(t *testing.T) {
	t.Run("removes objects and flips the player", func(t *testing.T) {
		g := MustNew([]int{0, 5, 3, 1}, game.Max)

		next := g.Result(g.Initial(), Move{Row: 1, Count: 3})

		require.Equal(t, []int{0, 2, 3, 1}, next.Board())
		require.Equal(t, game.Min, next.ToMove())
		require.Equal(t, 0, next.Utility())
		require.Equal(t, []int{0, 5, 3, 1}, g.Initial().Board(), "The parent state should be unchanged")
	})

	t.Run("every legal move changes only its row", func(t *testing.T) {
		g := MustNew([]int{2, 3, 1}, game.Min)
		s := g.Initial()

		for _, m := range g.Actions(s) {
			next := g.Result(s, m)
			for row, size := range next.Board() {
				want := s.Board()[row]
				if row == m.Row {
					want -= m.Count
				}
				require.Equal(t, want, size, "move %v row %d", m, row)
			}
			require.Equal(t, game.Max, next.ToMove())
		}
	})

	t.Run("illegal move is a no-op", func(t *testing.T) {
		g := MustNew([]int{0, 5, 3, 1}, game.Max)
		s := g.Initial()

		for _, m := range []Move{{0, 1}, {1, 6}, {2, 0}, {4, 1}, {-1, 1}} {
			next := g.Result(s, m)
			require.Equal(t, s, next, "move %v should leave the state unchanged", m)
		}
	})

	t.Run("terminal exactly when the last object is taken", func(t *testing.T) {
		g := MustNew([]int{0, 2, 1}, game.Max)
		s := g.Initial()

		for _, m := range g.Actions(s) {
			require.False(t, g.TerminalTest(g.Result(s, m)), "move %v leaves objects behind", m)
		}

		s = g.Result(s, Move{Row: 1, Count: 2})
		last := g.Result(s, Move{Row: 2, Count: 1})
		require.True(t, g.TerminalTest(last))
		require.Empty(t, g.Actions(last))
		require.Equal(t, -1, last.Utility(), "Cached utility should be a loss for the player facing the empty board")
	})
}

func TestUtility(t *testing.T) {
	t.Run("last player to move wins", func(t *testing.T) {
		g := MustNew([]int{1}, game.Max)
		end := g.Result(g.Initial(), Move{Row: 0, Count: 1})

		require.Equal(t, game.Min, end.ToMove())
		require.Equal(t, 1, g.Utility(end, game.Max))
		require.Equal(t, -1, g.Utility(end, game.Min))
	})

	t.Run("no opinion before the end", func(t *testing.T) {
		g := MustNew([]int{1, 1}, game.Max)

		require.Equal(t, 0, g.Utility(g.Initial(), game.Max))
		require.Equal(t, 0, g.Utility(g.Initial(), game.Min))
	})
}

func TestHash(t *testing.T) {
	g := MustNew([]int{1, 2}, game.Max)
	s := g.Initial()

	t.Run("equal positions hash equally", func(t *testing.T) {
		a := g.Result(g.Result(s, Move{0, 1}), Move{1, 1})
		b := g.Result(g.Result(s, Move{1, 1}), Move{0, 1})

		require.Equal(t, g.Hash(a), g.Hash(b))
	})

	t.Run("player to move is part of the key", func(t *testing.T) {
		other := MustNew([]int{1, 2}, game.Min)

		require.NotEqual(t, g.Hash(s), other.Hash(other.Initial()))
	})
}

func TestDisplay(t *testing.T) {
	g := MustNew([]int{0, 2, 1}, game.Max)
	var buf bytes.Buffer

	g.Display(&buf, g.Initial())

	require.Contains(t, buf.String(), "board:  [0 2 1]")
	require.Contains(t, buf.String(), "to move: MAX")
}

func TestStateString(t *testing.T) {
	g := MustNew([]int{0, 2}, game.Max)

	require.Equal(t,
		"GameState(to_move=MAX, utility=0, board=[0 2], moves=[(1, 1), (1, 2)])",
		g.Initial().String())
}
