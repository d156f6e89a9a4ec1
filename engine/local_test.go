package engine

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nim/game"
	"nim/game/nim"
	"nim/player"
	"nim/searcher"
)

type fixedStrategy struct {
	move nim.Move
}

func (f fixedStrategy) ChooseMove(context.Context, game.Game[nim.State, nim.Move], nim.State) (nim.Move, error) {
	return f.move, nil
}

type scriptedReader struct {
	lines []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func TestEngineRun(t *testing.T) {
	ctx := context.Background()

	t.Run("search wins a winning position against random play", func(t *testing.T) {
		g := nim.MustNew([]int{0, 5, 3, 1}, game.Max)
		for seed := uint64(1); seed <= 5; seed++ {
			e := New[nim.State, nim.Move](g,
				player.NewAlphaBeta[nim.State, nim.Move](0, searcher.WithTranspositions(0)),
				player.NewRandom[nim.State, nim.Move](seed))

			out, err := e.Run(ctx)

			require.NoError(t, err)
			require.Equal(t, game.Max, out.Winner, "seed %d", seed)
			require.Equal(t, 1, out.Utility)
			require.Equal(t, game.Max, out.Perspective)
			require.Equal(t, len(out.Moves), out.Game.TotalMoves)
		}
	})

	t.Run("optimal play from [1 1] loses for the first mover", func(t *testing.T) {
		g := nim.MustNew([]int{1, 1}, game.Max)
		e := New[nim.State, nim.Move](g,
			player.NewAlphaBeta[nim.State, nim.Move](0),
			player.NewAlphaBeta[nim.State, nim.Move](0))

		out, err := e.Run(ctx)

		require.NoError(t, err)
		require.Equal(t, -1, out.Utility)
		require.Equal(t, game.Min, out.Winner)
		require.Equal(t, []nim.Move{{Row: 0, Count: 1}, {Row: 1, Count: 1}}, out.Moves)
	})

	t.Run("utility can be reported for the other side", func(t *testing.T) {
		g := nim.MustNew([]int{1}, game.Max)
		e := New[nim.State, nim.Move](g,
			player.NewAlphaBeta[nim.State, nim.Move](0),
			player.NewRandom[nim.State, nim.Move](1),
			WithPerspective(game.Min))

		out, err := e.Run(ctx)

		require.NoError(t, err)
		require.Equal(t, -1, out.Utility)
		require.Equal(t, 1, out.Game.Utility, "Game metrics keep the first mover's view")
	})

	t.Run("records search metrics per move", func(t *testing.T) {
		g := nim.MustNew([]int{2, 2}, game.Min)
		e := New[nim.State, nim.Move](g,
			player.NewRandom[nim.State, nim.Move](3),
			player.NewAlphaBeta[nim.State, nim.Move](0, searcher.WithMetrics()))

		out, err := e.Run(ctx)

		require.NoError(t, err)
		require.Equal(t, game.Min, out.Game.StartingPlayer)
		require.NotEmpty(t, out.MoveMetrics)
		first := out.MoveMetrics[0]
		require.Equal(t, 1, first.Step)
		require.Equal(t, game.Min, first.Player)
		require.Positive(t, first.Nodes)
	})

	t.Run("shows every state", func(t *testing.T) {
		g := nim.MustNew([]int{0, 2}, game.Max)
		var buf bytes.Buffer
		e := New[nim.State, nim.Move](g,
			player.NewAlphaBeta[nim.State, nim.Move](0),
			player.NewRandom[nim.State, nim.Move](1),
			WithDisplay(&buf))

		out, err := e.Run(ctx)

		require.NoError(t, err)
		require.Equal(t, len(out.Moves)+1, strings.Count(buf.String(), "board:"))
	})

	t.Run("human input drives a player", func(t *testing.T) {
		g := nim.MustNew([]int{0, 5, 3, 1}, game.Max)
		human := player.NewInteractive[nim.State, nim.Move](
			&scriptedReader{lines: []string{"1,5", "2,1", "3,1"}}, &bytes.Buffer{}, nim.ParseMove)
		e := New[nim.State, nim.Move](g, human, firstMove{})

		out, err := e.Run(ctx)

		require.NoError(t, err)
		require.Equal(t, game.Max, out.Winner)
		require.Equal(t, []nim.Move{
			{Row: 1, Count: 5}, {Row: 2, Count: 1}, {Row: 2, Count: 1}, {Row: 2, Count: 1}, {Row: 3, Count: 1},
		}, out.Moves)
	})

	t.Run("illegal moves abort the match", func(t *testing.T) {
		g := nim.MustNew([]int{1, 1}, game.Max)
		e := New[nim.State, nim.Move](g,
			fixedStrategy{move: nim.Move{Row: 0, Count: 2}},
			player.NewRandom[nim.State, nim.Move](1))

		_, err := e.Run(ctx)

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("turn limit stops long matches", func(t *testing.T) {
		g := nim.MustNew([]int{3}, game.Max)
		e := New[nim.State, nim.Move](g,
			fixedStrategy{move: nim.Move{Row: 0, Count: 1}},
			fixedStrategy{move: nim.Move{Row: 0, Count: 1}},
			WithMaxTurns(2))

		out, err := e.Run(ctx)

		require.ErrorIs(t, err, ErrTurnLimit)
		require.Empty(t, out.Winner)
		require.Len(t, out.Moves, 2)
	})

	t.Run("cancelled matches stop", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		g := nim.Default()
		e := New[nim.State, nim.Move](g,
			player.NewRandom[nim.State, nim.Move](1),
			player.NewRandom[nim.State, nim.Move](2))

		_, err := e.Run(cancelled)

		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("both strategies are required", func(t *testing.T) {
		require.Panics(t, func() {
			New[nim.State, nim.Move](nim.Default(), nil, player.NewRandom[nim.State, nim.Move](1))
		})
	})
}

// firstMove always plays the first legal move.
type firstMove struct{}

func (firstMove) ChooseMove(_ context.Context, g game.Game[nim.State, nim.Move], s nim.State) (nim.Move, error) {
	return g.Actions(s)[0], nil
}
