package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"nim/experiments/metrics"
	"nim/game"
	"nim/player"
)

// Engine plays one match between two strategies.
type Engine[S any, M comparable] struct {
	options
	game    game.Game[S, M]
	players map[game.Player]player.Strategy[S, M]
}

// New pairs a strategy with each side. Both strategies are required.
func New[S any, M comparable](g game.Game[S, M], maxPlayer, minPlayer player.Strategy[S, M], opts ...Option) *Engine[S, M] {
	if maxPlayer == nil || minPlayer == nil {
		panic("need a strategy for both players")
	}
	e := &Engine[S, M]{
		options: options{maxTurns: MaxTurns},
		game:    g,
		players: map[game.Player]player.Strategy[S, M]{
			game.Max: maxPlayer,
			game.Min: minPlayer,
		},
	}
	for _, opt := range opts {
		opt(&e.options)
	}
	return e
}

// Run asks the player to move for a move, checks it against Actions and
// applies it, until the game reaches a terminal state.
func (e *Engine[S, M]) Run(ctx context.Context) (Outcome[M], error) {
	state := e.game.Initial()
	first := e.game.ToMove(state)
	out := Outcome[M]{Perspective: e.perspective}
	if out.Perspective == "" {
		out.Perspective = first
	}
	out.Game = metrics.GameMetric{StartingPlayer: first, StartTime: time.Now()}

	log.Info().Msgf("player %s is starting", first)
	e.show(state)

	for turn := 1; !e.game.TerminalTest(state); turn++ {
		if turn > e.maxTurns {
			return e.finish(out, state), fmt.Errorf("%w: %d moves played", ErrTurnLimit, e.maxTurns)
		}
		if err := ctx.Err(); err != nil {
			return e.finish(out, state), err
		}

		mover := e.game.ToMove(state)
		strategy := e.players[mover]
		move, err := strategy.ChooseMove(ctx, e.game, state)
		if err != nil {
			return e.finish(out, state), fmt.Errorf("%s choosing move: %w", mover, err)
		}
		if !lo.Contains(e.game.Actions(state), move) {
			return e.finish(out, state), fmt.Errorf("%w %v by %s", ErrIllegalMove, move, mover)
		}

		mm := metrics.MoveMetric{Step: turn, Player: mover, Move: fmt.Sprint(move)}
		if r, ok := strategy.(player.Reporter); ok {
			mm.SearchMetric = r.LastMetric()
		}
		out.MoveMetrics = append(out.MoveMetrics, mm)
		out.Moves = append(out.Moves, move)

		log.Debug().Int("turn", turn).Str("player", string(mover)).Msgf("played %v", move)
		state = e.game.Result(state, move)
		e.show(state)
	}

	out = e.finish(out, state)
	log.Info().Msgf("game over after %d moves, winner: %s", len(out.Moves), out.Winner)
	return out, nil
}

func (e *Engine[S, M]) show(state S) {
	if e.display != nil {
		e.game.Display(e.display, state)
	}
}

func (e *Engine[S, M]) finish(out Outcome[M], state S) Outcome[M] {
	first := out.Game.StartingPlayer
	if e.game.TerminalTest(state) {
		out.Utility = e.game.Utility(state, out.Perspective)
		out.Game.Utility = e.game.Utility(state, first)
		switch {
		case out.Game.Utility > 0:
			out.Winner = first
		case out.Game.Utility < 0:
			out.Winner = first.Opponent()
		}
	}
	out.Game.Winner = out.Winner
	out.Game.EndTime = time.Now()
	out.Game.Duration = out.Game.EndTime.Sub(out.Game.StartTime)
	out.Game.TotalMoves = len(out.Moves)
	return out
}
