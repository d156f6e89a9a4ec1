package searcher

import (
	"context"
	"fmt"

	"nim/game"
)

// walk holds the state of a single Search: the player being optimised for and
// the transposition table, if any. Values are always from player's
// perspective, so states where player is to move are max nodes.
type walk[S any, M comparable] struct {
	*Searcher[S, M]
	player game.Player
	table  *transpositionTable
}

func (s *Searcher[S, M]) newWalk(player game.Player) *walk[S, M] {
	w := &walk[S, M]{Searcher: s, player: player}
	if s.transpositions {
		w.table = newTranspositionTable(s.tableSize)
	}
	return w
}

func (w *walk[S, M]) value(ctx context.Context, state S, depth, alpha, beta int) int {
	if w.pruning {
		return w.alphabeta(ctx, state, depth, alpha, beta)
	}
	return w.minimax(ctx, state, depth)
}

// cutoff reports whether state must be evaluated statically instead of
// expanded: the depth limit is reached or the search was cancelled.
func (w *walk[S, M]) cutoff(ctx context.Context, depth int) bool {
	if w.depth > 0 && depth >= w.depth {
		return true
	}
	if ctx.Err() != nil {
		w.metrics.SetInterrupted()
		return true
	}
	return false
}

// remaining is the number of plies still allowed below depth.
func (w *walk[S, M]) remaining(depth int) int {
	if w.depth == 0 {
		return Infinity
	}
	return w.depth - depth
}

// actions panics when a non-terminal state offers no moves.
func (w *walk[S, M]) actions(state S) []M {
	moves := w.game.Actions(state)
	if len(moves) == 0 {
		panic(fmt.Sprintf("non-terminal state has no actions: %v", state))
	}
	return moves
}

func (w *walk[S, M]) maximizing(state S) bool {
	return w.game.ToMove(state) == w.player
}
