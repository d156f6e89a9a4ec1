// Package searcher picks moves for two-player zero-sum games by minimax, with
// optional alpha-beta pruning, depth cutoff, transposition table, move
// ordering and root parallelism.
package searcher

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"

	"nim/experiments/metrics"
	"nim/game"
)

// Bounds for alpha and beta. Utilities and evaluations stay well inside them.
const (
	Infinity    = math.MaxInt
	NegInfinity = math.MinInt
)

// Result is the outcome of one search. Value is from the perspective of the
// player to move at the searched state.
type Result[M comparable] struct {
	Move   M
	Value  int
	Metric metrics.SearchMetric
}

// Searcher is reusable across moves but not safe for concurrent Search calls.
type Searcher[S any, M comparable] struct {
	settings
	game     game.Game[S, M]
	evaluate game.Evaluate[S]
	hasher   game.Hasher[S]
}

func New[S any, M comparable](g game.Game[S, M], options ...Option) *Searcher[S, M] {
	s := &Searcher[S, M]{
		settings: defaultSettings(),
		game:     g,
		evaluate: g.Utility,
	}
	for _, option := range options {
		option(&s.settings)
	}
	if e, ok := g.(game.Evaluator[S]); ok {
		s.evaluate = e.Evaluate
	}
	if s.transpositions {
		h, ok := g.(game.Hasher[S])
		switch {
		case !ok:
			log.Warn().Msg("game states cannot be hashed; transposition table disabled")
			s.transpositions = false
		case !s.pruning:
			s.transpositions = false
		default:
			s.hasher = h
		}
	}
	return s
}

// BestMove returns the move Search selects.
func (s *Searcher[S, M]) BestMove(ctx context.Context, state S) M {
	return s.Search(ctx, state).Move
}

// Search returns the optimal move for the player to move, assuming optimal
// replies. Among equally valued moves the first in Actions order wins. A
// cancelled ctx turns every unexplored state into a cutoff, so the result is
// then only as good as the evaluation.
//
// Searching a terminal state is a programming error and panics.
func (s *Searcher[S, M]) Search(ctx context.Context, state S) Result[M] {
	if s.game.TerminalTest(state) {
		panic("cannot search a terminal state")
	}

	w := s.newWalk(s.game.ToMove(state))
	moves := w.actions(state)

	s.metrics.Start(s.depth, s.pruning, w.table != nil, s.goroutines)
	var best, bestValue int
	if s.goroutines > 1 && len(moves) > 1 {
		best, bestValue = w.searchRootParallel(ctx, state, moves)
	} else {
		best, bestValue = w.searchRoot(ctx, state, moves)
	}
	metric := s.metrics.Complete()

	log.Debug().
		Str("player", string(w.player)).
		Int("value", bestValue).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Int("tt-hits", metric.TranspositionHits).
		Dur("duration", metric.Duration).
		Msg("search-complete")
	if metric.Interrupted {
		log.Warn().Msg("search interrupted; result relies on cutoff evaluations")
	}

	return Result[M]{Move: moves[best], Value: bestValue, Metric: metric}
}

// searchRoot scores the root's children in Actions order and keeps the first
// strictly better one.
func (w *walk[S, M]) searchRoot(ctx context.Context, state S, moves []M) (int, int) {
	alpha := NegInfinity
	best, bestValue := -1, NegInfinity
	for i, move := range moves {
		v := w.value(ctx, w.game.Result(state, move), 1, alpha, Infinity)
		if best < 0 || v > bestValue {
			best, bestValue = i, v
		}
		alpha = max(alpha, v)
	}
	return best, bestValue
}
