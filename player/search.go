package player

import (
	"context"
	"time"

	"nim/experiments/metrics"
	"nim/game"
	"nim/searcher"
)

// AlphaBeta plays the move chosen by the search engine.
type AlphaBeta[S any, M comparable] struct {
	options []searcher.Option
	timeout time.Duration
	last    metrics.SearchMetric
}

var _ Reporter = (*AlphaBeta[int, int])(nil)

// NewAlphaBeta returns a pruning search strategy; pruning stays on whatever
// the options say. A positive timeout bounds each decision; states still
// unexplored when it expires are evaluated statically.
func NewAlphaBeta[S any, M comparable](timeout time.Duration, options ...searcher.Option) *AlphaBeta[S, M] {
	return &AlphaBeta[S, M]{
		options: append(append([]searcher.Option{}, options...), searcher.WithPruning(true)),
		timeout: timeout,
	}
}

// NewMinimax returns an exhaustive search strategy without pruning.
func NewMinimax[S any, M comparable](timeout time.Duration, options ...searcher.Option) *AlphaBeta[S, M] {
	return &AlphaBeta[S, M]{
		options: append(append([]searcher.Option{}, options...), searcher.WithPruning(false)),
		timeout: timeout,
	}
}

func (a *AlphaBeta[S, M]) ChooseMove(ctx context.Context, g game.Game[S, M], state S) (M, error) {
	if g.TerminalTest(state) {
		var none M
		return none, ErrNoMoves
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	result := searcher.New(g, a.options...).Search(ctx, state)
	a.last = result.Metric
	return result.Move, nil
}

func (a *AlphaBeta[S, M]) LastMetric() metrics.SearchMetric {
	return a.last
}
