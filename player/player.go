// Package player provides the strategies the engine consults for moves:
// search-backed, random and interactive.
package player

import (
	"context"
	"errors"

	"nim/experiments/metrics"
	"nim/game"
)

var (
	ErrNoMoves = errors.New("no legal moves")
	ErrNoInput = errors.New("no more input")
)

// Strategy picks a move for the player to move in state.
type Strategy[S any, M comparable] interface {
	ChooseMove(ctx context.Context, g game.Game[S, M], state S) (M, error)
}

// Reporter is implemented by strategies that search, exposing the metrics of
// their most recent decision.
type Reporter interface {
	LastMetric() metrics.SearchMetric
}
