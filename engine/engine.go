package engine

import (
	"errors"
	"io"

	"nim/experiments/metrics"
	"nim/game"
)

// MaxTurns caps a match unless overridden with WithMaxTurns.
const MaxTurns = 10000

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrTurnLimit   = errors.New("turn limit reached")
)

// Outcome describes a finished (or aborted) match.
type Outcome[M comparable] struct {
	// Winner is empty for drawn or unfinished games.
	Winner      game.Player
	Perspective game.Player
	// Utility is the terminal utility for Perspective.
	Utility     int
	Moves       []M
	Game        metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Option func(o *options)

type options struct {
	display     io.Writer
	perspective game.Player
	maxTurns    int
}

// WithDisplay renders the initial state and every state after a move to w.
func WithDisplay(w io.Writer) Option {
	return func(o *options) {
		o.display = w
	}
}

// WithPerspective reports utility for p instead of the first mover.
func WithPerspective(p game.Player) Option {
	return func(o *options) {
		if p.Valid() {
			o.perspective = p
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(o *options) {
		if turns > 0 {
			o.maxTurns = turns
		}
	}
}
