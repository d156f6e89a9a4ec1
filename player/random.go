package player

import (
	"context"
	"sync"

	"golang.org/x/exp/rand"

	"nim/game"
)

// Random plays a uniformly random legal move. Equal seeds give equal games.
type Random[S any, M comparable] struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom[S any, M comparable](seed uint64) *Random[S, M] {
	return &Random[S, M]{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random[S, M]) ChooseMove(ctx context.Context, g game.Game[S, M], state S) (M, error) {
	moves := g.Actions(state)
	if len(moves) == 0 {
		var none M
		return none, ErrNoMoves
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return moves[r.rng.Intn(len(moves))], nil
}
