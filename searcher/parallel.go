package searcher

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// searchRootParallel scores every root child with a full window on its own
// goroutine. Subtrees share nothing but the locked transposition table, and
// full windows make every value exact, so the selected move matches the
// sequential search.
func (w *walk[S, M]) searchRootParallel(ctx context.Context, state S, moves []M) (int, int) {
	values := make([]int, len(moves))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.goroutines)
	for i, move := range moves {
		g.Go(func() error {
			values[i] = w.value(gctx, w.game.Result(state, move), 1, NegInfinity, Infinity)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug().Err(err).Msg("root-parallel search stopped early")
	}

	best := 0
	for i, v := range values[1:] {
		if v > values[best] {
			best = i + 1
		}
	}
	return best, values[best]
}
