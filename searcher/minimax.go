package searcher

import "context"

// minimax backs up the exact value of state by exhaustive search down to
// terminal states or the depth limit.
func (w *walk[S, M]) minimax(ctx context.Context, state S, depth int) int {
	w.metrics.AddNode()

	if w.game.TerminalTest(state) {
		return w.game.Utility(state, w.player)
	}
	if w.cutoff(ctx, depth) {
		return w.evaluate(state, w.player)
	}

	moves := w.actions(state)
	if w.maximizing(state) {
		value := NegInfinity
		for _, move := range moves {
			value = max(value, w.minimax(ctx, w.game.Result(state, move), depth+1))
		}
		return value
	}

	value := Infinity
	for _, move := range moves {
		value = min(value, w.minimax(ctx, w.game.Result(state, move), depth+1))
	}
	return value
}
