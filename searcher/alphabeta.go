package searcher

import (
	"context"

	"nim/game"
)

/*
alphabeta(node, depth, α, β) is
    if node is terminal: return utility
    if depth cutoff:     return evaluation
    if max node:
        value := −∞
        for each child: value := max(value, alphabeta(child, depth+1, α, β))
                        α := max(α, value); if α ≥ β: break
    else:
        value := +∞
        for each child: value := min(value, alphabeta(child, depth+1, α, β))
                        β := min(β, value); if β ≤ α: break
    return value

The returned value is fail-soft: exact when it lies strictly inside (α, β),
otherwise a bound on the exact value on the same side of the window.
*/
func (w *walk[S, M]) alphabeta(ctx context.Context, state S, depth, alpha, beta int) int {
	w.metrics.AddNode()

	if w.game.TerminalTest(state) {
		return w.game.Utility(state, w.player)
	}
	if w.cutoff(ctx, depth) {
		return w.evaluate(state, w.player)
	}

	remaining := w.remaining(depth)
	var key game.StateHash
	if w.table != nil {
		key = w.hasher.Hash(state)
		if v, ok := w.table.lookup(key, remaining, alpha, beta); ok {
			w.metrics.AddTranspositionHit()
			return v
		}
	}

	origAlpha, origBeta := alpha, beta
	children := w.expand(state)
	var value int
	if w.maximizing(state) {
		value = NegInfinity
		for _, child := range children {
			value = max(value, w.alphabeta(ctx, child, depth+1, alpha, beta))
			alpha = max(alpha, value)
			if alpha >= beta {
				w.metrics.AddCutoff()
				break
			}
		}
	} else {
		value = Infinity
		for _, child := range children {
			value = min(value, w.alphabeta(ctx, child, depth+1, alpha, beta))
			beta = min(beta, value)
			if beta <= alpha {
				w.metrics.AddCutoff()
				break
			}
		}
	}

	// Values backed up after cancellation may rest on truncated subtrees.
	if w.table != nil && ctx.Err() == nil {
		w.table.store(key, remaining, value, origAlpha, origBeta)
	}
	return value
}
