package searcher

import (
	"cmp"
	"slices"
)

type scoredState[S any] struct {
	state S
	score int
}

// expand returns the children of state in Actions order, or, with move
// ordering, best first for the side to move. Ties keep Actions order.
func (w *walk[S, M]) expand(state S) []S {
	moves := w.actions(state)
	children := make([]S, len(moves))
	for i, move := range moves {
		children[i] = w.game.Result(state, move)
	}
	if !w.ordering {
		return children
	}

	scored := make([]scoredState[S], len(children))
	for i, child := range children {
		scored[i] = scoredState[S]{state: child, score: w.staticScore(child)}
	}
	maximizing := w.maximizing(state)
	slices.SortStableFunc(scored, func(a, b scoredState[S]) int {
		if maximizing {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.score, b.score)
	})
	for i := range scored {
		children[i] = scored[i].state
	}
	return children
}

// staticScore rates a child without searching it. Terminal children count
// double so that decisive moves sort ahead of merely promising ones.
func (w *walk[S, M]) staticScore(state S) int {
	if w.game.TerminalTest(state) {
		return 2 * w.game.Utility(state, w.player)
	}
	return w.evaluate(state, w.player)
}
