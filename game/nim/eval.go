package nim

import (
	"github.com/samber/lo"

	"nim/game"
)

// NimSum is the bitwise xor of all pile sizes. The player to move can force a
// win exactly when it is non-zero.
func NimSum(board []int) int {
	return lo.Reduce(board, func(sum int, size int, _ int) int { return sum ^ size }, 0)
}

// Analyzed adds a nim-sum evaluation to a Game so that depth-limited searches
// score their cutoff states by the known winning condition instead of 0.
type Analyzed struct {
	*Game
}

var _ game.Evaluator[State] = Analyzed{}

func (a Analyzed) Evaluate(s State, player game.Player) int {
	if a.TerminalTest(s) {
		return a.Utility(s, player)
	}
	value := -1
	if NimSum(s.board) != 0 {
		value = 1
	}
	if player != s.toMove {
		value = -value
	}
	return value
}
