package game

import "io"

// StateHash identifies a position for transposition lookups.
type StateHash uint64

// Game is the contract a deterministic, two-player, zero-sum game exposes to
// the searcher and the engine. States are immutable values: Result always
// returns a new state and never modifies its argument.
type Game[S any, M comparable] interface {
	// Initial returns the starting position of the match.
	Initial() S
	// ToMove returns the player whose turn it is in state.
	ToMove(state S) Player
	// Actions returns the legal moves from state, empty exactly when state is terminal.
	Actions(state S) []M
	// Result returns the state after move. A move that is not in Actions(state)
	// leaves the state unchanged.
	Result(state S, move M) S
	// Utility returns +1, -1 or 0 for player at a terminal state, 0 elsewhere.
	Utility(state S, player Player) int
	TerminalTest(state S) bool
	// Display writes a human readable rendering of state.
	Display(w io.Writer, state S)
}

// Evaluator is implemented by games that can score a non-terminal state
// statically, used when a depth-limited search reaches its cutoff. Scores use
// the same sign convention as Utility.
type Evaluator[S any] interface {
	Evaluate(state S, player Player) int
}

// Hasher is implemented by games whose states can be keyed in a transposition
// table. Equal positions must hash equally, including the player to move.
type Hasher[S any] interface {
	Hash(state S) StateHash
}

// Evaluate scores a state from player's perspective.
type Evaluate[S any] func(state S, player Player) int
