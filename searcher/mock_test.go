package searcher

import (
	"fmt"
	"io"

	"nim/game"
)

// treeGame is a fixed two-ply tree: MAX picks a1..a3, MIN replies, and each
// leaf carries MAX's payoff.
//
//	       A
//	  a1/  a2|  \a3
//	   B     C     D
//	 3 12 8 2 4 6 14 5 2
type treeGame struct {
	children map[string][]string
	payoffs  map[string]int
}

func newTreeGame() treeGame {
	return treeGame{
		children: map[string][]string{
			"A": {"B", "C", "D"},
			"B": {"B1", "B2", "B3"},
			"C": {"C1", "C2", "C3"},
			"D": {"D1", "D2", "D3"},
		},
		payoffs: map[string]int{
			"B1": 3, "B2": 12, "B3": 8,
			"C1": 2, "C2": 4, "C3": 6,
			"D1": 14, "D2": 5, "D3": 2,
		},
	}
}

func (g treeGame) Initial() string { return "A" }

func (g treeGame) ToMove(state string) game.Player {
	if state == "A" {
		return game.Max
	}
	return game.Min
}

// Moves are named after the child they lead to.
func (g treeGame) Actions(state string) []string {
	return g.children[state]
}

func (g treeGame) Result(state string, move string) string {
	for _, child := range g.children[state] {
		if child == move {
			return child
		}
	}
	return state
}

func (g treeGame) Utility(state string, player game.Player) int {
	payoff := g.payoffs[state]
	if player == game.Min {
		return -payoff
	}
	return payoff
}

func (g treeGame) TerminalTest(state string) bool {
	_, ok := g.payoffs[state]
	return ok
}

func (g treeGame) Display(w io.Writer, state string) {
	fmt.Fprintln(w, state)
}

// brokenGame claims its only state is not over yet offers no moves.
type brokenGame struct{}

func (brokenGame) Initial() int                   { return 0 }
func (brokenGame) ToMove(int) game.Player         { return game.Max }
func (brokenGame) Actions(int) []int              { return nil }
func (brokenGame) Result(state int, _ int) int    { return state }
func (brokenGame) Utility(int, game.Player) int   { return 0 }
func (brokenGame) TerminalTest(int) bool          { return false }
func (brokenGame) Display(w io.Writer, state int) { fmt.Fprintln(w, state) }
