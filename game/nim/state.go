package nim

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"nim/game"
)

// Move removes Count objects from the pile at Row.
type Move struct {
	Row   int
	Count int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Count)
}

// State is an immutable snapshot of a Nim position. The board and move list
// are owned by the state; accessors hand out copies.
type State struct {
	toMove  game.Player
	utility int
	board   []int
	moves   []Move
}

// newState takes ownership of board.
func newState(toMove game.Player, board []int) State {
	s := State{
		toMove: toMove,
		board:  board,
		moves:  validMoves(board),
	}
	if s.terminal() {
		// The side facing an empty board did not take the last object.
		s.utility = -1
	}
	return s
}

// validMoves lists every (row, count) pair with 1 <= count <= board[row],
// rows in order and counts ascending. Empty piles contribute nothing.
func validMoves(board []int) []Move {
	moves := make([]Move, 0, lo.Sum(board))
	for row, size := range board {
		for count := 1; count <= size; count++ {
			moves = append(moves, Move{Row: row, Count: count})
		}
	}
	return moves
}

func (s State) terminal() bool {
	return lo.EveryBy(s.board, func(size int) bool { return size == 0 })
}

func (s State) ToMove() game.Player {
	return s.toMove
}

// Utility is the cached outcome for the player to move: -1 once the board is
// empty, 0 before that.
func (s State) Utility() int {
	return s.utility
}

func (s State) Board() []int {
	return slices.Clone(s.board)
}

func (s State) Moves() []Move {
	return slices.Clone(s.moves)
}

func (s State) String() string {
	moves := lo.Map(s.moves, func(m Move, _ int) string { return m.String() })
	return fmt.Sprintf("GameState(to_move=%s, utility=%d, board=%v, moves=[%s])",
		s.toMove, s.utility, s.board, strings.Join(moves, ", "))
}
