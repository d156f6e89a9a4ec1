// Package nim implements normal-play Nim on top of the game abstraction: a
// move removes one or more objects from a single pile and the player who
// takes the last object wins.
package nim

import (
	"encoding/binary"
	"errors"
	"fmt"
	"slices"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"

	"nim/game"
)

var (
	ErrEmptyBoard   = errors.New("board must have at least one pile")
	ErrNegativePile = errors.New("pile sizes must be non-negative")
)

// DefaultBoard is used when no board is configured.
var DefaultBoard = []int{3, 1}

// Game holds the starting position; all other state lives in State values.
type Game struct {
	initial State
}

var _ game.Game[State, Move] = (*Game)(nil)
var _ game.Hasher[State] = (*Game)(nil)

// New creates a match on a copy of board with first to move.
func New(board []int, first game.Player) (*Game, error) {
	if len(board) == 0 {
		return nil, ErrEmptyBoard
	}
	for row, size := range board {
		if size < 0 {
			return nil, fmt.Errorf("row %d has %d objects: %w", row, size, ErrNegativePile)
		}
	}
	if !first.Valid() {
		return nil, fmt.Errorf("first mover %q is not %s or %s", first, game.Max, game.Min)
	}
	return &Game{initial: newState(first, slices.Clone(board))}, nil
}

// MustNew is New for boards known to be valid.
func MustNew(board []int, first game.Player) *Game {
	g, err := New(board, first)
	if err != nil {
		panic(err)
	}
	return g
}

// Default returns the standard [3, 1] match with MAX moving first.
func Default() *Game {
	return MustNew(DefaultBoard, game.Max)
}

// Initial returns the starting position.
func (g *Game) Initial() State {
	return g.initial
}

func (g *Game) ToMove(s State) game.Player {
	return s.toMove
}

// Actions lists the moves of s, rows in order and counts ascending.
func (g *Game) Actions(s State) []Move {
	return s.Moves()
}

// Result removes m.Count objects from row m.Row and passes the turn. Moves
// not in Actions(s) return s unchanged.
func (g *Game) Result(s State, m Move) State {
	if !lo.Contains(s.moves, m) {
		return s
	}
	board := slices.Clone(s.board)
	board[m.Row] -= m.Count
	return newState(s.toMove.Opponent(), board)
}

// Utility follows normal play: at a terminal state the player to move has
// lost (-1) and the other player has won (+1).
func (g *Game) Utility(s State, player game.Player) int {
	if !g.TerminalTest(s) {
		return 0
	}
	if player == s.toMove {
		return -1
	}
	return 1
}

// TerminalTest reports whether every pile is empty.
func (g *Game) TerminalTest(s State) bool {
	return s.terminal()
}

// Hash keys a state by its player to move and pile sizes.
func (g *Game) Hash(s State) game.StateHash {
	buf := make([]byte, 1, 1+len(s.board)*binary.MaxVarintLen64)
	if s.toMove == game.Min {
		buf[0] = 1
	}
	for _, size := range s.board {
		buf = binary.AppendUvarint(buf, uint64(size))
	}
	return game.StateHash(xxhash.Sum64(buf))
}
