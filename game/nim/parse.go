package nim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidMove = errors.New("invalid move")

// ParseMove reads a move typed as "(1, 3)", "1,3" or "1 3". It checks the
// syntax only; legality depends on the state.
func ParseMove(input string) (Move, error) {
	fields := strings.Fields(strings.NewReplacer("(", " ", ")", " ", ",", " ").Replace(input))
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("%w: expected a row and a count, got %q", ErrInvalidMove, input)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Move{}, fmt.Errorf("%w: row %q is not a number", ErrInvalidMove, fields[0])
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: count %q is not a number", ErrInvalidMove, fields[1])
	}
	return Move{Row: row, Count: count}, nil
}

// ParseBoard reads comma or space separated pile sizes such as "0,5,3,1".
func ParseBoard(input string) ([]int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '[' || r == ']'
	})
	if len(fields) == 0 {
		return nil, ErrEmptyBoard
	}
	board := make([]int, len(fields))
	for i, f := range fields {
		size, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("pile %d: %q is not a number", i, f)
		}
		if size < 0 {
			return nil, fmt.Errorf("row %d has %d objects: %w", i, size, ErrNegativePile)
		}
		board[i] = size
	}
	return board, nil
}
