package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"

	"nim/game"
)

const prompt = "Your move? "

// LineReader yields one line of user input per call. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// prompter is implemented by readers that draw their own prompt.
type prompter interface {
	SetPrompt(prompt string)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

// NewLineReader reads lines from r, for input that is not a terminal.
func NewLineReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (s *scannerReader) Readline() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Interactive asks a person for moves, showing the state and the legal moves
// and asking again until a legal move is entered.
//
// The context is checked before each prompt only. A Readline call that is
// already blocked is not interrupted by cancellation; readers such as
// *readline.Instance end it themselves with readline.ErrInterrupt or io.EOF.
type Interactive[S any, M comparable] struct {
	in    LineReader
	out   io.Writer
	parse func(string) (M, error)
}

func NewInteractive[S any, M comparable](in LineReader, out io.Writer, parse func(string) (M, error)) *Interactive[S, M] {
	return &Interactive[S, M]{in: in, out: out, parse: parse}
}

func (p *Interactive[S, M]) ChooseMove(ctx context.Context, g game.Game[S, M], state S) (M, error) {
	var none M
	moves := g.Actions(state)
	if len(moves) == 0 {
		return none, ErrNoMoves
	}

	fmt.Fprintln(p.out, "current state:")
	g.Display(p.out, state)
	fmt.Fprintf(p.out, "available moves: %v\n", moves)
	for {
		if err := ctx.Err(); err != nil {
			return none, err
		}
		if pr, ok := p.in.(prompter); ok {
			pr.SetPrompt(prompt)
		} else {
			fmt.Fprint(p.out, prompt)
		}
		line, err := p.in.Readline()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return none, ErrNoInput
			}
			return none, fmt.Errorf("reading move: %w", err)
		}
		move, err := p.parse(line)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		if !lo.Contains(moves, move) {
			fmt.Fprintf(p.out, "illegal move %v\n", move)
			continue
		}
		return move, nil
	}
}
