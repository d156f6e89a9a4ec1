package nim

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Display prints the board followed by one line of objects per pile.
// Colors are only emitted when w is a terminal that supports them.
func (g *Game) Display(w io.Writer, s State) {
	out := termenv.NewOutput(w)
	fmt.Fprintf(w, "board:  %v\n", s.board)
	for row, size := range s.board {
		objects := out.String(strings.Repeat("| ", size)).Foreground(out.Color("3")).Bold()
		fmt.Fprintf(w, "  %2d: %s\n", row, objects)
	}
	if g.TerminalTest(s) {
		fmt.Fprintf(w, "%s faces an empty board\n", out.String(string(s.toMove)).Faint())
		return
	}
	fmt.Fprintf(w, "to move: %s\n", out.String(string(s.toMove)).Bold())
}
