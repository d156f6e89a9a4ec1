package game

import (
	"fmt"
	"strings"
)

// Player labels one of the two sides of a game.
type Player string

const (
	Max Player = "MAX"
	Min Player = "MIN"
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Max:
		return Min
	case Min:
		return Max
	default:
		panic(fmt.Sprintf("unknown player %q", string(p)))
	}
}

// Valid reports whether p is MAX or MIN.
func (p Player) Valid() bool {
	return p == Max || p == Min
}

// ParsePlayer accepts "max" or "min" in any case.
func ParsePlayer(s string) (Player, error) {
	p := Player(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown player %q: expected %s or %s", s, Max, Min)
	}
	return p, nil
}
