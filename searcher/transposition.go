package searcher

import (
	"sync"

	"nim/game"
)

type bound uint8

const (
	exact bound = iota + 1
	lower       // value is a lower bound on the exact value
	upper       // value is an upper bound on the exact value
)

type entry struct {
	value     int
	remaining int
	flag      bound
}

// transpositionTable caches backed-up values for one search. It is shared by
// the root goroutines, so access is locked.
type transpositionTable struct {
	sync.RWMutex
	entries map[game.StateHash]entry
	size    int
}

func newTranspositionTable(size int) *transpositionTable {
	return &transpositionTable{
		entries: make(map[game.StateHash]entry),
		size:    size,
	}
}

// lookup returns a cached value when it was searched with exactly remaining
// plies left and settles the (alpha, beta) window on its own. A deeper entry
// is not reused: depth-limited values differ between horizons.
func (t *transpositionTable) lookup(key game.StateHash, remaining, alpha, beta int) (int, bool) {
	t.RLock()
	e, ok := t.entries[key]
	t.RUnlock()

	if !ok || e.remaining != remaining {
		return 0, false
	}
	switch e.flag {
	case exact:
		return e.value, true
	case lower:
		if e.value >= beta {
			return e.value, true
		}
	case upper:
		if e.value <= alpha {
			return e.value, true
		}
	}
	return 0, false
}

// store classifies value against the window it was searched with, replacing
// any earlier entry for key. Once the table is full only existing keys are
// refreshed.
func (t *transpositionTable) store(key game.StateHash, remaining, value, alpha, beta int) {
	flag := exact
	if value <= alpha {
		flag = upper
	} else if value >= beta {
		flag = lower
	}

	t.Lock()
	defer t.Unlock()

	if _, ok := t.entries[key]; !ok && len(t.entries) >= t.size {
		return
	}
	t.entries[key] = entry{value: value, remaining: remaining, flag: flag}
}

func (t *transpositionTable) len() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.entries)
}
