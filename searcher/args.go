package searcher

import "nim/experiments/metrics"

// Defaults for the search engine.
const (
	DefaultGoroutines = 1
	// DefaultTableSize bounds the number of transposition entries kept per search.
	DefaultTableSize = 1 << 20
)

type Option func(s *settings)

type settings struct {
	depth          int // 0 searches to terminal states
	pruning        bool
	transpositions bool
	tableSize      int
	ordering       bool
	goroutines     int
	metrics        metrics.Collector
}

func defaultSettings() settings {
	return settings{
		pruning:    true,
		tableSize:  DefaultTableSize,
		goroutines: DefaultGoroutines,
		metrics:    metrics.NewDummyCollector(),
	}
}

// WithDepth limits the search to depth plies below the root. States at the
// limit are scored by the game's Evaluator, or by Utility when it has none.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithPruning toggles alpha-beta pruning. Without it the searcher runs plain
// minimax.
func WithPruning(enabled bool) Option {
	return func(s *settings) {
		s.pruning = enabled
	}
}

// WithTranspositions caches backed-up values by state hash. It has no effect
// for games that do not implement game.Hasher, or when pruning is disabled.
func WithTranspositions(size int) Option {
	return func(s *settings) {
		s.transpositions = true
		if size > 0 {
			s.tableSize = size
		}
	}
}

// WithMoveOrdering searches decisive and well evaluated children first below
// the root.
func WithMoveOrdering() Option {
	return func(s *settings) {
		s.ordering = true
	}
}

// WithGoroutines searches the root's children concurrently.
func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithMetrics counts nodes, cutoffs and transposition hits for Result.Metric.
func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}
