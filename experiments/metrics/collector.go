package metrics

import (
	"sync/atomic"
	"time"

	"nim/game"
)

// SearchMetric summarises one move search.
type SearchMetric struct {
	Depth             int // 0 means unlimited
	Pruning           bool
	Transpositions    bool
	Goroutines        int
	Duration          time.Duration
	Nodes             int
	Cutoffs           int
	TranspositionHits int
	Interrupted       bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Utility        int // From the starting player's perspective
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters during a search. Implementations must be safe
// for use from several goroutines once Start has returned.
type Collector interface {
	Start(depth int, pruning, transpositions bool, goroutines int)
	AddNode()
	AddCutoff()
	AddTranspositionHit()
	SetInterrupted()
	Complete() SearchMetric
}

type collector struct {
	depth          int
	pruning        bool
	transpositions bool
	goroutines     int
	startTime      time.Time
	nodes          atomic.Int64
	cutoffs        atomic.Int64
	hits           atomic.Int64
	interrupted    atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning, transpositions bool, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
	m.transpositions = transpositions
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.hits.Store(0)
	m.interrupted.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddTranspositionHit() {
	m.hits.Add(1)
}

func (m *collector) SetInterrupted() {
	m.interrupted.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:             m.depth,
		Pruning:           m.pruning,
		Transpositions:    m.transpositions,
		Goroutines:        m.goroutines,
		Duration:          time.Since(m.startTime),
		Nodes:             int(m.nodes.Load()),
		Cutoffs:           int(m.cutoffs.Load()),
		TranspositionHits: int(m.hits.Load()),
		Interrupted:       m.interrupted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning, transpositions bool, goroutines int) {}
func (m *dummyCollector) AddNode()                                                    {}
func (m *dummyCollector) AddCutoff()                                                  {}
func (m *dummyCollector) AddTranspositionHit()                                        {}
func (m *dummyCollector) SetInterrupted()                                             {}
func (m *dummyCollector) Complete() SearchMetric                                      { return SearchMetric{} }
