// Package experiments measures the search engine: how much pruning,
// transpositions and ordering save against plain minimax, and how search
// strategies fare against each other over a series of matches.
package experiments

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"nim/engine"
	"nim/experiments/metrics"
	"nim/game"
	"nim/game/nim"
	"nim/player"
	"nim/searcher"
)

const NumGames = 20 // Per match up

// ErrMismatch reports a configuration that disagreed with plain minimax.
var ErrMismatch = errors.New("search disagrees with minimax")

// ComparisonBoards are small enough for plain minimax to finish quickly.
var ComparisonBoards = [][]int{
	{3, 1},
	{2, 2},
	{1, 2, 3},
	{0, 5, 3, 1},
	{2, 2, 3, 2},
}

var comparisonConfigs = []metrics.StrategyConfig{
	{ID: 1, Name: "minimax", Goroutines: 1}, // Baseline
	{ID: 2, Name: "alphabeta", Pruning: true, Goroutines: 1},
	{ID: 3, Name: "alphabeta", Pruning: true, Transpositions: true, Goroutines: 1},
	{ID: 4, Name: "alphabeta", Pruning: true, Transpositions: true, Ordering: true, Goroutines: 1},
	{ID: 5, Name: "alphabeta", Pruning: true, Transpositions: true, Goroutines: 4},
	{ID: 6, Name: "minimax", Depth: 4, Goroutines: 1}, // Baseline at depth 4
	{ID: 7, Name: "alphabeta", Depth: 4, Pruning: true, Transpositions: true, Goroutines: 1},
	{ID: 8, Name: "alphabeta", Depth: 4, Pruning: true, Transpositions: true, Ordering: true, Goroutines: 4},
}

// Match pairs a configuration with each side.
type Match struct {
	Max metrics.StrategyConfig
	Min metrics.StrategyConfig
}

// DefaultMatches pit full search against random play and a shallow nim-sum
// search from both sides.
var DefaultMatches = []Match{
	{Max: searchConfig, Min: randomConfig},
	{Max: randomConfig, Min: searchConfig},
	{Max: searchConfig, Min: shallowConfig},
	{Max: shallowConfig, Min: searchConfig},
}

var (
	searchConfig  = metrics.StrategyConfig{ID: 1, Name: "alphabeta", Pruning: true, Transpositions: true, Goroutines: 1}
	shallowConfig = metrics.StrategyConfig{ID: 2, Name: "alphabeta", Depth: 1, Pruning: true, Goroutines: 1}
	randomConfig  = metrics.StrategyConfig{ID: 3, Name: "random"}
)

// Compare searches the initial state of every board with each comparison
// configuration and checks that all of them agree with plain minimax at the
// same depth limit on the move and its value. Cutoffs are scored by the
// nim-sum. Boards that are already over are skipped.
func Compare(ctx context.Context, boards [][]int, first game.Player) ([]metrics.ComparisonRecord, error) {
	records := []metrics.ComparisonRecord{}
	for _, board := range boards {
		g, err := nim.New(board, first)
		if err != nil {
			return records, fmt.Errorf("board %v: %w", board, err)
		}
		initial := g.Initial()
		if g.TerminalTest(initial) {
			log.Warn().Msgf("skipping board %v: nothing to search", board)
			continue
		}
		analyzed := nim.Analyzed{Game: g}

		// Minimax results by depth limit; each depth's minimax config comes first.
		baselines := map[int]searcher.Result[nim.Move]{}
		for _, config := range comparisonConfigs {
			result := searcher.New[nim.State, nim.Move](analyzed, searchOptions(config)...).Search(ctx, initial)
			if result.Metric.Interrupted {
				return records, fmt.Errorf("board %v: %w", board, context.Cause(ctx))
			}
			baseline, ok := baselines[config.Depth]
			if !ok {
				baselines[config.Depth] = result
			} else if result.Move != baseline.Move || result.Value != baseline.Value {
				return records, fmt.Errorf("%w: board %v strategy %d chose %v (%d), minimax chose %v (%d)",
					ErrMismatch, board, config.ID, result.Move, result.Value, baseline.Move, baseline.Value)
			}

			log.Debug().Msgf("board %v strategy %d: %v valued %d after %d nodes",
				board, config.ID, result.Move, result.Value, result.Metric.Nodes)
			records = append(records, metrics.ComparisonRecord{
				Board:        fmt.Sprint(board),
				Strategy:     config.ID,
				Move:         result.Move.String(),
				Value:        result.Value,
				SearchMetric: result.Metric,
			})
		}
	}
	return records, nil
}

// PlaySeries plays games matches of every match up from board. Random
// strategies are seeded from seed and the game number, so a series is
// reproducible.
func PlaySeries(ctx context.Context, board []int, first game.Player, matchUps []Match, games int, seed uint64) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	g, err := nim.New(board, first)
	if err != nil {
		return nil, nil, err
	}
	// Depth-limited strategies need the nim-sum evaluation.
	analyzed := nim.Analyzed{Game: g}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between max=%+v and min=%+v...", mi+1, len(matchUps), matchup.Max, matchup.Min)

		for i := 0; i < games; i++ {
			count++
			e := engine.New[nim.State, nim.Move](analyzed,
				newStrategy(matchup.Max, seed+uint64(2*count)),
				newStrategy(matchup.Min, seed+uint64(2*count+1)))
			out, err := e.Run(ctx)
			if err != nil {
				return gameRecords, moveRecords, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:          count,
				Board:       fmt.Sprint(board),
				MaxStrategy: matchup.Max.ID,
				MinStrategy: matchup.Min.ID,
				GameMetric:  out.Game,
			})
			moveRecords = append(moveRecords, lo.Map(out.MoveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
				return metrics.MoveRecord{Game: count, MoveMetric: mm}
			})...)

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, out.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}
	return gameRecords, moveRecords, nil
}

// RunComparisonExperiment runs Compare and stores its records under dir.
func RunComparisonExperiment(ctx context.Context, dir string, boards [][]int, first game.Player) error {
	const name = "comparison"
	log.Info().Msgf("starting %s experiment...", name)

	records, err := Compare(ctx, boards, first)
	if err != nil {
		return err
	}
	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteStrategyConfigs(comparisonConfigs); err != nil {
		return fmt.Errorf("failed to store strategy configs: %w", err)
	}
	if err := writer.WriteComparisonRecords(records); err != nil {
		return fmt.Errorf("failed to write comparison records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored comparison records")
	return nil
}

// RunMatchExperiment runs PlaySeries and stores its records under dir.
func RunMatchExperiment(ctx context.Context, dir string, board []int, first game.Player, matchUps []Match, games int, seed uint64) error {
	const name = "matches"
	log.Info().Msgf("starting %s experiment...", name)

	gameRecords, moveRecords, err := PlaySeries(ctx, board, first, matchUps, games, seed)
	if err != nil {
		return err
	}
	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteStrategyConfigs(matchConfigs(matchUps)); err != nil {
		return fmt.Errorf("failed to store strategy configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored game and move records")
	return nil
}

func matchConfigs(matchUps []Match) []metrics.StrategyConfig {
	configs := lo.FlatMap(matchUps, func(m Match, _ int) []metrics.StrategyConfig {
		return []metrics.StrategyConfig{m.Max, m.Min}
	})
	return lo.UniqBy(configs, func(c metrics.StrategyConfig) int {
		return c.ID
	})
}

func newStrategy(config metrics.StrategyConfig, seed uint64) player.Strategy[nim.State, nim.Move] {
	switch config.Name {
	case "random":
		return player.NewRandom[nim.State, nim.Move](seed)
	case "minimax":
		return player.NewMinimax[nim.State, nim.Move](0, searchOptions(config)...)
	default:
		return player.NewAlphaBeta[nim.State, nim.Move](0, searchOptions(config)...)
	}
}

func searchOptions(config metrics.StrategyConfig) []searcher.Option {
	options := []searcher.Option{searcher.WithPruning(config.Pruning), searcher.WithMetrics()}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Transpositions {
		options = append(options, searcher.WithTranspositions(0))
	}
	if config.Ordering {
		options = append(options, searcher.WithMoveOrdering())
	}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	return options
}
