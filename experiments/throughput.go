package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"nim/experiments/metrics"
	"nim/game"
	"nim/game/nim"
	"nim/searcher"
)

var throughputConfigs = []metrics.StrategyConfig{
	{ID: 1, Name: "alphabeta", Pruning: true, Transpositions: true, Goroutines: 1},
	{ID: 2, Name: "alphabeta", Pruning: true, Transpositions: true, Goroutines: 2},
	{ID: 3, Name: "alphabeta", Pruning: true, Transpositions: true, Goroutines: 4},
	{ID: 4, Name: "alphabeta", Pruning: true, Transpositions: true, Goroutines: 8},
}

// RunThroughputExperiment searches board once per root-parallel
// configuration, repeats times each, and stores nodes and durations.
func RunThroughputExperiment(ctx context.Context, dir string, board []int, first game.Player, repeats int) error {
	g, err := nim.New(board, first)
	if err != nil {
		return err
	}
	initial := g.Initial()
	if g.TerminalTest(initial) {
		return fmt.Errorf("board %v: %w", board, nim.ErrEmptyBoard)
	}

	writer, err := metrics.NewWriter(dir, "throughput")
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteStrategyConfigs(throughputConfigs); err != nil {
		return fmt.Errorf("failed to store strategy configs: %w", err)
	}

	log.Info().Msg("starting throughput experiment...")

	records := []metrics.ComparisonRecord{}
	for _, config := range throughputConfigs {
		log.Info().Msgf("starting config %+v...", config)

		for i := 0; i < repeats; i++ {
			result := searcher.New[nim.State, nim.Move](g, searchOptions(config)...).Search(ctx, initial)
			if result.Metric.Interrupted {
				return fmt.Errorf("config %d: %w", config.ID, context.Cause(ctx))
			}
			records = append(records, metrics.ComparisonRecord{
				Board:        fmt.Sprint(board),
				Strategy:     config.ID,
				Move:         result.Move.String(),
				Value:        result.Value,
				SearchMetric: result.Metric,
			})
		}
		log.Info().Msgf("completed config %d", config.ID)
	}

	if err := writer.WriteComparisonRecords(records); err != nil {
		return fmt.Errorf("failed to write throughput records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored throughput records")
	return nil
}
