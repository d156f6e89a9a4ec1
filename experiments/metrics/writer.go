package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// StrategyConfig identifies a search configuration taking part in an experiment.
type StrategyConfig struct {
	ID             int
	Name           string
	Depth          int
	Pruning        bool
	Transpositions bool
	Ordering       bool
	Goroutines     int
}

type GameRecord struct {
	ID          int
	Board       string
	MaxStrategy int // StrategyConfig.ID
	MinStrategy int // StrategyConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// ComparisonRecord is one root search of a board by one configuration.
type ComparisonRecord struct {
	Board    string
	Strategy int // StrategyConfig.ID
	Move     string
	Value    int
	SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <dir>/<name>/<timestamp> and writes all files there.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteStrategyConfigs(configs []StrategyConfig) error {
	header := []string{"id", "name", "depth", "pruning", "transpositions", "ordering", "goroutines"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.Depth),
			strconv.FormatBool(config.Pruning),
			strconv.FormatBool(config.Transpositions),
			strconv.FormatBool(config.Ordering),
			strconv.Itoa(config.Goroutines),
		})
	}
	return w.write("strategy_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "board", "max_strategy", "min_strategy", "starting_player", "winner",
		"utility", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Board,
			strconv.Itoa(record.MaxStrategy),
			strconv.Itoa(record.MinStrategy),
			string(record.StartingPlayer),
			string(record.Winner),
			strconv.Itoa(record.Utility),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "duration", "nodes", "cutoffs", "tt_hits", "interrupted"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			string(record.Player),
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.TranspositionHits),
			strconv.FormatBool(record.Interrupted),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) WriteComparisonRecords(records []ComparisonRecord) error {
	header := []string{"board", "strategy", "move", "value", "duration", "nodes", "cutoffs", "tt_hits"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Board,
			strconv.Itoa(record.Strategy),
			record.Move,
			strconv.Itoa(record.Value),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.TranspositionHits),
		})
	}
	return w.write("comparison_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	return writeCSV(f, file, header, rows)
}

// writeCSV writes header and rows to f and closes it. A failed close is
// reported when the rows themselves were written.
func writeCSV(f io.WriteCloser, file string, header []string, rows [][]string) (err error) {
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", file, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}
