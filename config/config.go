// Package config loads the command line settings from flags, NIM_ prefixed
// environment variables and an optional config file, in that order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"lukechampine.com/frand"

	"nim/engine"
	"nim/game"
	"nim/game/nim"
)

const EnvPrefix = "NIM"

// Strategy names accepted for max-player and min-player.
const (
	AlphaBeta = "alphabeta"
	Minimax   = "minimax"
	Random    = "random"
	Human     = "human"
)

// Modes.
const (
	Play       = "play"
	Experiment = "experiment"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Board          []int
	First          game.Player
	MaxPlayer      string
	MinPlayer      string
	Depth          int // 0 searches to the end of the game
	Transpositions bool
	Ordering       bool
	Goroutines     int
	NimSum         bool
	Seed           uint64
	Timeout        time.Duration // Per search; 0 means none
	MaxTurns       int
	LogLevel       zerolog.Level
	Mode           string
	RecordDir      string
	Games          int
}

func flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("nim", pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML, TOML or JSON config file")
	fs.String("board", "3,1", "comma separated pile sizes")
	fs.String("first", string(game.Max), "player to move first: MAX or MIN")
	fs.String("max-player", AlphaBeta, "strategy for MAX: alphabeta, minimax, random or human")
	fs.String("min-player", Human, "strategy for MIN: alphabeta, minimax, random or human")
	fs.Int("depth", 0, "search depth limit in plies, 0 for none")
	fs.Bool("transpositions", false, "cache searched states in a transposition table")
	fs.Bool("ordering", false, "search promising moves first")
	fs.Int("goroutines", 1, "goroutines searching the root's moves")
	fs.Bool("nim-sum", false, "evaluate depth cutoffs by the nim-sum")
	fs.Uint64("seed", 0, "seed for random strategies, 0 picks one")
	fs.Duration("timeout", 0, "time limit per search, 0 for none")
	fs.Int("max-turns", engine.MaxTurns, "abort matches after this many moves")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.String("mode", Play, "play a match or run the experiments")
	fs.String("record-dir", "experiments", "directory for experiment records")
	fs.Int("games", 20, "games per match up in experiment mode")
	return fs
}

// Load parses args (without the program name) and merges them with the
// environment and the config file named by --config.
func Load(args []string) (*Config, error) {
	fs := flags()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	// A config file may hold the board as a list rather than a string.
	board, err := nim.ParseBoard(fmt.Sprint(v.Get("board")))
	if err != nil {
		return nil, fmt.Errorf("%w: board: %w", ErrInvalid, err)
	}
	first, err := game.ParsePlayer(v.GetString("first"))
	if err != nil {
		return nil, fmt.Errorf("%w: first: %w", ErrInvalid, err)
	}
	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("%w: log-level: %w", ErrInvalid, err)
	}

	c := &Config{
		Board:          board,
		First:          first,
		MaxPlayer:      strings.ToLower(v.GetString("max-player")),
		MinPlayer:      strings.ToLower(v.GetString("min-player")),
		Depth:          v.GetInt("depth"),
		Transpositions: v.GetBool("transpositions"),
		Ordering:       v.GetBool("ordering"),
		Goroutines:     v.GetInt("goroutines"),
		NimSum:         v.GetBool("nim-sum"),
		Seed:           v.GetUint64("seed"),
		Timeout:        v.GetDuration("timeout"),
		MaxTurns:       v.GetInt("max-turns"),
		LogLevel:       level,
		Mode:           strings.ToLower(v.GetString("mode")),
		RecordDir:      v.GetString("record-dir"),
		Games:          v.GetInt("games"),
	}
	if c.Seed == 0 {
		c.Seed = frand.Uint64n(1<<63) + 1
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	for _, s := range []string{c.MaxPlayer, c.MinPlayer} {
		switch s {
		case AlphaBeta, Minimax, Random, Human:
		default:
			return fmt.Errorf("%w: unknown strategy %q", ErrInvalid, s)
		}
	}
	switch c.Mode {
	case Play, Experiment:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}
	switch {
	case c.Depth < 0:
		return fmt.Errorf("%w: negative depth %d", ErrInvalid, c.Depth)
	case c.Goroutines < 1:
		return fmt.Errorf("%w: need at least one goroutine, got %d", ErrInvalid, c.Goroutines)
	case c.Timeout < 0:
		return fmt.Errorf("%w: negative timeout %v", ErrInvalid, c.Timeout)
	case c.MaxTurns < 1:
		return fmt.Errorf("%w: max-turns must be positive, got %d", ErrInvalid, c.MaxTurns)
	case c.Games < 1:
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalid, c.Games)
	}
	return nil
}
