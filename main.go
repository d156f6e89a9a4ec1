package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"nim/config"
	"nim/engine"
	"nim/experiments"
	"nim/game"
	"nim/game/nim"
	"nim/player"
	"nim/searcher"
)

func main() {
	c, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	zerolog.SetGlobalLevel(c.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch c.Mode {
	case config.Experiment:
		err = runExperiments(ctx, c)
	default:
		err = play(ctx, c)
	}
	if err != nil {
		log.Error().Err(err).Msg("stopped")
		stop()
		os.Exit(1)
	}
}

func play(ctx context.Context, c *config.Config) error {
	g, err := nim.New(c.Board, c.First)
	if err != nil {
		return err
	}
	var rules game.Game[nim.State, nim.Move] = g
	if c.NimSum {
		rules = nim.Analyzed{Game: g}
	}

	var terminal *readline.Instance
	defer func() {
		if terminal != nil {
			terminal.Close()
		}
	}()
	strategy := func(name string, seed uint64) (player.Strategy[nim.State, nim.Move], error) {
		if name != config.Human {
			return newStrategy(c, name, seed), nil
		}
		if terminal == nil {
			l, err := readline.NewEx(&readline.Config{
				HistoryLimit:        -1,
				InterruptPrompt:     "^C",
				EOFPrompt:           "exit",
				FuncFilterInputRune: filterInput,
			})
			if err != nil {
				return nil, fmt.Errorf("opening terminal: %w", err)
			}
			terminal = l
		}
		return player.NewInteractive[nim.State, nim.Move](terminal, terminal.Stdout(), nim.ParseMove), nil
	}

	maxPlayer, err := strategy(c.MaxPlayer, c.Seed)
	if err != nil {
		return err
	}
	minPlayer, err := strategy(c.MinPlayer, c.Seed+1)
	if err != nil {
		return err
	}

	e := engine.New[nim.State, nim.Move](rules, maxPlayer, minPlayer,
		engine.WithDisplay(os.Stdout),
		engine.WithPerspective(game.Max),
		engine.WithMaxTurns(c.MaxTurns))
	out, err := e.Run(ctx)
	if errors.Is(err, readline.ErrInterrupt) {
		return context.Canceled
	}
	if err != nil {
		return err
	}

	if out.Utility > 0 {
		fmt.Println("MAX won the game")
	} else {
		fmt.Println("MIN won the game")
	}
	return nil
}

func runExperiments(ctx context.Context, c *config.Config) error {
	boards := append([][]int{c.Board}, experiments.ComparisonBoards...)
	if err := experiments.RunComparisonExperiment(ctx, c.RecordDir, boards, c.First); err != nil {
		return err
	}
	if err := experiments.RunMatchExperiment(ctx, c.RecordDir, c.Board, c.First, experiments.DefaultMatches, c.Games, c.Seed); err != nil {
		return err
	}
	return experiments.RunThroughputExperiment(ctx, c.RecordDir, c.Board, c.First, c.Games)
}

func newStrategy(c *config.Config, name string, seed uint64) player.Strategy[nim.State, nim.Move] {
	options := []searcher.Option{searcher.WithGoroutines(c.Goroutines), searcher.WithMetrics()}
	if c.Depth > 0 {
		options = append(options, searcher.WithDepth(c.Depth))
	}
	if c.Transpositions {
		options = append(options, searcher.WithTranspositions(0))
	}
	if c.Ordering {
		options = append(options, searcher.WithMoveOrdering())
	}

	switch name {
	case config.Random:
		return player.NewRandom[nim.State, nim.Move](seed)
	case config.Minimax:
		return player.NewMinimax[nim.State, nim.Move](c.Timeout, options...)
	default:
		return player.NewAlphaBeta[nim.State, nim.Move](c.Timeout, options...)
	}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
