package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/lox/rps/internal/fileutil"
	"github.com/lox/rps/internal/rules"
	"github.com/lox/rps/internal/simulator"
	"github.com/lox/rps/internal/statistics"
	"github.com/lox/rps/internal/tui"
)

type SimulateCmd struct {
	Rounds     int    `kong:"default='100000',help='Number of rounds to play'"`
	Workers    int    `kong:"help='Parallel workers (defaults to the number of CPUs)'"`
	Seed       int64  `kong:"help='Seed for deterministic runs (0 for random)'"`
	Strategy   string `kong:"default='random',enum='random,rock,paper,scissors',help='Move the simulated human plays'"`
	LogLevel   string `kong:"default='warn',enum='debug,info,warn,error',help='Log level'"`
	WriteStats string `kong:"help='Write stats as JSON to file'"`
}

// statsReport is the JSON shape written by --write-stats
type statsReport struct {
	Rounds            int                `json:"rounds"`
	Seed              int64              `json:"seed"`
	Strategy          string             `json:"strategy"`
	WinRate           float64            `json:"win_rate"`
	LossRate          float64            `json:"loss_rate"`
	TieRate           float64            `json:"tie_rate"`
	OpponentFrequency map[string]float64 `json:"opponent_frequency"`
	ChiSquare         float64            `json:"chi_square"`
	Uniform           bool               `json:"uniform"`
}

func newStatsReport(result *simulator.Result, strategy string) statsReport {
	stats := result.Stats
	freq := make(map[string]float64)
	for _, m := range rules.Moves() {
		freq[m.String()] = stats.OpponentFrequency(m)
	}
	return statsReport{
		Rounds:            stats.Rounds,
		Seed:              result.Seed,
		Strategy:          strategy,
		WinRate:           stats.WinRate(),
		LossRate:          stats.LossRate(),
		TieRate:           stats.TieRate(),
		OpponentFrequency: freq,
		ChiSquare:         stats.ChiSquare(),
		Uniform:           stats.IsUniform(),
	}
}

func (c *SimulateCmd) Run() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "simulate",
		Level:           level,
	})

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := simulator.New(simulator.Config{
		Rounds:   c.Rounds,
		Workers:  workers,
		Seed:     c.Seed,
		Strategy: c.Strategy,
		Logger:   logger,
	}).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if c.WriteStats != "" {
		if err := fileutil.WriteJSONAtomic(c.WriteStats, newStatsReport(result, c.Strategy), 0o644); err != nil {
			return fmt.Errorf("failed to write stats: %w", err)
		}
		logger.Info("Wrote stats", "file", c.WriteStats)
	}

	stats := result.Stats
	fmt.Println(tui.HeaderStyle.Render(" Simulation "))
	fmt.Printf("Rounds:   %d (seed %d, strategy %s)\n", stats.Rounds, result.Seed, c.Strategy)
	fmt.Printf("Win:      %6.2f%%\n", stats.WinRate()*100)
	fmt.Printf("Lose:     %6.2f%%\n", stats.LossRate()*100)
	fmt.Printf("Tie:      %6.2f%%\n", stats.TieRate()*100)
	fmt.Println()
	fmt.Println(tui.InfoStyle.Render("Opponent move frequency"))
	for _, m := range rules.Moves() {
		fmt.Printf("  %-9s %6.2f%%\n", m.Title(), stats.OpponentFrequency(m)*100)
	}
	fmt.Println()

	verdict := tui.SuccessStyle.Render("uniform")
	if !stats.IsUniform() {
		verdict = tui.ErrorStyle.Render("not uniform")
	}
	fmt.Printf("Chi-square: %.3f (critical %.3f at p=0.001): %s\n", stats.ChiSquare(), statistics.ChiSquareCritical, verdict)
	return nil
}
