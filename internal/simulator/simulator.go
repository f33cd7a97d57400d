package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/rps/internal/game"
	"github.com/lox/rps/internal/randutil"
	"github.com/lox/rps/internal/rules"
	"github.com/lox/rps/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// StrategyRandom makes the simulated human pick uniformly at random
const StrategyRandom = "random"

// cancelCheckInterval is how many rounds a worker plays between context checks
const cancelCheckInterval = 1024

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Workers  int
	Seed     int64
	Strategy string // "random" or a move identifier
	Logger   *log.Logger
}

// Simulator plays many rounds of a human strategy against the random
// opponent to measure the opponent's fairness.
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Strategy == "" {
		config.Strategy = StrategyRandom
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Result is the outcome of a simulation run
type Result struct {
	Stats *statistics.Statistics
	Seed  int64 // seed actually used, for replay
}

// Run executes the simulation and returns the merged statistics
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}

	var fixed *rules.Move
	if s.config.Strategy != StrategyRandom {
		m, err := rules.ParseMove(s.config.Strategy)
		if err != nil {
			return nil, fmt.Errorf("invalid strategy: %w", err)
		}
		fixed = &m
	}

	seed := s.config.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}

	workers := min(s.config.Workers, s.config.Rounds)
	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers

	s.config.Logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"workers", workers,
		"strategy", s.config.Strategy,
		"seed", seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make([]*statistics.Statistics, workers)

	for w := 0; w < workers; w++ {
		rounds := perWorker
		if w < remainder {
			rounds++ // Distribute remainder rounds
		}

		g.Go(func() error {
			stats, err := s.runWorker(ctx, seed, w, rounds, fixed)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, r := range results {
		total.Merge(r)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"win_rate", total.WinRate(),
		"chi_square", total.ChiSquare())

	return &Result{Stats: total, Seed: seed}, nil
}

// runWorker plays rounds through its own controller. Each worker derives
// independent generators for both sides so results are reproducible per seed.
func (s *Simulator) runWorker(ctx context.Context, seed int64, worker, rounds int, fixed *rules.Move) (*statistics.Statistics, error) {
	opponent := game.NewSelector(randutil.New(randutil.Derive(seed, 2*worker)))
	human := game.NewSelector(randutil.New(randutil.Derive(seed, 2*worker+1)))

	controller := game.NewController(opponent, nil, log.New(io.Discard))
	stats := &statistics.Statistics{}

	for i := 0; i < rounds; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		move := human.Pick()
		if fixed != nil {
			move = *fixed
		}

		result, ok := controller.PlayRound(move.String())
		if !ok {
			return nil, fmt.Errorf("round %d was not resolved", i)
		}
		stats.Add(statistics.RoundResult{
			Human:    result.HumanMove,
			Opponent: result.OpponentMove,
			Outcome:  result.Outcome,
		})
	}

	return stats, nil
}
