package statistics

import (
	"fmt"
	"math"

	"github.com/lox/rps/internal/rules"
)

// ChiSquareCritical is the chi-square critical value for two degrees of
// freedom at p = 0.001.
const ChiSquareCritical = 13.816

// RoundResult represents the outcome of a single simulated round
type RoundResult struct {
	Human    rules.Move
	Opponent rules.Move
	Outcome  rules.Outcome
}

// Statistics tallies simulated rounds
type Statistics struct {
	Rounds int
	Wins   int
	Losses int
	Ties   int

	// Move counts indexed by rules.Move
	HumanMoves    [3]int
	OpponentMoves [3]int
}

// Add incorporates a round into the statistics
func (s *Statistics) Add(result RoundResult) {
	s.Rounds++

	switch result.Outcome {
	case rules.Win:
		s.Wins++
	case rules.Lose:
		s.Losses++
	case rules.Tie:
		s.Ties++
	}

	if result.Human.Valid() {
		s.HumanMoves[result.Human]++
	}
	if result.Opponent.Valid() {
		s.OpponentMoves[result.Opponent]++
	}
}

// Merge adds the counts of other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Ties += other.Ties
	for i := range s.HumanMoves {
		s.HumanMoves[i] += other.HumanMoves[i]
		s.OpponentMoves[i] += other.OpponentMoves[i]
	}
}

func (s *Statistics) rate(n int) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(n) / float64(s.Rounds)
}

// WinRate returns the fraction of rounds the human won
func (s *Statistics) WinRate() float64 { return s.rate(s.Wins) }

// LossRate returns the fraction of rounds the human lost
func (s *Statistics) LossRate() float64 { return s.rate(s.Losses) }

// TieRate returns the fraction of tied rounds
func (s *Statistics) TieRate() float64 { return s.rate(s.Ties) }

// OpponentFrequency returns how often the opponent played m
func (s *Statistics) OpponentFrequency(m rules.Move) float64 {
	if !m.Valid() {
		return 0
	}
	return s.rate(s.OpponentMoves[m])
}

// ChiSquare returns Pearson's chi-square statistic of the opponent's move
// counts against a uniform distribution.
func (s *Statistics) ChiSquare() float64 {
	if s.Rounds == 0 {
		return 0
	}
	expected := float64(s.Rounds) / float64(len(s.OpponentMoves))
	var chi float64
	for _, observed := range s.OpponentMoves {
		d := float64(observed) - expected
		chi += d * d / expected
	}
	return chi
}

// IsUniform reports whether the opponent's moves are consistent with a
// uniform choice at p = 0.001
func (s *Statistics) IsUniform() bool {
	return s.ChiSquare() < ChiSquareCritical
}

// Validate checks that the tallies are consistent with the round count
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if total := s.Wins + s.Losses + s.Ties; total != s.Rounds {
		return fmt.Errorf("outcome total (%d) does not match rounds (%d)", total, s.Rounds)
	}

	if total := sum(s.HumanMoves); total != s.Rounds {
		return fmt.Errorf("human move total (%d) does not match rounds (%d)", total, s.Rounds)
	}

	if total := sum(s.OpponentMoves); total != s.Rounds {
		return fmt.Errorf("opponent move total (%d) does not match rounds (%d)", total, s.Rounds)
	}

	if math.IsNaN(s.ChiSquare()) {
		return fmt.Errorf("chi-square is NaN")
	}

	return nil
}

func sum(counts [3]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
