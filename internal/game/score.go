package game

import "github.com/lox/rps/internal/rules"

// Score holds the two round counters
type Score struct {
	Human    int
	Opponent int
}

// Tracker accumulates the score of a session. It is owned by a single
// controller and is not safe for concurrent use.
type Tracker struct {
	score Score
}

// RecordOutcome credits the winner of a round; a tie changes nothing.
func (t *Tracker) RecordOutcome(outcome rules.Outcome) {
	switch outcome {
	case rules.Win:
		t.score.Human++
	case rules.Lose:
		t.score.Opponent++
	}
}

// Reset sets both counters back to zero
func (t *Tracker) Reset() {
	t.score = Score{}
}

// Score returns the current counters
func (t *Tracker) Score() Score {
	return t.score
}
