package rules

import "fmt"

// Outcome is the result of a round from the human player's perspective
type Outcome int

const (
	Tie Outcome = iota
	Win
	Lose
)

// String returns the outcome tag used for styling ("win", "lose", "tie")
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	case Tie:
		return "tie"
	default:
		return "unknown"
	}
}

// Resolve decides the outcome of human against opponent.
// Both moves must be in the fixed move set.
func Resolve(human, opponent Move) (Outcome, error) {
	if !human.Valid() {
		return Tie, fmt.Errorf("human move %d: %w", int(human), ErrInvalidMove)
	}
	if !opponent.Valid() {
		return Tie, fmt.Errorf("opponent move %d: %w", int(opponent), ErrInvalidMove)
	}

	switch {
	case human == opponent:
		return Tie, nil
	case human.Beats(opponent):
		return Win, nil
	default:
		return Lose, nil
	}
}
