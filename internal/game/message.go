package game

import (
	"fmt"

	"github.com/lox/rps/internal/rules"
)

// Fixed outcome phrases
const (
	WinPhrase  = "You win!"
	LosePhrase = "You lose!"
	TiePhrase  = "It's a tie!"
)

// ComposeMessage builds the result text for a round. The winning move is
// always named first.
func ComposeMessage(human, opponent rules.Move, outcome rules.Outcome) string {
	switch outcome {
	case rules.Win:
		return fmt.Sprintf("%s beats %s. %s", human.Title(), opponent.Title(), WinPhrase)
	case rules.Lose:
		return fmt.Sprintf("%s beats %s. %s", opponent.Title(), human.Title(), LosePhrase)
	default:
		return fmt.Sprintf("%s equals %s. %s", human.Title(), opponent.Title(), TiePhrase)
	}
}

// StyleClass returns the result style class for an outcome, e.g. "result-win"
func StyleClass(outcome rules.Outcome) string {
	return "result-" + outcome.String()
}
