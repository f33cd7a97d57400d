package rules

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned for values outside the fixed move set
var ErrInvalidMove = errors.New("invalid move")

// Move represents one of the three hand shapes
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves returns the fixed move set in display order
func Moves() []Move {
	return []Move{Rock, Paper, Scissors}
}

// String returns the move identifier (e.g., "rock")
func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "?"
	}
}

// Title returns the capitalised display name (e.g., "Rock")
func (m Move) Title() string {
	s := m.String()
	if s == "?" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether m is a member of the move set
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// Beats reports whether m dominates other: rock beats scissors,
// scissors beats paper and paper beats rock.
func (m Move) Beats(other Move) bool {
	return (m+3-other)%3 == 1
}

// ParseMove parses a move identifier, ignoring case and surrounding space
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
}
