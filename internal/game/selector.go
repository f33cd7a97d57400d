package game

import "github.com/lox/rps/internal/rules"

// Source is the randomness a Selector draws from. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Opponent chooses the non-human player's move for a round
type Opponent interface {
	Pick() rules.Move
}

// OpponentFunc adapts a function to the Opponent interface
type OpponentFunc func() rules.Move

// Pick calls f
func (f OpponentFunc) Pick() rules.Move {
	return f()
}

// Selector picks uniformly from the move set. Each call is independent.
type Selector struct {
	src   Source
	moves []rules.Move
}

// NewSelector creates a selector drawing from src
func NewSelector(src Source) *Selector {
	return &Selector{src: src, moves: rules.Moves()}
}

// Pick returns a uniformly random move
func (s *Selector) Pick() rules.Move {
	return s.moves[s.src.IntN(len(s.moves))]
}
