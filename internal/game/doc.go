// Package game implements a rock/paper/scissors session against a random
// opponent.
//
// The main type is Controller, which owns the score and runs one round per
// activation: pick the opponent's move, resolve the outcome, record it and
// hand the result to a Renderer.
//
// # Basic Usage
//
//	c := game.NewController(game.NewSelector(randutil.New(0)), renderer, logger)
//	result, ok := c.PlayRound("rock")
//	if ok {
//	    fmt.Println(result.Message) // e.g. "Rock beats Scissors. You win!"
//	}
//	c.Reset()
//
// # Deterministic Testing
//
// The opponent is any Opponent. Use a seeded selector for reproducible
// sequences, or OpponentFunc to force a specific move:
//
//	c := game.NewController(game.OpponentFunc(func() rules.Move {
//	    return rules.Scissors
//	}), renderer, logger)
//
// Rendering goes through the Renderer interface, so the decision logic can be
// exercised without any presentation targets.
package game
