package game

import (
	"github.com/charmbracelet/log"
	"github.com/lox/rps/internal/rules"
)

// Renderer receives the display side effects of a round
type Renderer interface {
	RenderScores(human, opponent int)
	RenderResult(message string, outcome rules.Outcome)
	ClearResult()
}

// NopRenderer discards all rendering
type NopRenderer struct{}

func (NopRenderer) RenderScores(int, int)              {}
func (NopRenderer) RenderResult(string, rules.Outcome) {}
func (NopRenderer) ClearResult()                       {}

// RoundResult describes one resolved round. It is built fresh per round
// and not retained by the controller.
type RoundResult struct {
	HumanMove    rules.Move
	OpponentMove rules.Move
	Outcome      rules.Outcome
	Message      string
	StyleClass   string
}

// Controller runs rounds and owns the session score
type Controller struct {
	tracker  Tracker
	opponent Opponent
	renderer Renderer
	logger   *log.Logger
	rounds   int
}

// NewController creates a controller. A nil renderer discards output.
func NewController(opponent Opponent, renderer Renderer, logger *log.Logger) *Controller {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &Controller{
		opponent: opponent,
		renderer: renderer,
		logger:   logger.WithPrefix("game"),
	}
}

// Start renders the initial scoreboard
func (c *Controller) Start() {
	score := c.tracker.Score()
	c.renderer.RenderScores(score.Human, score.Opponent)
}

// PlayRound resolves a round for the given move identifier. An empty or
// unknown identifier aborts the round: nothing changes and ok is false.
func (c *Controller) PlayRound(moveID string) (result RoundResult, ok bool) {
	if moveID == "" {
		c.logger.Debug("Activation without move identifier, ignoring")
		return RoundResult{}, false
	}

	human, err := rules.ParseMove(moveID)
	if err != nil {
		c.logger.Warn("Ignoring activation", "error", err)
		return RoundResult{}, false
	}

	opponent := c.opponent.Pick()
	outcome, err := rules.Resolve(human, opponent)
	if err != nil {
		c.logger.Error("Opponent produced an invalid move", "error", err)
		return RoundResult{}, false
	}

	c.tracker.RecordOutcome(outcome)
	c.rounds++

	score := c.tracker.Score()
	c.renderer.RenderScores(score.Human, score.Opponent)

	result = RoundResult{
		HumanMove:    human,
		OpponentMove: opponent,
		Outcome:      outcome,
		Message:      ComposeMessage(human, opponent, outcome),
		StyleClass:   StyleClass(outcome),
	}
	c.renderer.RenderResult(result.Message, outcome)

	c.logger.Info("Round resolved",
		"round", c.rounds,
		"human", human,
		"opponent", opponent,
		"outcome", outcome,
		"score", score)

	return result, true
}

// Reset zeroes the score and clears the result display
func (c *Controller) Reset() {
	c.tracker.Reset()
	c.renderer.ClearResult()
	c.renderer.RenderScores(0, 0)
	c.logger.Info("Score reset", "rounds_played", c.rounds)
}

// Score returns the current score
func (c *Controller) Score() Score {
	return c.tracker.Score()
}

// Rounds returns how many rounds have been resolved this session,
// including rounds before any reset.
func (c *Controller) Rounds() int {
	return c.rounds
}
