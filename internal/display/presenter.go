package display

import (
	"strconv"

	"github.com/lox/rps/internal/rules"
)

var outcomeClasses = []string{"result-win", "result-lose", "result-tie"}

// Presenter renders game state onto a Board. Absent targets are skipped.
type Presenter struct {
	board *Board
}

// NewPresenter creates a presenter for board
func NewPresenter(board *Board) *Presenter {
	return &Presenter{board: board}
}

// RenderScores writes both counters and marks them as polite live regions
func (p *Presenter) RenderScores(human, opponent int) {
	p.renderScore(PlayerScoreID, human)
	p.renderScore(ComputerScoreID, opponent)
}

func (p *Presenter) renderScore(id string, value int) {
	t := p.board.Get(id)
	if t == nil {
		return
	}
	t.SetAttr(LiveAttr, Polite)
	p.board.SetText(t, strconv.Itoa(value))
}

// RenderResult replaces the outcome style and message of the result display
func (p *Presenter) RenderResult(message string, outcome rules.Outcome) {
	t := p.board.Get(ResultDisplayID)
	if t == nil {
		return
	}
	t.RemoveClass(outcomeClasses...)
	t.AddClass("result-" + outcome.String())
	t.SetAttr(LiveAttr, Polite)
	p.board.SetText(t, message)
}

// ClearResult empties the result display and drops all of its classes
func (p *Presenter) ClearResult() {
	t := p.board.Get(ResultDisplayID)
	if t == nil {
		return
	}
	p.board.SetText(t, "")
	t.ClearClasses()
}
