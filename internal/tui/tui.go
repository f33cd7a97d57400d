package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rps/internal/display"
	"github.com/lox/rps/internal/game"
)

// PulseDuration is how long a control keeps the animate class after activation
const PulseDuration = 300 * time.Millisecond

// Padding around the whole screen, used by both View and hit testing
const (
	padTop  = 1
	padLeft = 2
)

var appStyle = lipgloss.NewStyle().Padding(padTop, padLeft)

// Options configures a Model
type Options struct {
	// Clock schedules the pulse removal. Defaults to the real clock.
	Clock quartz.Clock
}

// pulseDoneMsg asks Update to end the pulse with the given generation
type pulseDoneMsg struct {
	id  string
	gen int
}

// Model is the Bubble Tea model of the game screen. It dispatches pointer
// and key activations of the board's controls to the controller.
type Model struct {
	board      *display.Board
	controller *game.Controller
	logger     *log.Logger
	clock      quartz.Clock

	keys keyMap
	help help.Model

	focus        int
	pulses       map[string]int
	pulseSeq     int
	announcement string

	width    int
	quitting bool
}

// NewGame builds the standard board and wires a controller playing against
// opponent onto it.
func NewGame(opponent game.Opponent, logger *log.Logger, opts Options) *Model {
	board := display.NewStandardBoard()
	controller := game.NewController(opponent, display.NewPresenter(board), logger)
	return New(board, controller, logger, opts)
}

// New creates a model over an existing board and controller. The controller
// should render onto the same board.
func New(board *display.Board, controller *game.Controller, logger *log.Logger, opts Options) *Model {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	m := &Model{
		board:      board,
		controller: controller,
		logger:     logger.WithPrefix("tui"),
		clock:      clock,
		keys:       defaultKeyMap(),
		help:       help.New(),
		pulses:     make(map[string]int),
	}

	controller.Start()
	board.OnAnnounce(m.announce)

	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			score := m.controller.Score()
			m.logger.Info("Session ended",
				"rounds", m.controller.Rounds(),
				"human", score.Human,
				"opponent", score.Opponent)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			m.moveFocus(-1)
		case key.Matches(msg, m.keys.Activate):
			return m, m.activate(m.focused())
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		idx := m.hitTest(msg.X, msg.Y)
		if idx < 0 {
			return m, nil
		}
		m.focus = idx
		return m, m.activate(m.focused())

	case pulseDoneMsg:
		m.endPulse(msg)
	}

	return m, nil
}

// focused returns the control holding focus, or nil if there are none
func (m *Model) focused() *display.Target {
	controls := m.board.Controls()
	if len(controls) == 0 {
		return nil
	}
	if m.focus >= len(controls) {
		m.focus = len(controls) - 1
	}
	return controls[m.focus]
}

func (m *Model) moveFocus(delta int) {
	n := len(m.board.Controls())
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

// activate runs the action bound to a control
func (m *Model) activate(t *display.Target) tea.Cmd {
	if t == nil {
		return nil
	}

	if t.ID == display.ResetButtonID {
		m.controller.Reset()
		return nil
	}

	moveID, _ := t.Attr(display.MoveAttr)
	if _, ok := m.controller.PlayRound(moveID); !ok {
		return nil
	}

	return m.startPulse(t)
}

// startPulse marks the control and schedules the removal of the mark. The
// timer only signals; the class is removed by Update on the event loop.
func (m *Model) startPulse(t *display.Target) tea.Cmd {
	t.AddClass(display.AnimateClass)

	m.pulseSeq++
	msg := pulseDoneMsg{id: t.ID, gen: m.pulseSeq}
	m.pulses[t.ID] = msg.gen

	done := make(chan struct{})
	m.clock.AfterFunc(PulseDuration, func() { close(done) })

	return func() tea.Msg {
		<-done
		return msg
	}
}

// endPulse removes the animate class unless the target is gone or a newer
// pulse owns it.
func (m *Model) endPulse(msg pulseDoneMsg) {
	if m.pulses[msg.id] != msg.gen {
		return
	}
	delete(m.pulses, msg.id)

	if t := m.board.Get(msg.id); t != nil {
		t.RemoveClass(display.AnimateClass)
	}
}

func (m *Model) announce(id, text string) {
	switch id {
	case display.PlayerScoreID:
		m.announcement = "Your score: " + text
	case display.ComputerScoreID:
		m.announcement = "Computer score: " + text
	default:
		m.announcement = text
	}
	m.logger.Debug("Announcement", "target", id, "text", text)
}

// Score returns the current score
func (m *Model) Score() game.Score {
	return m.controller.Score()
}

// Rounds returns how many rounds were played
func (m *Model) Rounds() int {
	return m.controller.Rounds()
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	l := m.layout()

	var content strings.Builder
	content.WriteString(l.above)
	content.WriteString(l.controls)
	content.WriteString("\n\n")
	content.WriteString(m.renderResult())
	content.WriteString("\n\n")
	content.WriteString(InfoStyle.Render(m.announcement))
	content.WriteString("\n")
	content.WriteString(m.help.View(m.keys))

	return appStyle.Render(content.String())
}

// zone is the screen rectangle of a control, inclusive of its border
type zone struct {
	x0, y0, x1, y1 int
}

type screenLayout struct {
	above    string // everything above the controls row, newline terminated
	controls string
	zones    []zone // indexed like board.Controls()
}

// layout renders the parts of the screen that determine where the controls
// are, so View and hitTest agree on positions.
func (m *Model) layout() screenLayout {
	var above strings.Builder
	above.WriteString(HeaderStyle.Render("Rock · Paper · Scissors"))
	above.WriteString("\n\n")
	above.WriteString(m.renderScores())
	above.WriteString("\n\n")

	top := padTop + lipgloss.Height(above.String()) - 1

	controls := m.board.Controls()
	rendered := make([]string, 0, len(controls)*2)
	zones := make([]zone, 0, len(controls))

	x := padLeft
	for i, c := range controls {
		if i > 0 {
			rendered = append(rendered, " ")
			x++
		}
		button := m.renderControl(c, i == m.focus)
		w, h := lipgloss.Width(button), lipgloss.Height(button)
		zones = append(zones, zone{x0: x, y0: top, x1: x + w - 1, y1: top + h - 1})
		rendered = append(rendered, button)
		x += w
	}

	return screenLayout{
		above:    above.String(),
		controls: lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		zones:    zones,
	}
}

// hitTest returns the index of the control under (x, y), or -1
func (m *Model) hitTest(x, y int) int {
	for i, z := range m.layout().zones {
		if x >= z.x0 && x <= z.x1 && y >= z.y0 && y <= z.y1 {
			return i
		}
	}
	return -1
}

func (m *Model) renderScores() string {
	var parts []string
	if t := m.board.Get(display.PlayerScoreID); t != nil {
		parts = append(parts, ScoreLabelStyle.Render("You ")+ScoreValueStyle.Render(t.Text))
	}
	if t := m.board.Get(display.ComputerScoreID); t != nil {
		parts = append(parts, ScoreLabelStyle.Render("Computer ")+ScoreValueStyle.Render(t.Text))
	}
	return strings.Join(parts, ScoreLabelStyle.Render("  ·  "))
}

func (m *Model) renderControl(t *display.Target, focused bool) string {
	style := ControlStyle
	if t.ID == display.ResetButtonID {
		style = ResetControlStyle
	}
	if focused {
		style = style.BorderForeground(FocusedControlStyle.GetBorderTopForeground())
	}
	if t.HasClass(display.AnimateClass) {
		style = style.Inherit(PulseStyle)
	}

	label := t.Label
	if label == "" {
		label = t.ID
	}
	return style.Render(label)
}

func (m *Model) renderResult() string {
	t := m.board.Get(display.ResultDisplayID)
	if t == nil {
		return ""
	}
	for _, class := range t.Classes() {
		if style, ok := resultStyles[class]; ok {
			return style.Render(t.Text)
		}
	}
	return t.Text
}
