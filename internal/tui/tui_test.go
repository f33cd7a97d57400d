package tui

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rps/internal/display"
	"github.com/lox/rps/internal/game"
	"github.com/lox/rps/internal/rules"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
}

func forced(m rules.Move) game.Opponent {
	return game.OpponentFunc(func() rules.Move { return m })
}

func newTestModel(t *testing.T, opponent game.Opponent) (*Model, *quartz.Mock) {
	t.Helper()
	clock := quartz.NewMock(t)
	return NewGame(opponent, quietLogger(), Options{Clock: clock}), clock
}

// focusOn tabs until the control with id holds focus
func focusOn(t *testing.T, m *Model, id string) {
	t.Helper()
	for range len(m.board.Controls()) {
		if m.focused().ID == id {
			return
		}
		m.Update(tabKey)
	}
	require.Equal(t, id, m.focused().ID)
}

func clickOn(t *testing.T, m *Model, id string) tea.Cmd {
	t.Helper()
	for i, c := range m.board.Controls() {
		if c.ID == id {
			z := m.layout().zones[i]
			_, cmd := m.Update(tea.MouseMsg{
				X:      (z.x0 + z.x1) / 2,
				Y:      (z.y0 + z.y1) / 2,
				Action: tea.MouseActionPress,
				Button: tea.MouseButtonLeft,
			})
			return cmd
		}
	}
	t.Fatalf("no control %q", id)
	return nil
}

func text(m *Model, id string) string {
	return m.board.Get(id).Text
}

func TestInitialScoreboard(t *testing.T) {
	m, _ := newTestModel(t, forced(rules.Rock))

	assert.Equal(t, "0", text(m, display.PlayerScoreID))
	assert.Equal(t, "0", text(m, display.ComputerScoreID))
	assert.Empty(t, text(m, display.ResultDisplayID))
	assert.Equal(t, display.MoveControlID(rules.Rock), m.focused().ID)
}

func TestKeyboardActivation(t *testing.T) {
	t.Run("enter on rock against scissors wins", func(t *testing.T) {
		m, _ := newTestModel(t, forced(rules.Scissors))

		_, cmd := m.Update(enterKey)
		assert.NotNil(t, cmd, "a resolved round schedules the pulse")

		assert.Equal(t, "1", text(m, display.PlayerScoreID))
		assert.Equal(t, "0", text(m, display.ComputerScoreID))
		assert.Equal(t, "Rock beats Scissors. You win!", text(m, display.ResultDisplayID))
		assert.Equal(t, []string{"result-win"}, m.board.Get(display.ResultDisplayID).Classes())
	})

	t.Run("space on paper against paper ties", func(t *testing.T) {
		m, _ := newTestModel(t, forced(rules.Paper))
		focusOn(t, m, display.MoveControlID(rules.Paper))

		m.Update(spaceKey)

		assert.Equal(t, "0", text(m, display.PlayerScoreID))
		assert.Equal(t, "0", text(m, display.ComputerScoreID))
		assert.Equal(t, "Paper equals Paper. It's a tie!", text(m, display.ResultDisplayID))
		assert.Equal(t, []string{"result-tie"}, m.board.Get(display.ResultDisplayID).Classes())
	})

	t.Run("other keys are ignored", func(t *testing.T) {
		m, _ := newTestModel(t, forced(rules.Scissors))

		ignored := []tea.KeyMsg{
			runeKey("r"), runeKey("x"), runeKey("q"), runeKey("h"), runeKey("l"),
			{Type: tea.KeyUp}, {Type: tea.KeyLeft}, {Type: tea.KeyRight}, {Type: tea.KeyBackspace},
		}
		for _, k := range ignored {
			_, cmd := m.Update(k)
			assert.Nil(t, cmd, k.String())
			assert.Equal(t, display.MoveControlID(rules.Rock), m.focused().ID, k.String())
		}

		assert.Equal(t, "0", text(m, display.PlayerScoreID))
		assert.Empty(t, text(m, display.ResultDisplayID))
		assert.Empty(t, m.focused().Classes())
		assert.Equal(t, display.MoveControlID(rules.Rock), m.focused().ID)
		assert.Zero(t, m.Rounds())
	})

	t.Run("focus wraps in both directions", func(t *testing.T) {
		m, _ := newTestModel(t, forced(rules.Rock))

		m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		assert.Equal(t, display.ResetButtonID, m.focused().ID)

		m.Update(tabKey)
		assert.Equal(t, display.MoveControlID(rules.Rock), m.focused().ID)
	})
}

func TestPointerActivation(t *testing.T) {
	m, _ := newTestModel(t, forced(rules.Rock))

	cmd := clickOn(t, m, display.MoveControlID(rules.Scissors))
	assert.NotNil(t, cmd)

	assert.Equal(t, display.MoveControlID(rules.Scissors), m.focused().ID)
	assert.Equal(t, "1", text(m, display.ComputerScoreID))
	assert.Equal(t, "Rock beats Scissors. You lose!", text(m, display.ResultDisplayID))
}

func TestPointerIgnoresOtherButtonsAndEmptySpace(t *testing.T) {
	m, _ := newTestModel(t, forced(rules.Rock))
	z := m.layout().zones[0]

	m.Update(tea.MouseMsg{X: z.x0 + 1, Y: z.y0 + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m.Update(tea.MouseMsg{X: z.x0 + 1, Y: z.y0 + 1, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Zero(t, m.Rounds())
	assert.Empty(t, text(m, display.ResultDisplayID))
}

func TestControlWithoutMoveIsInert(t *testing.T) {
	board := display.NewBoard()
	board.Add(display.NewTarget(display.PlayerScoreID))
	board.Add(display.NewTarget(display.ComputerScoreID))
	board.Add(display.NewTarget(display.ResultDisplayID))
	mystery := display.NewTarget("mystery")
	mystery.Label = "?"
	mystery.Focusable = true
	board.Add(mystery)

	logger := quietLogger()
	controller := game.NewController(forced(rules.Rock), display.NewPresenter(board), logger)
	m := New(board, controller, logger, Options{Clock: quartz.NewMock(t)})

	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Nil(t, clickOn(t, m, "mystery"))

	assert.Equal(t, "0", text(m, display.PlayerScoreID))
	assert.Equal(t, "0", text(m, display.ComputerScoreID))
	assert.Empty(t, text(m, display.ResultDisplayID))
	assert.Empty(t, mystery.Classes())
}

func TestMissingControlsAreTolerated(t *testing.T) {
	board := display.NewBoard()
	logger := quietLogger()
	controller := game.NewController(forced(rules.Rock), display.NewPresenter(board), logger)
	m := New(board, controller, logger, Options{Clock: quartz.NewMock(t)})

	assert.NotPanics(t, func() {
		m.Update(enterKey)
		m.Update(tabKey)
		m.Update(tea.MouseMsg{X: 3, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		_ = m.View()
	})
	assert.Zero(t, m.Rounds())
}

func TestReset(t *testing.T) {
	m, _ := newTestModel(t, forced(rules.Scissors))

	m.Update(enterKey) // rock wins
	focusOn(t, m, display.MoveControlID(rules.Paper))
	m.Update(enterKey) // paper loses
	require.Equal(t, game.Score{Human: 1, Opponent: 1}, m.Score())

	focusOn(t, m, display.ResetButtonID)
	_, cmd := m.Update(spaceKey)
	assert.Nil(t, cmd, "reset does not pulse")

	assert.Equal(t, "0", text(m, display.PlayerScoreID))
	assert.Equal(t, "0", text(m, display.ComputerScoreID))
	assert.Empty(t, text(m, display.ResultDisplayID))
	assert.Empty(t, m.board.Get(display.ResultDisplayID).Classes())

	m.Update(spaceKey)
	assert.Equal(t, game.Score{}, m.Score())
}

func TestPulse(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("animate class is removed after the pulse", func(t *testing.T) {
		m, clock := newTestModel(t, forced(rules.Rock))
		rock := m.board.Get(display.MoveControlID(rules.Rock))

		_, cmd := m.Update(enterKey)
		require.NotNil(t, cmd)
		assert.True(t, rock.HasClass(display.AnimateClass))

		clock.Advance(PulseDuration).MustWait(ctx)
		m.Update(cmd())

		assert.False(t, rock.HasClass(display.AnimateClass))
	})

	t.Run("stale pulse leaves a newer one alone", func(t *testing.T) {
		m, clock := newTestModel(t, forced(rules.Rock))
		rock := m.board.Get(display.MoveControlID(rules.Rock))

		_, first := m.Update(enterKey)
		clock.Advance(PulseDuration / 2).MustWait(ctx)
		_, second := m.Update(enterKey)

		clock.Advance(PulseDuration / 2).MustWait(ctx)
		m.Update(first())
		assert.True(t, rock.HasClass(display.AnimateClass))

		clock.Advance(PulseDuration / 2).MustWait(ctx)
		m.Update(second())
		assert.False(t, rock.HasClass(display.AnimateClass))
	})

	t.Run("pulse for a removed control is ignored", func(t *testing.T) {
		m, clock := newTestModel(t, forced(rules.Rock))

		_, cmd := m.Update(enterKey)
		m.board.Remove(display.MoveControlID(rules.Rock))

		clock.Advance(PulseDuration).MustWait(ctx)
		assert.NotPanics(t, func() { m.Update(cmd()) })
	})

	t.Run("rounds are not gated by a running pulse", func(t *testing.T) {
		m, _ := newTestModel(t, forced(rules.Scissors))
		m.Update(enterKey)
		m.Update(enterKey)
		assert.Equal(t, game.Score{Human: 2}, m.Score())
	})
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, forced(rules.Scissors))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(enterKey)

	view := m.View()
	for _, want := range []string{"Rock · Paper · Scissors", "You", "Computer", "Rock", "Paper", "Scissors", "Reset", "Rock beats Scissors. You win!"} {
		assert.Contains(t, view, want)
	}
}

func TestAnnouncements(t *testing.T) {
	m, _ := newTestModel(t, forced(rules.Scissors))
	assert.Empty(t, m.announcement, "initial render is not announced")

	m.Update(enterKey)
	assert.Equal(t, "Rock beats Scissors. You win!", m.announcement)
	assert.Contains(t, m.View(), InfoStyle.Render("Rock beats Scissors. You win!"))

	display.NewPresenter(m.board).RenderScores(1, 1)
	assert.Equal(t, "Computer score: 1", m.announcement)
	assert.Contains(t, m.View(), "Computer score: 1")

	focusOn(t, m, display.ResetButtonID)
	m.Update(enterKey)
	assert.Equal(t, "Computer score: 0", m.announcement)

	m.Update(tabKey) // rock
	m.Update(enterKey)
	display.NewPresenter(m.board).RenderScores(2, 0)
	assert.Contains(t, m.View(), "Your score: 2")
}

func TestQuit(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	m := NewGame(forced(rules.Scissors), logger, Options{Clock: quartz.NewMock(t)})

	m.Update(enterKey) // rock beats scissors
	focusOn(t, m, display.MoveControlID(rules.Paper))
	m.Update(enterKey) // scissors beats paper

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())

	out := buf.String()
	assert.Contains(t, out, "Session ended")
	assert.Contains(t, out, "rounds=2")
	assert.Contains(t, out, "human=1")
	assert.Contains(t, out, "opponent=1")
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, forced(rules.Rock))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
