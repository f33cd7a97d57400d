package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/rps/internal/config"
	"github.com/lox/rps/internal/game"
	"github.com/lox/rps/internal/randutil"
	"github.com/lox/rps/internal/sessionid"
	"github.com/lox/rps/internal/tui"
	"github.com/muesli/termenv"
)

type PlayCmd struct {
	Config   string `kong:"default='rps.hcl',help='Path to HCL config file (optional)'"`
	Seed     int64  `kong:"help='Seed for the opponent (0 for random)'"`
	LogLevel string `kong:"help='Log level (debug|info|warn|error)'"`
	LogFile  string `kong:"help='File to write logs to'"`
	NoMouse  bool   `kong:"help='Disable pointer activation'"`
	NoColor  bool   `kong:"help='Render without colours'"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "rps",
		Level:           level,
	}).With("session", sessionid.New())

	if cfg.UI.Theme == "mono" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	seed := cfg.Opponent.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}
	logger.Info("Starting game", "seed", seed, "mouse", cfg.MouseEnabled())

	model := tui.NewGame(game.NewSelector(randutil.New(seed)), logger, tui.Options{})

	var opts []tea.ProgramOption
	if cfg.AltScreenEnabled() {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	score := model.Score()
	fmt.Println(tui.HeaderStyle.Render(" Final score "))
	fmt.Printf("You %d · Computer %d (%d rounds)\n", score.Human, score.Opponent, model.Rounds())
	return nil
}

// applyOverrides lets command line flags win over the config file
func (c *PlayCmd) applyOverrides(cfg *config.Config) {
	if c.Seed != 0 {
		cfg.Opponent.Seed = c.Seed
	}
	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.NoMouse {
		off := false
		cfg.UI.Mouse = &off
	}
	if c.NoColor {
		cfg.UI.Theme = "mono"
	}
}
