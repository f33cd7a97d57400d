package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration
type Config struct {
	UI       UISettings       `hcl:"ui,block"`
	Opponent OpponentSettings `hcl:"opponent,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel  string `hcl:"log_level,optional"`
	LogFile   string `hcl:"log_file,optional"`
	Mouse     *bool  `hcl:"mouse,optional"`
	AltScreen *bool  `hcl:"alt_screen,optional"`
	Theme     string `hcl:"theme,optional"`
}

// OpponentSettings contains settings of the random opponent.
// A zero seed draws a fresh seed per session.
type OpponentSettings struct {
	Seed int64 `hcl:"seed,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UISettings{
			LogLevel:  "info",
			LogFile:   "rps.log",
			Mouse:     boolPtr(true),
			AltScreen: boolPtr(true),
			Theme:     "default",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source and fills unset values with defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw struct {
		UI       *UISettings       `hcl:"ui,block"`
		Opponent *OpponentSettings `hcl:"opponent,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if raw.UI != nil {
		config.UI.merge(*raw.UI)
	}
	if raw.Opponent != nil {
		config.Opponent = *raw.Opponent
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (u *UISettings) merge(from UISettings) {
	if from.LogLevel != "" {
		u.LogLevel = from.LogLevel
	}
	if from.LogFile != "" {
		u.LogFile = from.LogFile
	}
	if from.Mouse != nil {
		u.Mouse = from.Mouse
	}
	if from.AltScreen != nil {
		u.AltScreen = from.AltScreen
	}
	if from.Theme != "" {
		u.Theme = from.Theme
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"mono":    true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.UI.LogFile == "" {
		return fmt.Errorf("log file is required")
	}

	return nil
}

// MouseEnabled reports whether pointer activation is enabled
func (c *Config) MouseEnabled() bool {
	return c.UI.Mouse == nil || *c.UI.Mouse
}

// AltScreenEnabled reports whether the TUI takes over the whole terminal
func (c *Config) AltScreenEnabled() bool {
	return c.UI.AltScreen == nil || *c.UI.AltScreen
}

func boolPtr(b bool) *bool {
	return &b
}
