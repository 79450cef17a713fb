// Package config loads PokerPal settings from an optional HCL file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerpal/internal/chips"
)

// DefaultFile is the config file looked for when none is given
const DefaultFile = "pokerpal.hcl"

// Config represents the complete PokerPal configuration
type Config struct {
	PlayersFile  string  `hcl:"players_file,optional"`
	DefaultBuyIn float64 `hcl:"default_buy_in,optional"` // dollars per player for the default pot
	LogLevel     string  `hcl:"log_level,optional"`
	LogFile      string  `hcl:"log_file,optional"` // empty means stderr
	NoColor      bool    `hcl:"no_color,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		PlayersFile:  "players.txt",
		DefaultBuyIn: 10.25,
		LogLevel:     "warn",
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Attributes missing from the file keep their default; ones that are
	// present, even as zero values, replace it and are checked by Validate.
	cfg := Default()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.PlayersFile == "" {
		return fmt.Errorf("players file is required")
	}
	buyIn, err := chips.ParseAmount(strconv.FormatFloat(c.DefaultBuyIn, 'f', -1, 64))
	if err != nil {
		return fmt.Errorf("invalid default buy-in: %w", err)
	}
	if buyIn <= 0 {
		return fmt.Errorf("default buy-in must be at least $0.01, got %v", c.DefaultBuyIn)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

// BuyIn returns the default per-player buy-in as money
func (c *Config) BuyIn() chips.Cents {
	return chips.FromDollars(c.DefaultBuyIn)
}

// Level returns the configured log level, falling back to warn
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
