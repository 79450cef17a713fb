package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerpal/internal/config"
	"github.com/lox/pokerpal/internal/display"
	"github.com/lox/pokerpal/internal/roster"
)

// Globals holds flags shared by every command
type Globals struct {
	Config      string `short:"c" default:"pokerpal.hcl" help:"Path to HCL configuration file"`
	PlayersFile string `short:"f" help:"Players file (overrides config)"`
	LogLevel    string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile     string `help:"Log file path (overrides config)"`
	NoColor     bool   `help:"Disable colored output"`

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	clock  quartz.Clock
}

// app bundles what a command needs once configuration is resolved
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *display.Printer
	store   *roster.Store
	clock   quartz.Clock
	stdin   io.Reader
	close   func()
}

// setup loads configuration, applies flag overrides and builds the logger,
// printer and players store
func (g *Globals) setup() (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if g.PlayersFile != "" {
		cfg.PlayersFile = g.PlayersFile
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.LogFile = g.LogFile
	}
	if g.NoColor {
		cfg.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a := &app{
		cfg:   cfg,
		clock: g.clock,
		stdin: g.stdin,
		close: func() {},
	}
	if a.clock == nil {
		a.clock = quartz.NewReal()
	}
	if a.stdin == nil {
		a.stdin = os.Stdin
	}
	stdout, stderr := g.stdout, g.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	logWriter := stderr
	if cfg.LogFile != "" {
		// Overwrite each run
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logWriter = logFile
		a.close = func() { _ = logFile.Close() }
	}

	a.logger = log.NewWithOptions(logWriter, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		TimeFunction:    func(time.Time) time.Time { return a.clock.Now() },
		Prefix:          "pokerpal",
		Level:           cfg.Level(),
	})
	a.printer = display.NewPrinter(stdout, stderr, !cfg.NoColor)
	a.store = roster.NewStore(cfg.PlayersFile, a.logger)

	a.logger.Debug("Configuration loaded", "config", g.Config, "players_file", cfg.PlayersFile, "buy_in", cfg.BuyIn())
	return a, nil
}
