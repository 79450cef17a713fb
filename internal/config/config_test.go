package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerpal/internal/chips"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokerpal.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "players.txt", cfg.PlayersFile)
	assert.Equal(t, chips.Cents(1025), cfg.BuyIn())
	assert.Equal(t, log.WarnLevel, cfg.Level())
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
players_file   = "regulars.txt"
default_buy_in = 20
log_level      = "debug"
log_file       = "pokerpal.log"
no_color       = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "regulars.txt", cfg.PlayersFile)
	assert.Equal(t, chips.Cents(2000), cfg.BuyIn())
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, "pokerpal.log", cfg.LogFile)
	assert.True(t, cfg.NoColor)
	require.NoError(t, cfg.Validate())
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `no_color = true`))
	require.NoError(t, err)

	assert.Equal(t, "players.txt", cfg.PlayersFile)
	assert.Equal(t, 10.25, cfg.DefaultBuyIn)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadKeepsExplicitZeroBuyIn(t *testing.T) {
	cfg, err := Load(writeConfig(t, `default_buy_in = 0`))
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.DefaultBuyIn)
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buy-in")
}

func TestValidateSmallestBuyIn(t *testing.T) {
	cfg := Default()
	cfg.DefaultBuyIn = 0.01
	require.NoError(t, cfg.Validate())
	assert.Equal(t, chips.Cents(1), cfg.BuyIn())
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load(writeConfig(t, `players_file = `))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `unknown_setting = 1`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"empty players file", func(c *Config) { c.PlayersFile = "" }, "players file"},
		{"negative buy-in", func(c *Config) { c.DefaultBuyIn = -1 }, "buy-in"},
		{"zero buy-in", func(c *Config) { c.DefaultBuyIn = 0 }, "buy-in"},
		{"sub-cent buy-in", func(c *Config) { c.DefaultBuyIn = 0.001 }, "buy-in"},
		{"huge buy-in", func(c *Config) { c.DefaultBuyIn = 1e300 }, "buy-in"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
