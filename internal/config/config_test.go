package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memory.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith("", envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.WindowWidth)
	assert.Equal(t, 480, cfg.WindowHeight)
	assert.Equal(t, 10, cfg.BoardWidth)
	assert.Equal(t, 7, cfg.BoardHeight)
	assert.Equal(t, 40, cfg.BoxSize)
	assert.Equal(t, 10, cfg.GapSize)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 8, cfg.RevealSpeed)
	assert.Equal(t, 8, cfg.BatchSize)
	assert.Equal(t, 13, cfg.FlashCycles)
	assert.Equal(t, 300*time.Millisecond, cfg.FlashDelay)
	assert.Equal(t, game.Color{R: 60, G: 60, B: 100}, cfg.Background)
	assert.Equal(t, game.Color{R: 100, G: 100, B: 100}, cfg.LightBackground)
	assert.Equal(t, game.Color{R: 255, G: 255, B: 255}, cfg.BoxColor)
	assert.Equal(t, game.Color{B: 255}, cfg.Highlight)
	assert.Len(t, cfg.Colors, 7)
	assert.Equal(t, game.AllShapes, cfg.Shapes)
	assert.Equal(t, 5, cfg.ColumnPixels)
	assert.Equal(t, 10, cfg.RowPixels)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "memorypuzzle.log", cfg.LogFile)
	assert.Equal(t, "", cfg.StatusAddr)
	assert.Nil(t, cfg.Seed)
	assert.False(t, cfg.Daily)

	assert.Equal(t, game.DefaultTiming(), cfg.Timing())
	l := cfg.Layout()
	assert.Equal(t, 70, l.XMargin)
	assert.Equal(t, 65, l.YMargin)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
board {
  width  = 4
  height = 4
}

timing {
  reveal_speed      = 4
  mismatch_delay_ms = 250
}

colors {
  box = "#102030"
}

palette = ["red", "green"]
shapes  = ["donut", "oval", "lines", "square"]
`)
	cfg, err := LoadWith(path, envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.BoardWidth)
	assert.Equal(t, 4, cfg.BoardHeight)
	assert.Equal(t, 40, cfg.BoxSize, "untouched attributes keep their defaults")
	assert.Equal(t, 4, cfg.RevealSpeed)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 250*time.Millisecond, cfg.MismatchDelay)
	assert.Equal(t, 2*time.Second, cfg.WinDelay)
	assert.Equal(t, game.Color{R: 0x10, G: 0x20, B: 0x30}, cfg.BoxColor)
	assert.Equal(t, game.Color{R: 60, G: 60, B: 100}, cfg.Background)
	assert.Equal(t, []game.Color{{R: 255}, {G: 255}}, cfg.Colors)
	assert.Equal(t, []game.Shape{game.Donut, game.Oval, game.Lines, game.Square}, cfg.Shapes)
}

func TestLoadEnvironment(t *testing.T) {
	cfg, err := LoadWith("", envOf(map[string]string{
		"LOG_LEVEL":    "debug",
		"LOG_FILE":     "/tmp/game.log",
		"STATUS_ADDR":  ":8090",
		"MEMORY_SEED":  "42",
		"MEMORY_DAILY": "true",
		"DAILY_SALT":   "pepper",
	}))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/game.log", cfg.LogFile)
	assert.Equal(t, ":8090", cfg.StatusAddr)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.True(t, cfg.Daily)
	assert.Equal(t, "pepper", cfg.DailySalt)
}

func TestLoadZeroSeedIsKept(t *testing.T) {
	cfg, err := LoadWith("", envOf(map[string]string{"MEMORY_SEED": "0", "MEMORY_DAILY": "true"}))
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(0), *cfg.Seed)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantErr string
	}{
		{name: "odd board", file: "board {\n  width = 3\n  height = 3\n}\n", wantErr: "even number"},
		{name: "too many pairs", file: "palette = [\"red\"]\n", wantErr: "too big"},
		{name: "board larger than window", file: "board {\n  box_size = 80\n}\n", wantErr: "does not fit"},
		{name: "unknown attribute", file: "board {\n  depth = 3\n}\n", wantErr: "decode"},
		{name: "unknown color", file: "colors {\n  box = \"mauve\"\n}\n", wantErr: "unknown color"},
		{name: "unknown shape", file: "shapes = [\"star\"]\n", wantErr: "unknown shape"},
		{name: "zero speed", file: "timing {\n  reveal_speed = 0\n}\n", wantErr: "reveal speed"},
		{name: "syntax", file: "board {", wantErr: "parse"},
		{name: "bad seed", env: map[string]string{"MEMORY_SEED": "abc"}, wantErr: "MEMORY_SEED"},
		{name: "bad daily flag", env: map[string]string{"MEMORY_DAILY": "often"}, wantErr: "MEMORY_DAILY"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := ""
			if tc.file != "" {
				path = writeConfig(t, tc.file)
			}
			_, err := LoadWith(path, envOf(tc.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadWith(filepath.Join(t.TempDir(), "absent.hcl"), envOf(nil))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadWith("", envOf(nil))
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window", func(c *Config) { c.WindowWidth = 0 }},
		{"box", func(c *Config) { c.BoxSize = 0 }},
		{"gap", func(c *Config) { c.GapSize = -1 }},
		{"fps", func(c *Config) { c.FPS = 0 }},
		{"batch", func(c *Config) { c.BatchSize = 0 }},
		{"flash cycles", func(c *Config) { c.FlashCycles = -1 }},
		{"negative delay", func(c *Config) { c.WinDelay = -time.Second }},
		{"terminal scale", func(c *Config) { c.RowPixels = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, valid().Validate())
}
