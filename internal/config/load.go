package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/SyrovatkaA/memory-puzzle-game/assets"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/palette"
)

// fileRoot mirrors a config file. Every field is a pointer so an absent
// attribute leaves the lower layer untouched; unknown attributes are errors.
type fileRoot struct {
	Window   *windowBlock   `hcl:"window,block"`
	Board    *boardBlock    `hcl:"board,block"`
	Timing   *timingBlock   `hcl:"timing,block"`
	Colors   *colorsBlock   `hcl:"colors,block"`
	Terminal *terminalBlock `hcl:"terminal,block"`
	Palette  *[]string      `hcl:"palette,optional"`
	Shapes   *[]string      `hcl:"shapes,optional"`
}

type windowBlock struct {
	Width  *int `hcl:"width,optional"`
	Height *int `hcl:"height,optional"`
}

type boardBlock struct {
	Width   *int `hcl:"width,optional"`
	Height  *int `hcl:"height,optional"`
	BoxSize *int `hcl:"box_size,optional"`
	GapSize *int `hcl:"gap_size,optional"`
}

type timingBlock struct {
	FPS             *int `hcl:"fps,optional"`
	RevealSpeed     *int `hcl:"reveal_speed,optional"`
	MismatchDelayMs *int `hcl:"mismatch_delay_ms,optional"`
	WinDelayMs      *int `hcl:"win_delay_ms,optional"`
	NewRoundDelayMs *int `hcl:"new_round_delay_ms,optional"`
	FlashDelayMs    *int `hcl:"flash_delay_ms,optional"`
	FlashCycles     *int `hcl:"flash_cycles,optional"`
	StartBatchSize  *int `hcl:"start_batch_size,optional"`
}

type colorsBlock struct {
	Background      *string `hcl:"background,optional"`
	LightBackground *string `hcl:"light_background,optional"`
	Box             *string `hcl:"box,optional"`
	Highlight       *string `hcl:"highlight,optional"`
}

type terminalBlock struct {
	ColumnPixels *int `hcl:"column_pixels,optional"`
	RowPixels    *int `hcl:"row_pixels,optional"`
}

// Load builds the configuration from the embedded defaults, the optional file
// at path and the process environment, then validates it.
func Load(path string) (*Config, error) {
	return LoadWith(path, os.Getenv)
}

// LoadWith is Load with an injectable environment lookup.
func LoadWith(path string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	parser := hclparse.NewParser()

	base, diags := parser.ParseHCL(assets.DefaultConfig(), assets.DefaultConfigName)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", assets.DefaultConfigName, diags)
	}
	if err := applyFile(cfg, base); err != nil {
		return nil, fmt.Errorf("%s: %w", assets.DefaultConfigName, err)
	}

	if path != "" {
		f, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}
		if err := applyFile(cfg, f); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, f *hcl.File) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode: %w", diags)
	}

	if w := root.Window; w != nil {
		setInt(&cfg.WindowWidth, w.Width)
		setInt(&cfg.WindowHeight, w.Height)
	}
	if b := root.Board; b != nil {
		setInt(&cfg.BoardWidth, b.Width)
		setInt(&cfg.BoardHeight, b.Height)
		setInt(&cfg.BoxSize, b.BoxSize)
		setInt(&cfg.GapSize, b.GapSize)
	}
	if t := root.Timing; t != nil {
		setInt(&cfg.FPS, t.FPS)
		setInt(&cfg.RevealSpeed, t.RevealSpeed)
		setInt(&cfg.FlashCycles, t.FlashCycles)
		setInt(&cfg.BatchSize, t.StartBatchSize)
		setMillis(&cfg.MismatchDelay, t.MismatchDelayMs)
		setMillis(&cfg.WinDelay, t.WinDelayMs)
		setMillis(&cfg.NewRoundDelay, t.NewRoundDelayMs)
		setMillis(&cfg.FlashDelay, t.FlashDelayMs)
	}
	if c := root.Colors; c != nil {
		for _, field := range []struct {
			dst  *game.Color
			name *string
		}{
			{&cfg.Background, c.Background},
			{&cfg.LightBackground, c.LightBackground},
			{&cfg.BoxColor, c.Box},
			{&cfg.Highlight, c.Highlight},
		} {
			if field.name == nil {
				continue
			}
			v, err := palette.Color(*field.name)
			if err != nil {
				return err
			}
			*field.dst = v
		}
	}
	if t := root.Terminal; t != nil {
		setInt(&cfg.ColumnPixels, t.ColumnPixels)
		setInt(&cfg.RowPixels, t.RowPixels)
	}
	if root.Palette != nil {
		colors, err := palette.Colors(*root.Palette)
		if err != nil {
			return err
		}
		cfg.Colors = colors
	}
	if root.Shapes != nil {
		shapes, err := palette.Shapes(*root.Shapes)
		if err != nil {
			return err
		}
		cfg.Shapes = shapes
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	env := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}

	cfg.LogLevel = env("LOG_LEVEL", "info")
	cfg.LogFile = env("LOG_FILE", "memorypuzzle.log")
	cfg.StatusAddr = env("STATUS_ADDR", "")
	cfg.DailySalt = env("DAILY_SALT", "local_dev_salt")

	if v := getenv("MEMORY_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: MEMORY_SEED: %w", err)
		}
		cfg.Seed = &n
	}
	if v := getenv("MEMORY_DAILY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: MEMORY_DAILY: %w", err)
		}
		cfg.Daily = b
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setMillis(dst *time.Duration, ms *int) {
	if ms != nil {
		*dst = time.Duration(*ms) * time.Millisecond
	}
}
