// internal/config/config.go
//
// Game configuration.
// Responsibilities:
//   - Hold every constant the engine, renderer and loop need.
//   - Validate the configuration before any round is generated.
//   - Derive the board layout and controller timing.
//
// Loading (HCL files + environment) lives in load.go.

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
)

// Config is the fully resolved configuration.
type Config struct {
	WindowWidth  int
	WindowHeight int

	BoardWidth  int
	BoardHeight int
	BoxSize     int
	GapSize     int

	FPS           int
	RevealSpeed   int
	BatchSize     int
	FlashCycles   int
	MismatchDelay time.Duration
	WinDelay      time.Duration
	NewRoundDelay time.Duration
	FlashDelay    time.Duration

	Background      game.Color
	LightBackground game.Color
	BoxColor        game.Color
	Highlight       game.Color

	Colors []game.Color
	Shapes []game.Shape

	// Terminal cell size in pixels.
	ColumnPixels int
	RowPixels    int

	Seed      *int64 // nil picks one at startup; zero is a valid seed
	Daily     bool
	DailySalt string

	LogLevel   string
	LogFile    string
	StatusAddr string // empty disables the status server
}

// Validate reports the first configuration error.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: window %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	if c.BoxSize <= 0 || c.GapSize < 0 {
		return fmt.Errorf("config: box size %d must be positive and gap size %d non-negative", c.BoxSize, c.GapSize)
	}
	if err := game.CheckDimensions(c.BoardWidth, c.BoardHeight, len(c.Shapes), len(c.Colors)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.BoardWidth*(c.BoxSize+c.GapSize) > c.WindowWidth || c.BoardHeight*(c.BoxSize+c.GapSize) > c.WindowHeight {
		return fmt.Errorf("config: %dx%d board does not fit a %dx%d window",
			c.BoardWidth, c.BoardHeight, c.WindowWidth, c.WindowHeight)
	}
	if c.FPS <= 0 {
		return errors.New("config: fps must be positive")
	}
	if c.RevealSpeed <= 0 {
		return errors.New("config: reveal speed must be positive")
	}
	if c.BatchSize <= 0 {
		return errors.New("config: start batch size must be positive")
	}
	if c.FlashCycles < 0 {
		return errors.New("config: flash cycles must not be negative")
	}
	for name, d := range map[string]time.Duration{
		"mismatch":  c.MismatchDelay,
		"win":       c.WinDelay,
		"new round": c.NewRoundDelay,
		"flash":     c.FlashDelay,
	} {
		if d < 0 {
			return fmt.Errorf("config: %s delay must not be negative", name)
		}
	}
	if c.ColumnPixels <= 0 || c.RowPixels <= 0 {
		return errors.New("config: terminal cell size must be positive")
	}
	return nil
}

// Layout centers the board in the window.
func (c *Config) Layout() game.Layout {
	return game.NewLayout(c.WindowWidth, c.WindowHeight, c.BoardWidth, c.BoardHeight, c.BoxSize, c.GapSize)
}

// Timing returns the controller pauses.
func (c *Config) Timing() game.Timing {
	return game.Timing{Mismatch: c.MismatchDelay, WinHold: c.WinDelay, NewRound: c.NewRoundDelay}
}
