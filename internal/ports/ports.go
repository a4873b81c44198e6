package ports

import (
	"time"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
)

// Renderer draws in cell coordinates. It owns the mapping to its surface and
// never mutates game state.
type Renderer interface {
	Clear(c game.Color)
	DrawCoveredBox(cell game.Cell)
	DrawIcon(icon game.Icon, cell game.Cell)
	// DrawCoverRect covers the left width pixels of a box; width <= 0 draws nothing.
	DrawCoverRect(cell game.Cell, width int)
	DrawHighlight(cell game.Cell)
	Present()
}

// EventKind enumerates the input events the game reacts to.
type EventKind int

const (
	Quit EventKind = iota
	Escape
	MouseMoved
	MouseClicked
)

// Event is one input event; X and Y are pixels for mouse events.
type Event struct {
	Kind EventKind
	X, Y int
}

// Input returns the events received since the previous call. Never blocks.
type Input interface {
	Poll() []Event
}

// Clock paces frames and pauses.
type Clock interface {
	Wait(d time.Duration)
	// Tick blocks until 1/fps has passed since the previous Tick.
	Tick(fps int)
	Elapsed() time.Duration
}
