// internal/game/turn.go
//
// Turn controller for a memory puzzle session.
// Responsibilities:
//   - Accept clicks on cells and drive the Idle → OneSelected → Resolving loop.
//   - Compare the two selected icons; cover mismatches, keep matches.
//   - Detect the win, play the win sequence and swap in a fresh round.
//
// Animations are requested through Animator and run to completion before Click
// returns, so a click can never land mid-animation.

package game

import (
	"time"

	"github.com/rs/zerolog/log"
)

// State is the controller's position in the turn state machine.
type State int

const (
	Idle State = iota
	OneSelected
	Resolving
	Won
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case OneSelected:
		return "one_selected"
	case Resolving:
		return "resolving"
	case Won:
		return "won"
	}
	return "unknown"
}

// Result tells the caller what a click did.
type Result int

const (
	Ignored Result = iota
	FirstRevealed
	Matched
	Mismatched
	RoundWon
)

func (r Result) String() string {
	switch r {
	case Ignored:
		return "ignored"
	case FirstRevealed:
		return "first_revealed"
	case Matched:
		return "matched"
	case Mismatched:
		return "mismatched"
	case RoundWon:
		return "round_won"
	}
	return "unknown"
}

// Animator plays the visual side of turn events. Every call blocks until the
// sequence has been fully rendered.
type Animator interface {
	Reveal(b *Board, cells []Cell)
	Cover(b *Board, cells []Cell)
	WinFlash(b *Board)
	// ShowCovered renders b fully covered for a single frame.
	ShowCovered(b *Board)
	StartRound(b *Board)
	Pause(d time.Duration)
}

// Timing holds the pauses the controller inserts between animations.
type Timing struct {
	Mismatch time.Duration // before covering a mismatched pair
	WinHold  time.Duration // after the win flash
	NewRound time.Duration // covered board shown before the start sequence
}

// DefaultTiming matches the classic game.
func DefaultTiming() Timing {
	return Timing{
		Mismatch: 1000 * time.Millisecond,
		WinHold:  2000 * time.Millisecond,
		NewRound: 1000 * time.Millisecond,
	}
}

// Stats are the per-round counters.
type Stats struct {
	Turns      int `json:"turns"`
	Matches    int `json:"matches"`
	Mismatches int `json:"mismatches"`
}

// Controller owns the current round and the player's in-progress selection.
type Controller struct {
	gen    *Generator
	anim   Animator
	timing Timing

	round     *Round
	state     State
	selection []Cell
	stats     Stats
	roundsWon int

	// OnTransition, when set, sees every state change.
	OnTransition func(from, to State)
}

// NewController deals the first round. The start-of-round sequence is left to
// the caller so it can clear the screen first.
func NewController(gen *Generator, anim Animator, timing Timing) *Controller {
	c := &Controller{gen: gen, anim: anim, timing: timing}
	c.newRound()
	return c
}

func (c *Controller) Round() *Round  { return c.round }
func (c *Controller) State() State   { return c.state }
func (c *Controller) Stats() Stats   { return c.stats }
func (c *Controller) RoundsWon() int { return c.roundsWon }

// Selection returns the cells picked so far this turn.
func (c *Controller) Selection() []Cell {
	return append([]Cell(nil), c.selection...)
}

// Click handles a click on cell. Off-board and face-up cells are ignored.
func (c *Controller) Click(cell Cell) Result {
	r := c.round
	if !r.Board.Contains(cell) || r.Revealed.Get(cell) {
		return Ignored
	}

	switch c.state {
	case Idle:
		r.Revealed.Set(cell, true)
		c.anim.Reveal(r.Board, []Cell{cell})
		c.selection = []Cell{cell}
		c.transition(OneSelected)
		return FirstRevealed

	case OneSelected:
		r.Revealed.Set(cell, true)
		c.anim.Reveal(r.Board, []Cell{cell})
		c.selection = append(c.selection, cell)
		c.transition(Resolving)
		return c.resolve()
	}

	// Resolving and Won only exist inside a Click call.
	return Ignored
}

func (c *Controller) resolve() Result {
	r := c.round
	first, second := c.selection[0], c.selection[1]
	c.stats.Turns++

	if r.Board.At(first) != r.Board.At(second) {
		c.stats.Mismatches++
		log.Debug().Str("round", r.ID).Stringer("first", first).Stringer("second", second).Msg("mismatch")
		c.anim.Pause(c.timing.Mismatch)
		c.anim.Cover(r.Board, []Cell{first, second})
		r.Revealed.Set(first, false)
		r.Revealed.Set(second, false)
		c.endTurn(Idle)
		return Mismatched
	}

	c.stats.Matches++
	log.Debug().Str("round", r.ID).Stringer("first", first).Stringer("second", second).Msg("match")
	if !r.Revealed.AllTrue() {
		c.endTurn(Idle)
		return Matched
	}

	c.endTurn(Won)
	c.roundsWon++
	log.Info().
		Str("round", r.ID).
		Int("number", r.Number).
		Int("turns", c.stats.Turns).
		Int("mismatches", c.stats.Mismatches).
		Msg("round won")

	c.anim.WinFlash(r.Board)
	c.anim.Pause(c.timing.WinHold)

	c.newRound()
	c.anim.ShowCovered(c.round.Board)
	c.anim.Pause(c.timing.NewRound)
	c.anim.StartRound(c.round.Board)
	c.transition(Idle)
	return RoundWon
}

func (c *Controller) endTurn(next State) {
	c.selection = nil
	c.transition(next)
}

func (c *Controller) newRound() {
	number := 1
	if c.round != nil {
		number = c.round.Number + 1
	}
	c.round = NewRound(number, c.gen.Board())
	c.stats = Stats{}
	log.Info().Str("round", c.round.ID).Int("number", number).Msg("round started")
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	log.Debug().Stringer("from", from).Stringer("to", to).Msg("turn state")
	if c.OnTransition != nil {
		c.OnTransition(from, to)
	}
}
