// internal/loop/loop.go
//
// Frame loop that composes the engine.
// Responsibilities:
//   - Poll input once per frame; quit/escape end the loop.
//   - Hit-test the mouse against the layout and forward clicks on covered boxes.
//   - Redraw the board, highlight the hovered box, present and cap the frame rate.
//   - Publish a snapshot after every handled click (optional).

package loop

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/anim"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/ports"
)

// Publisher receives snapshots for observers outside the loop goroutine.
type Publisher interface {
	Publish(ctx context.Context, s game.Snapshot) error
}

// Config holds the per-frame constants.
type Config struct {
	FPS        int
	Background game.Color
}

// Loop owns the controller and every collaborator the frame cycle touches.
type Loop struct {
	ctl    *game.Controller
	seq    *anim.Sequencer
	r      ports.Renderer
	in     ports.Input
	clk    ports.Clock
	layout game.Layout
	cfg    Config
	pub    Publisher

	mouseX, mouseY int
	frames         int
}

// New wires a loop. Publisher may be nil.
func New(ctl *game.Controller, seq *anim.Sequencer, r ports.Renderer, in ports.Input,
	clk ports.Clock, layout game.Layout, cfg Config, pub Publisher) *Loop {
	return &Loop{ctl: ctl, seq: seq, r: r, in: in, clk: clk, layout: layout, cfg: cfg, pub: pub}
}

// Run plays the opening preview and then runs frames until the player quits or
// ctx is cancelled. Cancellation is only observed between frames.
func (l *Loop) Run(ctx context.Context) error {
	l.Start(ctx)
	for {
		if ctx.Err() != nil {
			log.Info().Int("frames", l.frames).Msg("loop cancelled")
			return nil
		}
		if quit := l.Frame(ctx); quit {
			log.Info().Int("frames", l.frames).Msg("player quit")
			return nil
		}
	}
}

// Start plays the start-of-round sequence for the first round.
func (l *Loop) Start(ctx context.Context) {
	l.r.Clear(l.cfg.Background)
	l.seq.StartRound(l.ctl.Round().Board)
	l.publish(ctx)
}

// Frame runs one cycle and reports whether the player asked to quit.
func (l *Loop) Frame(ctx context.Context) bool {
	clicked := false
	for _, ev := range l.in.Poll() {
		switch ev.Kind {
		case ports.Quit, ports.Escape:
			return true
		case ports.MouseMoved:
			l.mouseX, l.mouseY = ev.X, ev.Y
		case ports.MouseClicked:
			l.mouseX, l.mouseY = ev.X, ev.Y
			clicked = true
		}
	}

	cell, over := l.layout.CellAt(l.mouseX, l.mouseY)
	if over && clicked && !l.ctl.Round().Revealed.Get(cell) {
		res := l.ctl.Click(cell)
		log.Debug().Stringer("cell", cell).Stringer("result", res).Msg("click")
		l.publish(ctx)
	}

	round := l.ctl.Round()
	l.r.Clear(l.cfg.Background)
	l.seq.DrawBoard(round.Board, round.Revealed)
	if over && !round.Revealed.Get(cell) {
		l.r.DrawHighlight(cell)
	}
	l.r.Present()
	l.clk.Tick(l.cfg.FPS)
	l.frames++
	return false
}

func (l *Loop) publish(ctx context.Context) {
	if l.pub == nil {
		return
	}
	if err := l.pub.Publish(ctx, l.ctl.Snapshot(time.Now())); err != nil {
		log.Warn().Err(err).Msg("publish snapshot")
	}
}
