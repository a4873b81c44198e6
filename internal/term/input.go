package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/ports"
)

// Input turns tcell events into game events. tcell's PollEvent blocks, so a
// goroutine feeds a channel that Poll drains without blocking.
type Input struct {
	s       tcell.Screen
	scale   Scale
	events  chan tcell.Event
	buttons tcell.ButtonMask
}

var _ ports.Input = (*Input)(nil)

// NewInput starts reading events from s. The reader exits when s is finalized.
func NewInput(s tcell.Screen, scale Scale) *Input {
	in := &Input{s: s, scale: scale, events: make(chan tcell.Event, 256)}
	go in.pump()
	return in
}

func (in *Input) pump() {
	for {
		ev := in.s.PollEvent()
		if ev == nil {
			close(in.events)
			return
		}
		in.events <- ev
	}
}

// Poll returns everything received since the last call. Once the screen is
// gone it keeps reporting Quit.
func (in *Input) Poll() []ports.Event {
	var out []ports.Event
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return append(out, ports.Event{Kind: ports.Quit})
			}
			out = in.translate(out, ev)
		default:
			return out
		}
	}
}

func (in *Input) translate(out []ports.Event, ev tcell.Event) []ports.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyEscape:
			out = append(out, ports.Event{Kind: ports.Escape})
		case tcell.KeyCtrlC:
			out = append(out, ports.Event{Kind: ports.Quit})
		}
	case *tcell.EventMouse:
		col, row := e.Position()
		x := col*in.scale.ColumnPixels + in.scale.ColumnPixels/2
		y := row*in.scale.RowPixels + in.scale.RowPixels/2
		buttons := e.Buttons()
		released := in.buttons&tcell.Button1 != 0 && buttons&tcell.Button1 == 0
		in.buttons = buttons
		kind := ports.MouseMoved
		if released {
			kind = ports.MouseClicked
		}
		out = append(out, ports.Event{Kind: kind, X: x, Y: y})
	case *tcell.EventResize:
		in.s.Sync()
	}
	return out
}
