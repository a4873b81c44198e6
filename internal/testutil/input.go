package testutil

import "github.com/SyrovatkaA/memory-puzzle-game/internal/ports"

// Script is a ports.Input that replays one batch of events per Poll and then
// returns nothing.
type Script struct {
	Frames [][]ports.Event
	polls  int
}

var _ ports.Input = (*Script)(nil)

func (s *Script) Poll() []ports.Event {
	s.polls++
	if len(s.Frames) == 0 {
		return nil
	}
	next := s.Frames[0]
	s.Frames = s.Frames[1:]
	return next
}

// Polls counts Poll calls.
func (s *Script) Polls() int { return s.polls }

// Click is shorthand for a click event at pixel (x, y).
func Click(x, y int) ports.Event {
	return ports.Event{Kind: ports.MouseClicked, X: x, Y: y}
}

// Move is shorthand for a mouse move to pixel (x, y).
func Move(x, y int) ports.Event {
	return ports.Event{Kind: ports.MouseMoved, X: x, Y: y}
}
