// Package testutil holds headless doubles for the engine's collaborators.
package testutil

import (
	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/ports"
)

// OpKind names a renderer call.
type OpKind string

const (
	OpClear     OpKind = "clear"
	OpCovered   OpKind = "covered"
	OpIcon      OpKind = "icon"
	OpCoverRect OpKind = "cover_rect"
	OpHighlight OpKind = "highlight"
	OpPresent   OpKind = "present"
)

// Op is one recorded renderer call.
type Op struct {
	Kind  OpKind
	Cell  game.Cell
	Icon  game.Icon
	Color game.Color
	Width int
}

// Recorder is a ports.Renderer that remembers every call.
type Recorder struct {
	Ops []Op
}

var _ ports.Renderer = (*Recorder)(nil)

func (r *Recorder) Clear(c game.Color)            { r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c}) }
func (r *Recorder) DrawCoveredBox(cell game.Cell) { r.Ops = append(r.Ops, Op{Kind: OpCovered, Cell: cell}) }
func (r *Recorder) DrawHighlight(cell game.Cell)  { r.Ops = append(r.Ops, Op{Kind: OpHighlight, Cell: cell}) }
func (r *Recorder) Present()                      { r.Ops = append(r.Ops, Op{Kind: OpPresent}) }

func (r *Recorder) DrawIcon(icon game.Icon, cell game.Cell) {
	r.Ops = append(r.Ops, Op{Kind: OpIcon, Cell: cell, Icon: icon})
}

func (r *Recorder) DrawCoverRect(cell game.Cell, width int) {
	r.Ops = append(r.Ops, Op{Kind: OpCoverRect, Cell: cell, Width: width})
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// CoverWidths lists the widths of every cover rect drawn for cell.
func (r *Recorder) CoverWidths(cell game.Cell) []int {
	var out []int
	for _, op := range r.Ops {
		if op.Kind == OpCoverRect && op.Cell == cell {
			out = append(out, op.Width)
		}
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() { r.Ops = nil }
