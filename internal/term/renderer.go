// internal/term/renderer.go
//
// Terminal implementation of ports.Renderer on top of tcell.
// Responsibilities:
//   - Map the game's pixel layout onto terminal cells through a fixed scale.
//   - Rasterise the five icon shapes, covers and highlights.
//   - Present by flushing the tcell back buffer.
//
// A terminal cell belongs to a pixel rectangle when the cell's center lies
// inside it. Input reports mouse positions as cell centers, so clicks always
// land on the box that was drawn under them.

package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/ports"
)

// Scale is the size of one terminal cell in pixels.
type Scale struct {
	ColumnPixels int
	RowPixels    int
}

// Colors are the renderer's fixed colors; the background comes from Clear.
type Colors struct {
	Box       game.Color
	Highlight game.Color
}

// Renderer draws the board on a tcell screen.
type Renderer struct {
	s      tcell.Screen
	layout game.Layout
	scale  Scale
	colors Colors
	bg     game.Color
}

var _ ports.Renderer = (*Renderer)(nil)

func NewRenderer(s tcell.Screen, layout game.Layout, scale Scale, colors Colors) *Renderer {
	return &Renderer{s: s, layout: layout, scale: scale, colors: colors}
}

func (r *Renderer) Clear(c game.Color) {
	r.bg = c
	r.s.Fill(' ', background(c))
}

func (r *Renderer) DrawCoveredBox(cell game.Cell) {
	c0, c1, r0, r1 := r.boxCells(cell, r.layout.BoxSize)
	fill(r.s, c0, c1, r0, r1, background(r.colors.Box))
}

func (r *Renderer) DrawIcon(icon game.Icon, cell game.Cell) {
	left, top := r.layout.LeftTop(cell)
	box := float64(r.layout.BoxSize)
	bg := background(r.bg)
	ink := bg.Foreground(tcellColor(icon.Color))
	glyph := '█'
	if icon.Shape == game.Lines {
		glyph = '╱'
	}

	c0, c1, r0, r1 := r.boxCells(cell, r.layout.BoxSize)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			px := (float64(x)+0.5)*float64(r.scale.ColumnPixels) - float64(left)
			py := (float64(y)+0.5)*float64(r.scale.RowPixels) - float64(top)
			if inShape(icon.Shape, px, py, box) {
				r.s.SetContent(x, y, glyph, nil, ink)
			} else {
				r.s.SetContent(x, y, ' ', nil, bg)
			}
		}
	}
}

func (r *Renderer) DrawCoverRect(cell game.Cell, width int) {
	if width <= 0 {
		return
	}
	if width > r.layout.BoxSize {
		width = r.layout.BoxSize
	}
	c0, c1, r0, r1 := r.boxCells(cell, width)
	fill(r.s, c0, c1, r0, r1, background(r.colors.Box))
}

// DrawHighlight outlines the box one terminal cell outside its edge.
func (r *Renderer) DrawHighlight(cell game.Cell) {
	c0, c1, r0, r1 := r.boxCells(cell, r.layout.BoxSize)
	style := background(r.colors.Highlight)
	for x := c0 - 1; x <= c1; x++ {
		r.s.SetContent(x, r0-1, ' ', nil, style)
		r.s.SetContent(x, r1, ' ', nil, style)
	}
	for y := r0; y < r1; y++ {
		r.s.SetContent(c0-1, y, ' ', nil, style)
		r.s.SetContent(c1, y, ' ', nil, style)
	}
}

func (r *Renderer) Present() { r.s.Show() }

// boxCells returns the half-open column and row ranges covered by the left
// width pixels of a box.
func (r *Renderer) boxCells(cell game.Cell, width int) (c0, c1, r0, r1 int) {
	left, top := r.layout.LeftTop(cell)
	c0, c1 = span(left, width, r.scale.ColumnPixels)
	r0, r1 = span(top, r.layout.BoxSize, r.scale.RowPixels)
	return c0, c1, r0, r1
}

// span returns the cells whose centers lie in [p0, p0+length).
func span(p0, length, unit int) (first, end int) {
	return ceilDiv(2*p0-unit, 2*unit), ceilDiv(2*(p0+length)-unit, 2*unit)
}

// ceilDiv divides rounding up; b must be positive.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// inShape tests a point relative to the box origin against the icon geometry.
func inShape(shape game.Shape, px, py, box float64) bool {
	half, quarter, inset := box/2, box/4, box/8
	switch shape {
	case game.Donut:
		d := math.Hypot(px-half, py-half)
		return d <= half-inset && d >= quarter-inset
	case game.Square:
		return px >= quarter && px < box-quarter && py >= quarter && py < box-quarter
	case game.Diamond:
		return math.Abs(px-half)+math.Abs(py-half) <= half
	case game.Lines:
		return true
	case game.Oval:
		dx, dy := (px-half)/half, (py-half)/quarter
		return dx*dx+dy*dy <= 1
	}
	return false
}

func fill(s tcell.Screen, c0, c1, r0, r1 int, style tcell.Style) {
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

func tcellColor(c game.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func background(c game.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcellColor(c))
}
