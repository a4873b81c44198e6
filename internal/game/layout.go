package game

// Layout is the pixel geometry of the board inside the window. Renderers use it
// to place boxes and the game loop uses it to hit-test the mouse.
type Layout struct {
	BoardWidth  int
	BoardHeight int
	BoxSize     int
	GapSize     int
	XMargin     int
	YMargin     int
}

// NewLayout centers a board of boxes in a window.
func NewLayout(windowW, windowH, boardW, boardH, box, gap int) Layout {
	return Layout{
		BoardWidth:  boardW,
		BoardHeight: boardH,
		BoxSize:     box,
		GapSize:     gap,
		XMargin:     (windowW - boardW*(box+gap)) / 2,
		YMargin:     (windowH - boardH*(box+gap)) / 2,
	}
}

// LeftTop returns the pixel origin of a box.
func (l Layout) LeftTop(c Cell) (left, top int) {
	return c.X*(l.BoxSize+l.GapSize) + l.XMargin, c.Y*(l.BoxSize+l.GapSize) + l.YMargin
}

// CellAt maps a pixel to the box under it. Gaps and margins hit nothing.
func (l Layout) CellAt(px, py int) (Cell, bool) {
	x, okX := l.axis(px-l.XMargin, l.BoardWidth)
	y, okY := l.axis(py-l.YMargin, l.BoardHeight)
	if !okX || !okY {
		return Cell{}, false
	}
	return Cell{X: x, Y: y}, true
}

func (l Layout) axis(offset, count int) (int, bool) {
	if offset < 0 {
		return 0, false
	}
	stride := l.BoxSize + l.GapSize
	i := offset / stride
	if i >= count || offset%stride >= l.BoxSize {
		return 0, false
	}
	return i, true
}
