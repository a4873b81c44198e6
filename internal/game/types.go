// internal/game/types.go
//
// Core type definitions for the memory puzzle engine.
// Defines:
//   - Shape/Color/Icon: the value hidden behind every card.
//   - Cell: a grid coordinate.

package game

import "fmt"

// Shape is the outline drawn for an icon.
type Shape string

const (
	Donut   Shape = "donut"
	Square  Shape = "square"
	Diamond Shape = "diamond"
	Lines   Shape = "lines"
	Oval    Shape = "oval"
)

// AllShapes lists every shape the renderers know how to draw.
var AllShapes = []Shape{Donut, Square, Diamond, Lines, Oval}

// Color is an RGB triple. Comparable, so icons compare by value.
type Color struct {
	R, G, B uint8
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Icon is the (shape, color) pair behind a card.
type Icon struct {
	Shape Shape
	Color Color
}

// Cell addresses one grid position; X is the column, Y the row.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }
