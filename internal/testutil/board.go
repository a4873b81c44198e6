package testutil

import (
	"math/rand"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
)

var (
	Red   = game.Color{R: 255}
	Green = game.Color{G: 255}
	Navy  = game.Color{R: 60, G: 60, B: 100}
	Gray  = game.Color{R: 100, G: 100, B: 100}
)

// Generator returns a seeded generator that must accept its configuration.
func Generator(width, height int, shapes []game.Shape, colors []game.Color, seed int64) *game.Generator {
	g, err := game.NewGenerator(width, height, shapes, colors, rand.New(rand.NewSource(seed)))
	if err != nil {
		panic(err)
	}
	return g
}

// FindPair returns two distinct cells with equal icons and a cell whose icon
// differs from the first, scanning column-major.
// The game package's own tests keep a copy, since importing testutil from
// there would be an import cycle.
func FindPair(b *game.Board) (a, same, other game.Cell) {
	cells := b.Cells()
	a = cells[0]
	for _, c := range cells[1:] {
		if b.At(c) == b.At(a) {
			same = c
		} else {
			other = c
		}
	}
	return a, same, other
}
