// internal/game/board.go
//
// Board data model and the pairing generator.
// Responsibilities:
//   - Validate board dimensions against the available icon combinations.
//   - Pick W*H/2 distinct icons uniformly, pair them and shuffle placement.
//   - Deal the deck column-major into an immutable grid.

package game

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrOddCells means the board cannot be covered by pairs.
	ErrOddCells = errors.New("board needs an even number of cells")
	// ErrTooFewIcons means shapes x colors cannot supply W*H/2 distinct icons.
	ErrTooFewIcons = errors.New("board is too big for the number of shapes/colors defined")
	// ErrDuplicateIcon means a shape or color is listed twice, so the
	// combinations would not be distinct.
	ErrDuplicateIcon = errors.New("shapes and colors must not repeat")
)

// Board is a width x height grid of icons, indexed [x][y].
type Board struct {
	Width  int
	Height int
	icons  [][]Icon
}

// At returns the icon at c. Panics when c is off the board.
func (b *Board) At(c Cell) Icon {
	b.mustContain(c)
	return b.icons[c.X][c.Y]
}

// Contains reports whether c lies on the board.
func (b *Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Cells lists every coordinate, column-major.
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, b.Width*b.Height)
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			out = append(out, Cell{X: x, Y: y})
		}
	}
	return out
}

func (b *Board) mustContain(c Cell) {
	if !b.Contains(c) {
		panic(fmt.Sprintf("game: cell %s outside %dx%d board", c, b.Width, b.Height))
	}
}

// CheckDimensions validates a board configuration given the number of
// distinct shapes and colors.
func CheckDimensions(width, height, shapes, colors int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("board %dx%d: dimensions must be positive", width, height)
	}
	if (width*height)%2 != 0 {
		return fmt.Errorf("board %dx%d: %w", width, height, ErrOddCells)
	}
	if shapes*colors*2 < width*height {
		return fmt.Errorf("board %dx%d with %d shapes and %d colors: %w",
			width, height, shapes, colors, ErrTooFewIcons)
	}
	return nil
}

// checkDistinct rejects repeated shapes or colors.
func checkDistinct(shapes []Shape, colors []Color) error {
	seenShapes := make(map[Shape]struct{}, len(shapes))
	for _, sh := range shapes {
		if _, dup := seenShapes[sh]; dup {
			return fmt.Errorf("shape %q: %w", sh, ErrDuplicateIcon)
		}
		seenShapes[sh] = struct{}{}
	}
	seenColors := make(map[Color]struct{}, len(colors))
	for _, c := range colors {
		if _, dup := seenColors[c]; dup {
			return fmt.Errorf("color %s: %w", c.Hex(), ErrDuplicateIcon)
		}
		seenColors[c] = struct{}{}
	}
	return nil
}

// Generate builds a freshly shuffled board.
//
// The first shuffle decides which icons take part, the second decides where the
// paired deck lands.
func Generate(width, height int, shapes []Shape, colors []Color, rng *rand.Rand) (*Board, error) {
	if err := checkDistinct(shapes, colors); err != nil {
		return nil, err
	}
	if err := CheckDimensions(width, height, len(shapes), len(colors)); err != nil {
		return nil, err
	}

	icons := make([]Icon, 0, len(shapes)*len(colors))
	for _, c := range colors {
		for _, s := range shapes {
			icons = append(icons, Icon{Shape: s, Color: c})
		}
	}
	rng.Shuffle(len(icons), func(i, j int) { icons[i], icons[j] = icons[j], icons[i] })

	pairs := width * height / 2
	deck := make([]Icon, 0, pairs*2)
	deck = append(deck, icons[:pairs]...)
	deck = append(deck, icons[:pairs]...)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	grid := make([][]Icon, width)
	next := 0
	for x := 0; x < width; x++ {
		grid[x] = make([]Icon, height)
		for y := 0; y < height; y++ {
			grid[x][y] = deck[next]
			next++
		}
	}
	return &Board{Width: width, Height: height, icons: grid}, nil
}

// Generator produces boards for one validated configuration.
type Generator struct {
	width, height int
	shapes        []Shape
	colors        []Color
	rng           *rand.Rand
}

// NewGenerator validates the configuration once, at startup.
func NewGenerator(width, height int, shapes []Shape, colors []Color, rng *rand.Rand) (*Generator, error) {
	if err := checkDistinct(shapes, colors); err != nil {
		return nil, err
	}
	if err := CheckDimensions(width, height, len(shapes), len(colors)); err != nil {
		return nil, err
	}
	return &Generator{
		width:  width,
		height: height,
		shapes: append([]Shape(nil), shapes...),
		colors: append([]Color(nil), colors...),
		rng:    rng,
	}, nil
}

// Board returns a new shuffled board.
func (g *Generator) Board() *Board {
	b, err := Generate(g.width, g.height, g.shapes, g.colors, g.rng)
	if err != nil {
		// dimensions were checked in NewGenerator
		panic(err)
	}
	return b
}

// Rand exposes the generator's source so animations share one seed.
func (g *Generator) Rand() *rand.Rand { return g.rng }
