package game

import "fmt"

// RevealState tracks which cells are face-up, indexed [x][y].
type RevealState struct {
	Width  int
	Height int
	shown  [][]bool
}

// NewRevealState returns a width x height grid filled with initial.
func NewRevealState(width, height int, initial bool) *RevealState {
	shown := make([][]bool, width)
	for x := range shown {
		shown[x] = make([]bool, height)
		for y := range shown[x] {
			shown[x][y] = initial
		}
	}
	return &RevealState{Width: width, Height: height, shown: shown}
}

func (r *RevealState) Get(c Cell) bool {
	r.mustContain(c)
	return r.shown[c.X][c.Y]
}

func (r *RevealState) Set(c Cell, v bool) {
	r.mustContain(c)
	r.shown[c.X][c.Y] = v
}

// AllTrue reports the win condition.
func (r *RevealState) AllTrue() bool {
	for _, col := range r.shown {
		for _, v := range col {
			if !v {
				return false
			}
		}
	}
	return true
}

// Count returns how many cells are face-up.
func (r *RevealState) Count() int {
	n := 0
	for _, col := range r.shown {
		for _, v := range col {
			if v {
				n++
			}
		}
	}
	return n
}

func (r *RevealState) mustContain(c Cell) {
	if c.X < 0 || c.X >= r.Width || c.Y < 0 || c.Y >= r.Height {
		panic(fmt.Sprintf("game: cell %s outside %dx%d reveal state", c, r.Width, r.Height))
	}
}
