package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Round pairs a board with its reveal state. A new round replaces both at once.
type Round struct {
	ID       string
	Number   int
	Board    *Board
	Revealed *RevealState
}

// NewRound wraps b with an all-covered reveal state.
func NewRound(number int, b *Board) *Round {
	return NewRoundFrom(number, b, NewRevealState(b.Width, b.Height, false))
}

// NewRoundFrom panics if the grids disagree on dimensions.
func NewRoundFrom(number int, b *Board, rs *RevealState) *Round {
	if b.Width != rs.Width || b.Height != rs.Height {
		panic(fmt.Sprintf("game: board %dx%d does not match reveal state %dx%d",
			b.Width, b.Height, rs.Width, rs.Height))
	}
	return &Round{ID: uuid.NewString(), Number: number, Board: b, Revealed: rs}
}
