package game

import "time"

// CellView is the public face of one card. Hidden icons are never included.
type CellView struct {
	Revealed bool   `json:"revealed"`
	Shape    string `json:"shape,omitempty"`
	Color    string `json:"color,omitempty"`
}

// Snapshot is a read-only copy of the controller suitable for other goroutines.
type Snapshot struct {
	RoundID   string       `json:"roundId"`
	Round     int          `json:"round"`
	State     string       `json:"state"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Cells     [][]CellView `json:"cells"` // [row][column]
	Stats     Stats        `json:"stats"`
	RoundsWon int          `json:"roundsWon"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Snapshot copies the current round.
func (c *Controller) Snapshot(now time.Time) Snapshot {
	r := c.round
	rows := make([][]CellView, r.Board.Height)
	for y := range rows {
		rows[y] = make([]CellView, r.Board.Width)
		for x := range rows[y] {
			cell := Cell{X: x, Y: y}
			if !r.Revealed.Get(cell) {
				continue
			}
			icon := r.Board.At(cell)
			rows[y][x] = CellView{Revealed: true, Shape: string(icon.Shape), Color: icon.Color.Hex()}
		}
	}
	return Snapshot{
		RoundID:   r.ID,
		Round:     r.Number,
		State:     c.state.String(),
		Width:     r.Board.Width,
		Height:    r.Board.Height,
		Cells:     rows,
		Stats:     c.stats,
		RoundsWon: c.roundsWon,
		UpdatedAt: now.UTC(),
	}
}
