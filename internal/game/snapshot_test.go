package game

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotHidesCoveredIcons(t *testing.T) {
	ctl, _ := newTestController(t, 2, 2, []Shape{Donut, Square}, []Color{red})
	a, _, _ := pairs(ctl.Round().Board)
	require.Equal(t, FirstRevealed, ctl.Click(a))

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	snap := ctl.Snapshot(now)

	assert.Equal(t, ctl.Round().ID, snap.RoundID)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, "one_selected", snap.State)
	assert.Equal(t, 2, snap.Width)
	assert.Equal(t, 2, snap.Height)
	assert.Equal(t, time.UTC, snap.UpdatedAt.Location())
	require.Len(t, snap.Cells, 2)

	icon := ctl.Round().Board.At(a)
	assert.Equal(t, CellView{Revealed: true, Shape: string(icon.Shape), Color: "#ff0000"}, snap.Cells[a.Y][a.X])

	hidden := 0
	for _, row := range snap.Cells {
		for _, cv := range row {
			if !cv.Revealed {
				hidden++
				assert.Equal(t, CellView{}, cv)
			}
		}
	}
	assert.Equal(t, 3, hidden)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `{"revealed":false}`)
}

func TestSnapshotIsACopy(t *testing.T) {
	ctl, _ := newTestController(t, 2, 2, []Shape{Donut, Square}, []Color{red})
	snap := ctl.Snapshot(time.Now())

	a, _, _ := pairs(ctl.Round().Board)
	ctl.Click(a)
	assert.False(t, snap.Cells[a.Y][a.X].Revealed)
}
