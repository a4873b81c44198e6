package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutClassicWindow(t *testing.T) {
	l := NewLayout(640, 480, 10, 7, 40, 10)
	assert.Equal(t, 70, l.XMargin)
	assert.Equal(t, 65, l.YMargin)

	left, top := l.LeftTop(Cell{0, 0})
	assert.Equal(t, [2]int{70, 65}, [2]int{left, top})
	left, top = l.LeftTop(Cell{9, 6})
	assert.Equal(t, [2]int{520, 365}, [2]int{left, top})
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(640, 480, 10, 7, 40, 10)

	tests := []struct {
		name   string
		x, y   int
		want   Cell
		wantOK bool
	}{
		{name: "top-left pixel", x: 70, y: 65, want: Cell{0, 0}, wantOK: true},
		{name: "bottom-right pixel of first box", x: 109, y: 104, want: Cell{0, 0}, wantOK: true},
		{name: "horizontal gap", x: 110, y: 80},
		{name: "vertical gap", x: 80, y: 105},
		{name: "second column", x: 120, y: 65, want: Cell{1, 0}, wantOK: true},
		{name: "last box", x: 559, y: 404, want: Cell{9, 6}, wantOK: true},
		{name: "left margin", x: 69, y: 80},
		{name: "top margin", x: 80, y: 0},
		{name: "past the board", x: 570, y: 80},
		{name: "below the board", x: 80, y: 415},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.CellAt(tc.x, tc.y)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l := NewLayout(640, 480, 10, 7, 40, 10)
	for x := 0; x < 10; x++ {
		for y := 0; y < 7; y++ {
			left, top := l.LeftTop(Cell{x, y})
			got, ok := l.CellAt(left+20, top+20)
			assert.True(t, ok)
			assert.Equal(t, Cell{x, y}, got)
		}
	}
}
