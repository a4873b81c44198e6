package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = Color{R: 255}
	green = Color{G: 255}
	blue  = Color{B: 255}
)

func TestCheckDimensions(t *testing.T) {
	tests := []struct {
		name           string
		w, h           int
		shapes, colors int
		want           error
	}{
		{name: "classic", w: 10, h: 7, shapes: 5, colors: 7},
		{name: "exactly enough icons", w: 5, h: 2, shapes: 5, colors: 1},
		{name: "odd cells", w: 3, h: 3, shapes: 5, colors: 7, want: ErrOddCells},
		{name: "too few icons", w: 4, h: 4, shapes: 3, colors: 2, want: ErrTooFewIcons},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckDimensions(tc.w, tc.h, tc.shapes, tc.colors)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	t.Run("non-positive", func(t *testing.T) {
		assert.Error(t, CheckDimensions(0, 4, 5, 7))
		assert.Error(t, CheckDimensions(4, -2, 5, 7))
	})
}

func TestGenerate(t *testing.T) {
	shapes := AllShapes
	colors := []Color{red, green, blue}

	t.Run("every icon appears exactly twice", func(t *testing.T) {
		b, err := Generate(6, 5, shapes, colors, rand.New(rand.NewSource(7)))
		require.NoError(t, err)
		require.Equal(t, 6, b.Width)
		require.Equal(t, 5, b.Height)

		counts := map[Icon]int{}
		for _, c := range b.Cells() {
			counts[b.At(c)]++
		}
		assert.Len(t, counts, 15)
		for icon, n := range counts {
			assert.Equal(t, 2, n, "icon %v", icon)
		}
	})

	t.Run("same seed same board", func(t *testing.T) {
		a, err := Generate(4, 4, shapes, colors, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		b, err := Generate(4, 4, shapes, colors, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		if diff := cmp.Diff(a, b, cmp.AllowUnexported(Board{})); diff != "" {
			t.Errorf("boards differ (-a +b):\n%s", diff)
		}
	})

	t.Run("rejects repeated shapes or colors", func(t *testing.T) {
		_, err := Generate(2, 2, []Shape{Donut, Donut}, []Color{red}, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrDuplicateIcon)
		_, err = Generate(2, 2, []Shape{Donut, Oval}, []Color{red, red}, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrDuplicateIcon)
	})

	t.Run("rejects bad dimensions", func(t *testing.T) {
		_, err := Generate(3, 3, shapes, colors, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrOddCells)
		_, err = Generate(10, 10, shapes, colors, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrTooFewIcons)
	})
}

func TestBoardCellsAreColumnMajor(t *testing.T) {
	b, err := Generate(2, 2, []Shape{Donut, Oval}, []Color{red}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	want := []Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	assert.Equal(t, want, b.Cells())
}

func TestBoardAt(t *testing.T) {
	b, err := Generate(2, 1, []Shape{Donut}, []Color{red}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.Equal(t, Icon{Shape: Donut, Color: red}, b.At(Cell{1, 0}))
	assert.True(t, b.Contains(Cell{1, 0}))
	assert.False(t, b.Contains(Cell{2, 0}))
	assert.Panics(t, func() { b.At(Cell{2, 0}) })
	assert.Panics(t, func() { b.At(Cell{0, -1}) })
}

func TestGenerator(t *testing.T) {
	_, err := NewGenerator(3, 3, AllShapes, []Color{red}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrOddCells)

	_, err = NewGenerator(2, 2, []Shape{Donut, Donut}, []Color{red}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrDuplicateIcon)

	g, err := NewGenerator(4, 4, AllShapes, []Color{red, green}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	first, second := g.Board(), g.Board()
	assert.NotSame(t, first, second)
	assert.Equal(t, 16, len(second.Cells()))
	assert.NotNil(t, g.Rand())
}
