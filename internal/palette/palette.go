// internal/palette/palette.go
//
// Named colors and shapes for configuration files.
//
// Responsibilities:
//   - Resolve color names ("red", "navyblue") and #rrggbb hex strings to game.Color.
//   - Resolve shape names to game.Shape.
//   - Reject unknown names so configuration errors surface at startup.
//
// Names are case-insensitive and surrounding whitespace is ignored.

package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
)

// named is the classic game palette plus the UI colors.
var named = map[string]game.Color{
	"gray":     {R: 100, G: 100, B: 100},
	"navyblue": {R: 60, G: 60, B: 100},
	"white":    {R: 255, G: 255, B: 255},
	"red":      {R: 255, G: 0, B: 0},
	"green":    {R: 0, G: 255, B: 0},
	"blue":     {R: 0, G: 0, B: 255},
	"yellow":   {R: 255, G: 255, B: 0},
	"orange":   {R: 255, G: 128, B: 0},
	"purple":   {R: 255, G: 0, B: 255},
	"cyan":     {R: 0, G: 255, B: 255},
}

// Color resolves a color name or #rrggbb.
func Color(name string) (game.Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if c, ok := named[n]; ok {
		return c, nil
	}
	if strings.HasPrefix(n, "#") && len(n) == 7 {
		v, err := strconv.ParseUint(n[1:], 16, 32)
		if err == nil {
			return game.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
		}
	}
	return game.Color{}, fmt.Errorf("palette: unknown color %q", name)
}

// Colors resolves a list and rejects duplicates, which would make two icons equal.
func Colors(names []string) ([]game.Color, error) {
	out := make([]game.Color, 0, len(names))
	seen := make(map[game.Color]struct{}, len(names))
	for _, n := range names {
		c, err := Color(n)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("palette: duplicate color %q", n)
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// Shape resolves a shape name.
func Shape(name string) (game.Shape, error) {
	n := game.Shape(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range game.AllShapes {
		if s == n {
			return s, nil
		}
	}
	return "", fmt.Errorf("palette: unknown shape %q", name)
}

// Shapes resolves a list and rejects duplicates.
func Shapes(names []string) ([]game.Shape, error) {
	out := make([]game.Shape, 0, len(names))
	seen := make(map[game.Shape]struct{}, len(names))
	for _, n := range names {
		s, err := Shape(n)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("palette: duplicate shape %q", n)
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}
