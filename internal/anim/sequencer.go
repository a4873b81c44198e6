// internal/anim/sequencer.go
//
// Frame-stepped animations for the memory puzzle.
// Responsibilities:
//   - Reveal/cover a set of boxes by sliding a cover rectangle one step per frame.
//   - Play the start-of-round preview in random batches.
//   - Flash the background when a round is won.
//
// Every frame is presented and followed by a clock tick, so the same code runs
// in real time on a terminal and instantly under a simulated clock.

package anim

import (
	"math/rand"
	"time"

	"github.com/SyrovatkaA/memory-puzzle-game/internal/game"
	"github.com/SyrovatkaA/memory-puzzle-game/internal/ports"
)

// Config holds the animation constants.
type Config struct {
	BoxSize     int // full cover width in pixels
	RevealSpeed int // cover width change per frame
	FPS         int
	BatchSize   int // boxes previewed together at round start

	FlashCycles int
	FlashDelay  time.Duration

	Background      game.Color
	FlashBackground game.Color
}

// Sequencer implements game.Animator on top of a renderer and a clock.
type Sequencer struct {
	r   ports.Renderer
	clk ports.Clock
	cfg Config
	rng *rand.Rand
}

var _ game.Animator = (*Sequencer)(nil)

// New panics on a non-positive step or batch size; both would never terminate.
func New(r ports.Renderer, clk ports.Clock, cfg Config, rng *rand.Rand) *Sequencer {
	if cfg.RevealSpeed <= 0 || cfg.BatchSize <= 0 {
		panic("anim: reveal speed and batch size must be positive")
	}
	return &Sequencer{r: r, clk: clk, cfg: cfg, rng: rng}
}

// Reveal slides the cover off cells, from full width down to <= 0.
func (s *Sequencer) Reveal(b *game.Board, cells []game.Cell) {
	for coverage := s.cfg.BoxSize; ; coverage -= s.cfg.RevealSpeed {
		s.frame(b, cells, coverage)
		if coverage <= 0 {
			return
		}
	}
}

// Cover slides the cover back over cells, from 0 up to >= full width.
func (s *Sequencer) Cover(b *game.Board, cells []game.Cell) {
	for coverage := 0; ; coverage += s.cfg.RevealSpeed {
		s.frame(b, cells, coverage)
		if coverage >= s.cfg.BoxSize {
			return
		}
	}
}

func (s *Sequencer) frame(b *game.Board, cells []game.Cell, coverage int) {
	for _, c := range cells {
		s.r.DrawIcon(b.At(c), c)
		if coverage > 0 {
			s.r.DrawCoverRect(c, coverage)
		}
	}
	s.r.Present()
	s.clk.Tick(s.cfg.FPS)
}

// StartRound previews the whole board a batch at a time and leaves it covered.
func (s *Sequencer) StartRound(b *game.Board) {
	cells := b.Cells()
	s.rng.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })

	s.r.Clear(s.cfg.Background)
	s.DrawBoard(b, game.NewRevealState(b.Width, b.Height, false))
	for _, batch := range chunk(cells, s.cfg.BatchSize) {
		s.Reveal(b, batch)
		s.Cover(b, batch)
	}
}

// WinFlash alternates the background, redrawing the revealed board each time.
func (s *Sequencer) WinFlash(b *game.Board) {
	shown := game.NewRevealState(b.Width, b.Height, true)
	c1, c2 := s.cfg.FlashBackground, s.cfg.Background
	for i := 0; i < s.cfg.FlashCycles; i++ {
		c1, c2 = c2, c1
		s.r.Clear(c1)
		s.DrawBoard(b, shown)
		s.r.Present()
		s.clk.Wait(s.cfg.FlashDelay)
	}
}

// ShowCovered presents one frame of b with every box covered.
func (s *Sequencer) ShowCovered(b *game.Board) {
	s.r.Clear(s.cfg.Background)
	s.DrawBoard(b, game.NewRevealState(b.Width, b.Height, false))
	s.r.Present()
}

func (s *Sequencer) Pause(d time.Duration) { s.clk.Wait(d) }

// DrawBoard draws every box covered or face-up. It does not present.
func (s *Sequencer) DrawBoard(b *game.Board, rs *game.RevealState) {
	for _, c := range b.Cells() {
		if rs.Get(c) {
			s.r.DrawIcon(b.At(c), c)
		} else {
			s.r.DrawCoveredBox(c)
		}
	}
}

// chunk splits cells into groups of at most size.
func chunk(cells []game.Cell, size int) [][]game.Cell {
	var out [][]game.Cell
	for i := 0; i < len(cells); i += size {
		end := i + size
		if end > len(cells) {
			end = len(cells)
		}
		out = append(out, cells[i:end])
	}
	return out
}
