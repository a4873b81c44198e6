package clock

import "time"

// Simulated advances instantly. Tests use it to step animations frame by frame.
type Simulated struct {
	elapsed time.Duration
	frames  int
	waits   []time.Duration
}

func NewSimulated() *Simulated { return &Simulated{} }

func (s *Simulated) Wait(d time.Duration) {
	s.elapsed += d
	s.waits = append(s.waits, d)
}

func (s *Simulated) Tick(fps int) {
	s.frames++
	if fps > 0 {
		s.elapsed += time.Second / time.Duration(fps)
	}
}

func (s *Simulated) Elapsed() time.Duration { return s.elapsed }

// Frames counts Tick calls.
func (s *Simulated) Frames() int { return s.frames }

// Waits lists every Wait duration in call order.
func (s *Simulated) Waits() []time.Duration { return append([]time.Duration(nil), s.waits...) }
