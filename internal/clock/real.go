// Package clock provides the wall-clock and simulated implementations of
// ports.Clock.
package clock

import "time"

// Real sleeps on the wall clock.
type Real struct {
	start time.Time
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewReal starts measuring from now.
func NewReal() *Real {
	now := time.Now()
	return &Real{start: now, last: now, now: time.Now, sleep: time.Sleep}
}

func (r *Real) Wait(d time.Duration) { r.sleep(d) }

// Tick caps the frame rate the way a game clock does: it only sleeps for what
// is left of the frame budget.
func (r *Real) Tick(fps int) {
	if fps > 0 {
		if left := r.last.Add(time.Second / time.Duration(fps)).Sub(r.now()); left > 0 {
			r.sleep(left)
		}
	}
	r.last = r.now()
}

func (r *Real) Elapsed() time.Duration { return r.now().Sub(r.start) }
