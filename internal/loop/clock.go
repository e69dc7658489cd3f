package loop

import "time"

// Clock paces the loop between ticks.
type Clock interface {
	WaitForNextTick(fps int)
}

// Pacer sleeps until the next frame deadline. Deadlines advance by a whole
// frame each tick so sleep jitter does not accumulate; after a stall longer
// than one frame the schedule restarts from now instead of bursting.
type Pacer struct {
	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer creates a wall-clock pacer.
func NewPacer() *Pacer {
	return &Pacer{now: time.Now, sleep: time.Sleep}
}

// WaitForNextTick blocks for the remainder of the current frame.
func (p *Pacer) WaitForNextTick(fps int) {
	if fps <= 0 {
		return
	}
	frame := time.Second / time.Duration(fps)

	now := p.now()
	if p.next.IsZero() {
		p.next = now
	}
	p.next = p.next.Add(frame)

	wait := p.next.Sub(now)
	switch {
	case wait > 0:
		p.sleep(wait)
	case -wait > frame:
		p.next = now
	}
}

// Unpaced never waits. Simulations and tests run as fast as the CPU allows.
type Unpaced struct{}

func (Unpaced) WaitForNextTick(int) {}
