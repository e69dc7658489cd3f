package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Field handles spawning, movement, and recycling of pipes.
// Pipes are kept in creation order; the field is never empty.
type Field struct {
	pipes []Pipe
	next  []Pipe // Scratch buffer for the next-state slice
	rng   *rand.Rand
	cfg   config.Settings
}

// NewField creates a field with cfg.Pipes.Count pipes. The first spawns at
// the spawn point, the rest trail behind it at even spacing.
func NewField(cfg config.Settings, rng *rand.Rand) *Field {
	count := max(cfg.Pipes.Count, 1)
	f := &Field{
		pipes: make([]Pipe, 0, count),
		next:  make([]Pipe, 0, count),
		rng:   rng,
		cfg:   cfg,
	}
	spawnX := cfg.SpawnX()
	for i := range count {
		f.pipes = append(f.pipes, f.spawn(spawnX+float64(i)*cfg.Spacing()))
	}
	return f
}

// Tick advances every pipe and recycles the ones that left the screen.
// Returns the number of pipes the bird passed this tick (for scoring).
func (f *Field) Tick(avatarX float64) int {
	passed := 0

	for i := range f.pipes {
		f.pipes[i].Advance(f.cfg.Physics.ScrollVelocity)
		if !f.pipes[i].Passed && f.pipes[i].PassedBy(avatarX) {
			f.pipes[i].Passed = true
			passed++
		}
	}

	// Filter, then append one replacement per removed pipe
	next := f.next[:0]
	for _, p := range f.pipes {
		if !p.IsOffscreen(f.cfg.Pipes.OffscreenX) {
			next = append(next, p)
		}
	}
	for removed := len(f.pipes) - len(next); removed > 0; removed-- {
		next = append(next, f.spawn(f.replacementX(next)))
	}

	f.pipes, f.next = next, f.pipes
	return passed
}

// replacementX keeps spacing constant: a new pipe trails the newest one, or
// starts at the spawn point when nothing else is active.
func (f *Field) replacementX(active []Pipe) float64 {
	if len(active) == 0 {
		return f.cfg.SpawnX()
	}
	return active[len(active)-1].X + f.cfg.Spacing()
}

// spawn creates a pipe at x with a random gap.
func (f *Field) spawn(x float64) Pipe {
	return NewPipe(x, RandomGapCenter(f.rng, f.cfg), f.cfg.Pipes)
}

// Pipes returns the active pipes in creation order.
// The slice is only valid until the next Tick.
func (f *Field) Pipes() []Pipe {
	return f.pipes
}

// Len returns the number of active pipes.
func (f *Field) Len() int {
	return len(f.pipes)
}
