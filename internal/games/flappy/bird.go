package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled avatar. X and Y are the sprite center.
// X is fixed for the whole round.
type Bird struct {
	X, Y     float64
	Velocity float64
	W, H     float64
}

// NewBird places a bird at its fixed column, centered vertically, at rest.
func NewBird(cfg config.Settings) Bird {
	return Bird{
		X: cfg.Bird.X,
		Y: cfg.Screen.Height / 2,
		W: cfg.Bird.Width,
		H: cfg.Bird.Height,
	}
}

// Jump sets the vertical velocity to the impulse. Repeated jumps do not stack.
func (b *Bird) Jump(impulse float64) {
	b.Velocity = impulse
}

// Tick integrates one step of gravity: velocity first, then position.
func (b *Bird) Tick(gravity float64) {
	b.Velocity += gravity
	b.Y += b.Velocity
}

// Bounds returns the collision box derived from the current position.
func (b Bird) Bounds() core.Box {
	return core.BoxAround(b.X, b.Y, b.W, b.H)
}
