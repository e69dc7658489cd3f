package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collides reports whether the bird touches the top or bottom of the screen
// or overlaps any pipe segment.
func Collides(bird core.Box, pipes []Pipe, screenHeight float64) bool {
	if bird.Top() <= 0 || bird.Bottom() >= screenHeight {
		return true
	}
	for _, p := range pipes {
		if bird.Intersects(p.Top) || bird.Intersects(p.Bottom) {
			return true
		}
	}
	return false
}
