package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is a pair of top and bottom segments with a vertical gap between them.
// X is the left edge of both segments.
type Pipe struct {
	X          float64
	GapCenterY float64
	Top        core.Box // Segment above the gap; its bottom edge is the gap top
	Bottom     core.Box // Segment below the gap; its top edge is the gap bottom
	Passed     bool     // Whether the bird has cleared this pipe (for scoring)
}

// NewPipe builds a pipe at x with its gap centered on gapCenterY.
func NewPipe(x, gapCenterY float64, cfg config.PipeSettings) Pipe {
	half := cfg.GapSize / 2
	return Pipe{
		X:          x,
		GapCenterY: gapCenterY,
		Top:        core.NewBox(x, gapCenterY-half-cfg.Height, cfg.Width, cfg.Height),
		Bottom:     core.NewBox(x, gapCenterY+half, cfg.Width, cfg.Height),
	}
}

// RandomGapCenter picks a whole-unit gap center uniformly in
// [marginTop, screenHeight-marginBottom], clamped so the gap stays on screen.
// Fractional margins round inward.
func RandomGapCenter(rng *rand.Rand, cfg config.Settings) float64 {
	lo := int(math.Ceil(cfg.Pipes.GapMarginTop))
	hi := int(math.Floor(cfg.Screen.Height - cfg.Pipes.GapMarginBottom))

	var center float64
	if hi < lo {
		center = cfg.Screen.Height / 2 // Margins overlap, keep the gap mid-screen
	} else {
		center = float64(lo + rng.Intn(hi-lo+1))
	}

	half := cfg.Pipes.GapSize / 2
	return core.Clamp(center, half, cfg.Screen.Height-half)
}

// Advance moves the pipe horizontally by dx. Vertical placement is unchanged.
func (p *Pipe) Advance(dx float64) {
	p.X += dx
	p.Top = p.Top.MoveTo(p.X)
	p.Bottom = p.Bottom.MoveTo(p.X)
}

// IsOffscreen reports whether the left edge has moved past threshold.
func (p Pipe) IsOffscreen(threshold float64) bool {
	return p.X < threshold
}

// PassedBy reports whether the trailing edge is left of avatarX.
func (p Pipe) PassedBy(avatarX float64) bool {
	return p.Top.Right() < avatarX
}

// Gap returns the open area between the two segments.
func (p Pipe) Gap() core.Box {
	return core.NewBox(p.X, p.GapTop(), p.Top.W, p.GapBottom()-p.GapTop())
}

// GapTop returns the y-coordinate of the top of the gap.
func (p Pipe) GapTop() float64 { return p.Top.Bottom() }

// GapBottom returns the y-coordinate of the bottom of the gap.
func (p Pipe) GapBottom() float64 { return p.Bottom.Top() }
