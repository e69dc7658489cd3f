package loop

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// AutopilotOptions tunes the computer player.
type AutopilotOptions struct {
	Skill    float64 // Aim accuracy (0-1, 1 = perfect)
	Rounds   int     // Quit once this many rounds have ended; 0 restarts forever
	MaxTicks int     // Quit after this many ticks in total; 0 means no limit
	Seed     int64   // Seed for aim errors
}

// Autopilot is a Source that plays the game by itself.
// It flaps whenever the bird sinks below its aim point in the next gap and
// restarts after each crash until the round limit is reached.
type Autopilot struct {
	game  *flappy.Game
	opts  AutopilotOptions
	rng   *rand.Rand
	ticks int

	lastX float64 // X of the pipe aimed at during the previous tick
	aim   float64 // Aim error for the current pipe
}

// NewAutopilot creates an autopilot for game.
func NewAutopilot(game *flappy.Game, opts AutopilotOptions) *Autopilot {
	opts.Skill = core.Clamp(opts.Skill, 0, 1)
	return &Autopilot{
		game:  game,
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		lastX: math.Inf(-1),
	}
}

// Drain returns the autopilot's decision for the coming tick.
func (a *Autopilot) Drain() []core.Event {
	a.ticks++
	if a.opts.MaxTicks > 0 && a.ticks > a.opts.MaxTicks {
		return []core.Event{core.EventQuit}
	}

	if a.game.Phase() == flappy.PhaseGameOver {
		if a.opts.Rounds > 0 && a.game.State().Round >= a.opts.Rounds {
			return []core.Event{core.EventQuit}
		}
		return []core.Event{core.EventRestart}
	}

	if a.shouldJump() {
		return []core.Event{core.EventJump}
	}
	return nil
}

// shouldJump targets the first pipe whose trailing edge is still ahead of
// the bird, or the newest pipe once all of them are behind it.
func (a *Autopilot) shouldJump() bool {
	bird := a.game.Bird()
	pipes := a.game.Pipes()
	if len(pipes) == 0 {
		return false
	}

	target := pipes[len(pipes)-1]
	for _, p := range pipes {
		if p.Top.Right() >= bird.Bounds().Left() {
			target = p
			break
		}
	}

	// Pipes only move left, so a larger X means a new target
	if target.X > a.lastX {
		spread := (1 - a.opts.Skill) * a.game.Settings().Pipes.GapSize
		a.aim = (a.rng.Float64()*2 - 1) * spread
	}
	a.lastX = target.X

	return bird.Velocity >= 0 && bird.Y > target.Gap().Center().Y+a.aim+10
}
