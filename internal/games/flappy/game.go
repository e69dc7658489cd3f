// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
// The package is pure game logic: it consumes core.Events and draws through a
// core.Renderer, and never touches a terminal, a window, or a clock.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Title is the display name of the game.
const Title = "Flappy Bird"

// Phase is the round lifecycle state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// transition keys the state machine table.
type transition struct {
	phase Phase
	event core.Event
}

// transitions lists every (phase, event) pair that does something.
// Pairs missing from the table, such as a jump after game over, are inert.
// Quit is handled before the lookup because it applies in every phase.
var transitions = map[transition]func(*Game){
	{PhasePlaying, core.EventJump}:     (*Game).jump,
	{PhaseGameOver, core.EventRestart}: (*Game).Reset,
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg   config.Settings
	rng   *rand.Rand
	bird  Bird
	field *Field
	phase Phase
	score int
	ticks int // Ticks since the round started
	round int
}

// New creates a game and starts its first round. The RNG stream is seeded
// once per game and continues across restarts.
func New(cfg config.Settings, seed int64) *Game {
	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g
}

// Reset discards the bird and the pipes and starts a fresh round.
func (g *Game) Reset() {
	g.bird = NewBird(g.cfg)
	g.field = NewField(g.cfg, g.rng)
	g.phase = PhasePlaying
	g.score = 0
	g.ticks = 0
	g.round++
}

// Handle routes one input event through the transition table.
// Returns true if the event asks to terminate the game.
func (g *Game) Handle(ev core.Event) (quit bool) {
	if ev == core.EventQuit {
		return true
	}
	if action, ok := transitions[transition{g.phase, ev}]; ok {
		action(g)
	}
	return false
}

func (g *Game) jump() {
	g.bird.Jump(g.cfg.Physics.JumpImpulse)
}

// Tick advances the simulation by one fixed step. It is a no-op after game over.
func (g *Game) Tick() {
	if g.phase != PhasePlaying {
		return
	}
	g.ticks++

	g.bird.Tick(g.cfg.Physics.Gravity)
	g.score += g.field.Tick(g.bird.X)

	if Collides(g.bird.Bounds(), g.field.Pipes(), g.cfg.Screen.Height) {
		g.phase = PhaseGameOver
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the number of pipes passed this round.
func (g *Game) Score() int { return g.score }

// Bird returns a copy of the avatar.
func (g *Game) Bird() Bird { return g.bird }

// Pipes returns the active pipes. The slice is only valid until the next Tick.
func (g *Game) Pipes() []Pipe { return g.field.Pipes() }

// Settings returns the settings the game was built with.
func (g *Game) Settings() config.Settings { return g.cfg }

// State returns a snapshot for hosts.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Ticks:    g.ticks,
		Round:    g.round,
	}
}
