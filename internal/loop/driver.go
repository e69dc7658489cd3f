// Package loop drives a flappy game one fixed step at a time.
// Interactive hosts call Tick from their own update callback; headless hosts
// call Run, which owns the whole input, update, render, wait cycle.
package loop

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Source supplies the input events collected since the previous tick.
type Source interface {
	Drain() []core.Event
}

// Driver owns one game and the renderer its frames go to.
type Driver struct {
	game     *flappy.Game
	renderer core.Renderer
	logger   *log.Logger
	rounds   []core.GameState // Finished rounds, oldest first
}

// New creates a driver. A nil renderer discards frames and a nil logger
// discards log output.
func New(game *flappy.Game, renderer core.Renderer, logger *log.Logger) *Driver {
	if renderer == nil {
		renderer = core.NopRenderer{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:     game,
		renderer: renderer,
		logger:   logger,
	}
}

// Game returns the driven game.
func (d *Driver) Game() *flappy.Game { return d.game }

// Rounds returns the final state of every round that ended in a collision.
func (d *Driver) Rounds() []core.GameState { return d.rounds }

// Update routes events in order and then advances the game by one step.
// Returns true as soon as an event asks to quit; the step is skipped then.
func (d *Driver) Update(events []core.Event) bool {
	for _, ev := range events {
		before := d.game.Phase()
		if d.game.Handle(ev) {
			d.logger.Debug("quit", "round", d.game.State().Round, "score", d.game.Score())
			return true
		}
		if after := d.game.Phase(); after != before {
			d.logger.Debug("phase change", "from", before, "to", after, "event", ev, "round", d.game.State().Round)
		}
	}

	before := d.game.Phase()
	d.game.Tick()
	if after := d.game.Phase(); after != before {
		state := d.game.State()
		d.rounds = append(d.rounds, state)
		d.logger.Debug("phase change", "from", before, "to", after,
			"round", state.Round, "score", state.Score, "ticks", state.Ticks)
	}
	return false
}

// Render draws the current frame to r and presents it.
func (d *Driver) Render(r core.Renderer) {
	d.game.Draw(r)
	r.Present()
}

// Tick runs one full frame: Update, then Render to the driver's renderer.
// Returns true if the game should terminate; nothing is rendered then.
func (d *Driver) Tick(events []core.Event) bool {
	if d.Update(events) {
		return true
	}
	d.Render(d.renderer)
	return false
}

// Run blocks, ticking the game at the configured rate until a quit event
// arrives (returns nil) or ctx is done (returns ctx.Err()).
func (d *Driver) Run(ctx context.Context, src Source, clock Clock) error {
	fps := d.game.Settings().Screen.FPS
	d.logger.Info("loop started", "fps", fps, "round", d.game.State().Round)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("loop canceled", "error", ctx.Err())
			return ctx.Err()
		default:
		}

		if d.Tick(src.Drain()) {
			d.logger.Info("loop finished", "rounds", len(d.rounds))
			return nil
		}

		clock.WaitForNextTick(fps)
	}
}
