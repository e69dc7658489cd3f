package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// steer keeps the bird inside the gap of the next pipe it has not cleared,
// or the newest pipe once every pipe is behind it.
func steer(g *Game) core.Event {
	b := g.Bird()
	pipes := g.Pipes()
	target := pipes[len(pipes)-1]
	for _, p := range pipes {
		if p.Top.Right() >= b.Bounds().Left() {
			target = p
			break
		}
	}
	if b.Velocity >= 0 && b.Y > target.GapCenterY+10 {
		return core.EventJump
	}
	return core.EventNone
}

func TestGravityIntegration(t *testing.T) {
	g := New(config.Default(), 1)

	if g.bird.Y != 300 || g.bird.Velocity != 0 {
		t.Fatalf("spawn = (y %v, v %v), expected (300, 0)", g.bird.Y, g.bird.Velocity)
	}

	g.Tick()

	if g.bird.Velocity != 0.25 {
		t.Errorf("velocity after 1 tick = %v, expected 0.25", g.bird.Velocity)
	}
	if g.bird.Y != 300.25 {
		t.Errorf("y after 1 tick = %v, expected 300.25", g.bird.Y)
	}

	// Velocity is updated before position on every tick
	for i := 0; i < 20; i++ {
		v, y := g.bird.Velocity, g.bird.Y
		g.Tick()
		if g.bird.Velocity != v+0.25 || g.bird.Y != y+(v+0.25) {
			t.Fatalf("tick %d: (y %v, v %v) -> (y %v, v %v)", i, y, v, g.bird.Y, g.bird.Velocity)
		}
	}
}

func TestJumpIsAbsolute(t *testing.T) {
	b := NewBird(config.Default())

	b.Jump(-4)
	b.Jump(-4)
	if b.Velocity != -4 {
		t.Errorf("two jumps gave velocity %v, expected -4", b.Velocity)
	}

	b.Tick(0.25)
	b.Jump(-4)
	if b.Velocity != -4 {
		t.Errorf("jump while moving gave velocity %v, expected -4", b.Velocity)
	}
	if b.X != 50 {
		t.Errorf("bird x changed to %v", b.X)
	}
}

func TestGameJumpPhysics(t *testing.T) {
	g := New(config.Default(), 1)
	initialY := g.bird.Y

	g.Handle(core.EventJump)
	g.Tick()

	// Jump then gravity: -4 + 0.25
	if g.bird.Velocity != -3.75 {
		t.Errorf("velocity = %v, expected -3.75", g.bird.Velocity)
	}
	if g.bird.Y != initialY-3.75 {
		t.Errorf("y = %v, expected %v", g.bird.Y, initialY-3.75)
	}
}

func TestCollisionEndsRound(t *testing.T) {
	g := New(config.Default(), 7)
	g.score = 3
	g.bird.Y = 5 // Top edge above the screen

	g.Tick()

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected GameOver", g.Phase())
	}
	if !g.State().GameOver {
		t.Error("State() should report game over")
	}

	// Physics is frozen and jump is inert
	frozen := g.bird
	pipeX := g.Pipes()[0].X
	g.Handle(core.EventJump)
	g.Tick()
	g.Tick()
	if g.bird != frozen {
		t.Errorf("bird changed after game over: %+v -> %+v", frozen, g.bird)
	}
	if g.Pipes()[0].X != pipeX {
		t.Errorf("pipes moved after game over")
	}
	if g.Score() != 3 {
		t.Errorf("score changed after game over: %d", g.Score())
	}
}

func TestRestartStartsFreshRound(t *testing.T) {
	g := New(config.Default(), 7)

	// Restart is inert while playing
	g.Handle(core.EventRestart)
	if g.State().Round != 1 {
		t.Fatalf("restart while playing should be ignored, round = %d", g.State().Round)
	}

	for i := 0; i < 40; i++ {
		g.Tick()
	}
	g.score = 5
	g.bird.Y = 700
	g.Tick()
	if g.Phase() != PhaseGameOver {
		t.Fatal("bird below the floor should end the round")
	}

	if quit := g.Handle(core.EventRestart); quit {
		t.Fatal("restart should not quit")
	}

	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, expected Playing", g.Phase())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
	if g.bird.Y != 300 || g.bird.Velocity != 0 || g.bird.X != 50 {
		t.Errorf("bird not freshly placed: %+v", g.bird)
	}
	if len(g.Pipes()) != 1 || g.Pipes()[0].X != 500 {
		t.Errorf("expected exactly one pipe at 500, got %+v", g.Pipes())
	}
	if s := g.State(); s.Ticks != 0 || s.Round != 2 {
		t.Errorf("state after restart = %+v", s)
	}
}

func TestQuitInEveryPhase(t *testing.T) {
	g := New(config.Default(), 1)
	if !g.Handle(core.EventQuit) {
		t.Error("quit while playing should terminate")
	}

	g.phase = PhaseGameOver
	if !g.Handle(core.EventQuit) {
		t.Error("quit after game over should terminate")
	}
}

func TestScoringOncePerPipe(t *testing.T) {
	g := New(config.Default(), 99)

	passes := 0
	last := 0
	for i := 0; i < 1000 && g.Phase() == PhasePlaying; i++ {
		g.Handle(steer(g))
		g.Tick()
		if g.Score() < last || g.Score() > last+1 {
			t.Fatalf("score jumped from %d to %d", last, g.Score())
		}
		if g.Score() == last+1 {
			passes++
		}
		last = g.Score()
	}

	if g.Phase() != PhasePlaying {
		t.Fatalf("steered bird crashed at tick %d", g.State().Ticks)
	}
	// Passes happen at ticks 252, 553 and 854
	if g.Score() != 3 || passes != 3 {
		t.Errorf("score = %d after %d passes, expected 3", g.Score(), passes)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs, including a restart, give identical runs
	run := func() (core.GameState, []float64) {
		g := New(config.Default(), 12345)
		var gaps []float64
		for i := 0; i < 1500; i++ {
			if g.Phase() == PhaseGameOver {
				g.Handle(core.EventRestart)
			}
			if i%15 == 0 {
				g.Handle(core.EventJump)
			}
			g.Tick()
			gaps = append(gaps, g.Pipes()[0].GapCenterY)
		}
		return g.State(), gaps
	}

	s1, gaps1 := run()
	s2, gaps2 := run()

	if s1 != s2 {
		t.Errorf("determinism failed: %+v vs %+v", s1, s2)
	}
	for i := range gaps1 {
		if gaps1[i] != gaps2[i] {
			t.Fatalf("gap sequence diverged at tick %d: %v vs %v", i, gaps1[i], gaps2[i])
		}
	}
	if s1.Round < 2 {
		t.Errorf("expected the run to include a restart, round = %d", s1.Round)
	}
}

func TestRestartContinuesRNGStream(t *testing.T) {
	g := New(config.Default(), 3)
	first := g.Pipes()[0].GapCenterY

	g.phase = PhaseGameOver
	g.Handle(core.EventRestart)

	// The second round draws the next value of the same stream
	rng := rand.New(rand.NewSource(3))
	cfg := config.Default()
	if want := RandomGapCenter(rng, cfg); want != first {
		t.Fatalf("first gap = %v, expected %v", first, want)
	}
	if want := RandomGapCenter(rng, cfg); g.Pipes()[0].GapCenterY != want {
		t.Errorf("gap after restart = %v, expected %v", g.Pipes()[0].GapCenterY, want)
	}
}

type drawCall struct {
	sprite core.SpriteID
	text   string
	at     core.Vec
}

type recordingRenderer struct {
	calls    []drawCall
	presents int
}

func (r *recordingRenderer) DrawSprite(s core.Sprite, at core.Vec) {
	r.calls = append(r.calls, drawCall{sprite: s.ID, at: at})
}

func (r *recordingRenderer) DrawText(t core.Text) {
	r.calls = append(r.calls, drawCall{sprite: -1, text: t.Value, at: t.At})
}

func (r *recordingRenderer) Present() { r.presents++ }

func TestDrawOrder(t *testing.T) {
	g := New(config.Default(), 1)

	r := &recordingRenderer{}
	g.Draw(r)

	want := []core.SpriteID{core.SpriteBackground, core.SpriteBird, core.SpritePipeTop, core.SpritePipeBottom, -1}
	if len(r.calls) != len(want) {
		t.Fatalf("got %d draw calls, expected %d: %+v", len(r.calls), len(want), r.calls)
	}
	for i, id := range want {
		if r.calls[i].sprite != id {
			t.Errorf("call %d = %v, expected %v", i, r.calls[i].sprite, id)
		}
	}
	if r.calls[4].text != "Score: 0" {
		t.Errorf("score text = %q", r.calls[4].text)
	}
	if r.calls[1].at != (core.Vec{X: 33, Y: 288}) {
		t.Errorf("bird drawn at %v, expected its top-left corner (33, 288)", r.calls[1].at)
	}
	if r.presents != 0 {
		t.Error("Draw should leave presenting to the caller")
	}

	// Overlay after game over
	g.phase = PhaseGameOver
	r = &recordingRenderer{}
	g.Draw(r)
	n := len(r.calls)
	if n != 7 || r.calls[n-2].text != GameOverText || r.calls[n-1].text != RestartText {
		t.Errorf("game over overlay missing: %+v", r.calls)
	}
}
