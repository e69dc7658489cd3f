package window

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

// keyBinding maps a key to the events it emits, in routing order.
type keyBinding struct {
	key    ebiten.Key
	events []core.Event
}

// bindings mirrors the terminal key map. Space emits both Jump and Restart;
// the game ignores whichever one does not apply to the current phase.
var bindings = []keyBinding{
	{ebiten.KeyEscape, []core.Event{core.EventQuit}},
	{ebiten.KeyQ, []core.Event{core.EventQuit}},
	{ebiten.KeySpace, []core.Event{core.EventJump, core.EventRestart}},
	{ebiten.KeyArrowUp, []core.Event{core.EventJump}},
	{ebiten.KeyW, []core.Event{core.EventJump}},
	{ebiten.KeyR, []core.Event{core.EventRestart}},
	{ebiten.KeyEnter, []core.Event{core.EventRestart}},
}

// Game adapts a loop.Driver to ebiten.Game.
// Ebitengine calls Update at the configured TPS and Draw once per frame.
type Game struct {
	driver   *loop.Driver
	renderer *Renderer
	queue    *core.EventQueue
	width    int
	height   int
}

// NewGame wraps game for Ebitengine.
func NewGame(game *flappy.Game, logger *log.Logger) *Game {
	settings := game.Settings()
	renderer := NewRenderer(NewAtlas(settings))
	return &Game{
		driver:   loop.New(game, renderer, logger),
		renderer: renderer,
		queue:    core.NewEventQueue(),
		width:    int(settings.Screen.Width),
		height:   int(settings.Screen.Height),
	}
}

// Update polls input and advances the game by one tick.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(core.EventQuit)
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.queue.Push(b.events...)
		}
	}

	if g.driver.Update(g.queue.Drain()) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	g.driver.Render(g.renderer)
}

// Layout fixes the logical screen size; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window scaled by scale and plays until the player quits or
// closes the window.
func Run(game *flappy.Game, logger *log.Logger, scale float64) error {
	settings := game.Settings()
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(settings.Screen.Width*scale), int(settings.Screen.Height*scale))
	ebiten.SetWindowTitle(flappy.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(settings.Screen.FPS)

	logger.Info("opening window", "width", settings.Screen.Width, "height", settings.Screen.Height, "scale", scale)
	if err := ebiten.RunGame(NewGame(game, logger)); err != nil {
		return err
	}

	state := game.State()
	logger.Info("window closed", "round", state.Round, "score", state.Score)
	return nil
}
