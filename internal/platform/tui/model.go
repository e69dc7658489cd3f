package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/loop"
)

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one game session.
// Key presses are queued and routed on the next tick, so the game only ever
// changes inside the tick handler.
type Model struct {
	driver   *loop.Driver
	queue    *core.EventQueue
	canvas   *Canvas
	keys     KeyMap
	help     help.Model
	fps      int
	quitting bool
}

// NewModel creates a model for game on a cols x rows terminal.
func NewModel(game *flappy.Game, logger *log.Logger, cols, rows int) Model {
	settings := game.Settings()
	canvas := NewCanvas(cols, max(rows-helpHeight, 1), settings.Screen.Width, settings.Screen.Height)

	h := help.New()
	h.Width = cols

	return Model{
		driver: loop.New(game, canvas, logger),
		queue:  core.NewEventQueue(),
		canvas: canvas,
		keys:   DefaultKeyMap(),
		help:   h,
		fps:    settings.Screen.FPS,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.queue.Push(m.keys.Events(msg)...)
		return m, nil

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if m.driver.Tick(m.queue.Drain()) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.fps)
	}

	return m, nil
}

// View renders the last presented frame and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.canvas.Frame()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Driver returns the loop driver behind the model.
func (m Model) Driver() *loop.Driver {
	return m.driver
}

// Run plays game in the current terminal until the player quits.
func Run(game *flappy.Game, logger *log.Logger, cols, rows int) error {
	model := NewModel(game, logger, cols, rows)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if logger == nil {
		return nil
	}
	state := game.State()
	logger.Info("session ended", "round", state.Round, "score", state.Score, "ticks", state.Ticks)
	return nil
}
