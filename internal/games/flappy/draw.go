package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HUD text.
const (
	GameOverText = "Game Over"
	RestartText  = "Press SPACE to Restart"
)

// Draw paints the current frame: background, bird, pipes, score and, after
// game over, the overlay. The caller presents the frame.
func (g *Game) Draw(r core.Renderer) {
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height

	r.DrawSprite(core.Sprite{ID: core.SpriteBackground, W: w, H: h}, core.Vec{})

	bird := g.bird.Bounds()
	r.DrawSprite(core.Sprite{ID: core.SpriteBird, W: bird.W, H: bird.H}, bird.Min())

	for _, p := range g.field.Pipes() {
		r.DrawSprite(core.Sprite{ID: core.SpritePipeTop, W: p.Top.W, H: p.Top.H}, p.Top.Min())
		r.DrawSprite(core.Sprite{ID: core.SpritePipeBottom, W: p.Bottom.W, H: p.Bottom.H}, p.Bottom.Min())
	}

	r.DrawText(core.Text{
		Value: fmt.Sprintf("Score: %d", g.score),
		At:    core.Vec{X: 10, Y: 10},
		Color: core.ColorDefault,
		Size:  core.FontSizeMedium,
	})

	if g.phase == PhaseGameOver {
		r.DrawText(core.Text{
			Value:    GameOverText,
			At:       core.Vec{X: w / 2, Y: h / 2},
			Color:    core.ColorRed,
			Size:     core.FontSizeLarge,
			Centered: true,
			Framed:   true,
		})
		r.DrawText(core.Text{
			Value:    RestartText,
			At:       core.Vec{X: w / 2, Y: h/2 + core.FontSizeLarge},
			Color:    core.ColorDefault,
			Size:     core.FontSizeSmall,
			Centered: true,
		})
	}
}
