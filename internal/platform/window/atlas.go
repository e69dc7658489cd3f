// Package window runs the game in a desktop window with Ebitengine.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	skyColor      = color.RGBA{R: 112, G: 197, B: 206, A: 255}
	groundColor   = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	pipeColor     = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	pipeLipColor  = color.RGBA{R: 84, G: 140, B: 34, A: 255}
	birdColor     = color.RGBA{R: 250, G: 210, B: 55, A: 255}
	beakColor     = color.RGBA{R: 240, G: 120, B: 40, A: 255}
	eyeColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	pipeLipHeight = float32(16)
)

// palette maps core.Color to window colors. ColorDefault is ink on the sky.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0, G: 0, B: 0, A: 255},
	core.ColorRed:          {R: 220, G: 40, B: 40, A: 255},
	core.ColorGreen:        pipeColor,
	core.ColorYellow:       birdColor,
	core.ColorBlue:         {R: 40, G: 80, B: 200, A: 255},
	core.ColorCyan:         skyColor,
	core.ColorWhite:        {R: 255, G: 255, B: 255, A: 255},
	core.ColorBrightGreen:  {R: 160, G: 230, B: 90, A: 255},
	core.ColorBrightYellow: {R: 255, G: 240, B: 120, A: 255},
	core.ColorOrange:       beakColor,
	core.ColorGray:         {R: 128, G: 128, B: 128, A: 255},
}

// Atlas holds one procedurally drawn image per sprite, at logical size.
type Atlas struct {
	images map[core.SpriteID]*ebiten.Image
}

// NewAtlas draws every sprite for the given settings.
func NewAtlas(cfg config.Settings) *Atlas {
	return &Atlas{images: map[core.SpriteID]*ebiten.Image{
		core.SpriteBackground: drawBackground(cfg.Screen.Width, cfg.Screen.Height),
		core.SpriteBird:       drawBird(cfg.Bird.Width, cfg.Bird.Height),
		core.SpritePipeTop:    drawPipe(cfg.Pipes.Width, cfg.Pipes.Height, false),
		core.SpritePipeBottom: drawPipe(cfg.Pipes.Width, cfg.Pipes.Height, true),
	}}
}

// Image returns the sprite image, or nil for an unknown id.
func (a *Atlas) Image(id core.SpriteID) *ebiten.Image {
	return a.images[id]
}

func newImage(w, h float64) *ebiten.Image {
	return ebiten.NewImage(max(int(w), 1), max(int(h), 1))
}

func drawBackground(w, h float64) *ebiten.Image {
	img := newImage(w, h)
	img.Fill(skyColor)
	ground := float32(h) * 0.04
	vector.DrawFilledRect(img, 0, float32(h)-ground, float32(w), ground, groundColor, false)
	return img
}

func drawBird(w, h float64) *ebiten.Image {
	img := newImage(w, h)
	fw, fh := float32(w), float32(h)
	r := fh / 2

	vector.DrawFilledCircle(img, fw/2, r, r, birdColor, true)
	vector.StrokeCircle(img, fw/2, r, r-1, 1.5, outlineColor, true)
	vector.DrawFilledRect(img, fw-fw/4, r-fh/8, fw/4, fh/4, beakColor, false)
	vector.DrawFilledCircle(img, fw/2+r/2, r-r/3, r/4, eyeColor, true)
	vector.DrawFilledCircle(img, fw/2+r/2+1, r-r/3, r/8, outlineColor, true)
	return img
}

// drawPipe draws a pipe segment with its lip on the side facing the gap:
// the bottom edge for a top segment, the top edge for a bottom segment.
func drawPipe(w, h float64, lipOnTop bool) *ebiten.Image {
	img := newImage(w, h)
	fw, fh := float32(w), float32(h)

	vector.DrawFilledRect(img, 2, 0, fw-4, fh, pipeColor, false)
	lipY := fh - pipeLipHeight
	if lipOnTop {
		lipY = 0
	}
	vector.DrawFilledRect(img, 0, lipY, fw, pipeLipHeight, pipeLipColor, false)
	vector.StrokeRect(img, 0, lipY, fw, pipeLipHeight, 1, outlineColor, false)
	return img
}
