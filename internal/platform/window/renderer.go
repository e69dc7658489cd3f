package window

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Debug font cell size in pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// maxCachedTexts bounds the text image cache; the score changes every pipe.
const maxCachedTexts = 64

// Renderer is a core.Renderer drawing onto the Ebitengine screen image.
// Logical units map 1:1 to pixels; Ebitengine scales the layout to the window.
type Renderer struct {
	screen *ebiten.Image
	atlas  *Atlas
	texts  map[string]*ebiten.Image
}

// NewRenderer creates a renderer using the given sprites.
func NewRenderer(atlas *Atlas) *Renderer {
	return &Renderer{
		atlas: atlas,
		texts: make(map[string]*ebiten.Image),
	}
}

// SetTarget sets the image the next frame is drawn onto.
func (r *Renderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

func (r *Renderer) DrawSprite(s core.Sprite, at core.Vec) {
	img := r.atlas.Image(s.ID)
	if img == nil || r.screen == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	b := img.Bounds()
	op.GeoM.Scale(s.W/float64(b.Dx()), s.H/float64(b.Dy()))
	op.GeoM.Translate(at.X, at.Y)
	r.screen.DrawImage(img, op)
}

// DrawText prints t with the debug font scaled to the requested size.
func (r *Renderer) DrawText(t core.Text) {
	if r.screen == nil || t.Value == "" {
		return
	}

	img := r.textImage(t.Value)
	scale := float64(max(t.Size, glyphHeight)) / glyphHeight
	w := float64(utf8.RuneCountInString(t.Value)*glyphWidth) * scale
	h := glyphHeight * scale

	x, y := t.At.X, t.At.Y
	if t.Centered {
		x -= w / 2
		y -= h / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(palette[t.Color])
	r.screen.DrawImage(img, op)

	if t.Framed {
		pad := float32(h / 4)
		vector.StrokeRect(r.screen, float32(x)-pad, float32(y)-pad, float32(w)+2*pad, float32(h)+2*pad, 2, palette[t.Color], false)
	}
}

// Present is a no-op: Ebitengine shows the screen after Draw returns.
func (r *Renderer) Present() {}

func (r *Renderer) textImage(s string) *ebiten.Image {
	if img, ok := r.texts[s]; ok {
		return img
	}
	if len(r.texts) >= maxCachedTexts {
		for k, img := range r.texts {
			img.Deallocate()
			delete(r.texts, k)
		}
	}

	img := ebiten.NewImage(max(utf8.RuneCountInString(s)*glyphWidth, 1), glyphHeight)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	r.texts[s] = img
	return img
}
