package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Glyphs used to paint sprites on terminal cells.
const (
	glyphSolid = '█'
	glyphSky   = ' '
)

// Canvas is a core.Renderer that maps logical game units onto terminal cells.
// Frames are drawn into a back buffer; Present swaps it with the front buffer,
// which is what the terminal shows.
type Canvas struct {
	front, back *core.Screen

	logicalW, logicalH float64
}

// NewCanvas creates a canvas of cols x rows cells showing a logical
// playfield of logicalW x logicalH units.
func NewCanvas(cols, rows int, logicalW, logicalH float64) *Canvas {
	return &Canvas{
		front:    core.NewScreen(cols, rows),
		back:     core.NewScreen(cols, rows),
		logicalW: logicalW,
		logicalH: logicalH,
	}
}

// Resize changes the cell size while keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	c.front.Resize(cols, rows)
	c.back.Resize(cols, rows)
}

// toCells scales logical coordinates to fractional cell coordinates.
func (c *Canvas) toCells(x, y float64) (float64, float64) {
	return x * float64(c.back.Width()) / c.logicalW, y * float64(c.back.Height()) / c.logicalH
}

// LogicalToCell converts logical coordinates to the cell containing them.
func (c *Canvas) LogicalToCell(x, y float64) (col, row int) {
	cx, cy := c.toCells(x, y)
	return int(math.Floor(cx)), int(math.Floor(cy))
}

// cellRect covers every cell the logical box touches, and at least one cell.
func (c *Canvas) cellRect(at core.Vec, w, h float64) (col, row, cols, rows int) {
	col, row = c.LogicalToCell(at.X, at.Y)
	right, bottom := c.toCells(at.X+w, at.Y+h)
	return col, row, max(int(math.Ceil(right))-col, 1), max(int(math.Ceil(bottom))-row, 1)
}

// DrawSprite paints the sprite's cell footprint into the back buffer.
func (c *Canvas) DrawSprite(s core.Sprite, at core.Vec) {
	col, row, cols, rows := c.cellRect(at, s.W, s.H)

	switch s.ID {
	case core.SpriteBackground:
		c.back.FillRect(col, row, cols, rows, glyphSky, core.ColorDefault)
	case core.SpriteBird:
		c.back.FillRect(col, row, cols, rows, glyphSolid, core.ColorBrightYellow)
		c.back.SetCell(col+cols-1, row, core.Cell{Rune: '▀', Color: core.ColorOrange}) // Beak
	case core.SpritePipeTop:
		c.back.FillRect(col, row, cols, rows, glyphSolid, core.ColorGreen)
		c.back.FillRect(col, row+rows-1, cols, 1, glyphSolid, core.ColorBrightGreen) // Lip facing the gap
	case core.SpritePipeBottom:
		c.back.FillRect(col, row, cols, rows, glyphSolid, core.ColorGreen)
		c.back.FillRect(col, row, cols, 1, glyphSolid, core.ColorBrightGreen)
	}
}

// DrawText writes a line of text into the back buffer. Terminal cells have a
// single font size, so Size is ignored.
func (c *Canvas) DrawText(t core.Text) {
	col, row := c.LogicalToCell(t.At.X, t.At.Y)
	if t.Centered {
		col = c.back.DrawTextCentered(col, row, t.Value, t.Color)
	} else {
		c.back.DrawText(col, row, t.Value, t.Color)
	}

	if t.Framed {
		// One cell of padding left and right, one row above and below
		c.back.DrawBox(col-2, row-1, utf8.RuneCountInString(t.Value)+4, 3, t.Color)
	}
}

// Present makes the back buffer visible and clears the new back buffer.
func (c *Canvas) Present() {
	c.front, c.back = c.back, c.front
	c.back.Clear()
}

// Frame returns the last presented frame.
func (c *Canvas) Frame() *core.Screen {
	return c.front
}
