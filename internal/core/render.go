package core

// SpriteID identifies one of the images the game draws.
type SpriteID int

const (
	SpriteBackground SpriteID = iota
	SpriteBird
	SpritePipeTop
	SpritePipeBottom
)

// Sprite is an image reference with its logical size.
// Renderers own the pixels; the game only knows ids and sizes.
type Sprite struct {
	ID   SpriteID
	W, H float64
}

// Font sizes used by the game HUD.
const (
	FontSizeSmall  = 24
	FontSizeMedium = 36
	FontSizeLarge  = 48
)

// Text is a line of HUD text.
// At is the top-left corner, or the center point when Centered is set.
// Framed text gets an outline in its own color.
type Text struct {
	Value    string
	At       Vec
	Color    Color
	Size     int
	Centered bool
	Framed   bool
}

// Renderer draws one frame in logical game units.
// The game calls DrawSprite/DrawText in painter's order and Present once per frame.
type Renderer interface {
	DrawSprite(s Sprite, at Vec)
	DrawText(t Text)
	Present()
}

// NopRenderer discards everything. Used by headless hosts.
type NopRenderer struct{}

func (NopRenderer) DrawSprite(Sprite, Vec) {}
func (NopRenderer) DrawText(Text)          {}
func (NopRenderer) Present()               {}
