// Package config provides YAML-based game configuration loading and
// validation for the flappy game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a setting is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Settings contains all tunables of the game. Units are logical game units
// and ticks; frontends scale them to cells or pixels.
type Settings struct {
	Screen  ScreenSettings  `yaml:"screen"`
	Physics PhysicsSettings `yaml:"physics"`
	Bird    BirdSettings    `yaml:"bird"`
	Pipes   PipeSettings    `yaml:"pipes"`
}

// ScreenSettings defines the logical playfield and tick rate.
type ScreenSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// PhysicsSettings defines per-tick motion constants.
type PhysicsSettings struct {
	Gravity        float64 `yaml:"gravity"`         // Downward acceleration per tick
	JumpImpulse    float64 `yaml:"jump_impulse"`    // Velocity set by a jump (negative = up)
	ScrollVelocity float64 `yaml:"scroll_velocity"` // Pipe movement per tick (negative = left)
}

// BirdSettings defines the avatar sprite.
type BirdSettings struct {
	X      float64 `yaml:"x"` // Fixed horizontal center
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PipeSettings defines obstacle geometry and the spawn/recycle policy.
type PipeSettings struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"` // Height of each pipe segment sprite
	GapSize         float64 `yaml:"gap_size"`
	GapMarginTop    float64 `yaml:"gap_margin_top"`
	GapMarginBottom float64 `yaml:"gap_margin_bottom"`
	SpawnOffset     float64 `yaml:"spawn_offset"` // Spawn this far right of the screen edge
	OffscreenX      float64 `yaml:"offscreen_x"`  // Recycle once the left edge is past this
	Count           int     `yaml:"count"`        // Pipes kept on the field at once
}

// SpawnX returns the horizontal position new pipes are created at.
func (s Settings) SpawnX() float64 {
	return s.Screen.Width + s.Pipes.SpawnOffset
}

// Spacing returns the horizontal distance between consecutive pipes.
func (s Settings) Spacing() float64 {
	count := max(s.Pipes.Count, 1)
	return (s.SpawnX() - s.Pipes.OffscreenX) / float64(count)
}

// Validate checks that the settings describe a playable game.
func (s Settings) Validate() error {
	switch {
	case s.Screen.Width <= 0 || s.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive, got %vx%v", ErrInvalidConfig, s.Screen.Width, s.Screen.Height)
	case s.Screen.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, s.Screen.FPS)
	case s.Physics.ScrollVelocity >= 0:
		return fmt.Errorf("%w: scroll_velocity must be negative, got %v", ErrInvalidConfig, s.Physics.ScrollVelocity)
	case s.Bird.Width <= 0 || s.Bird.Height <= 0:
		return fmt.Errorf("%w: bird size must be positive", ErrInvalidConfig)
	case s.Bird.Height >= s.Screen.Height:
		return fmt.Errorf("%w: bird taller than screen", ErrInvalidConfig)
	case s.Pipes.Width <= 0 || s.Pipes.Height <= 0:
		return fmt.Errorf("%w: pipe size must be positive", ErrInvalidConfig)
	case s.Pipes.GapSize <= 0 || s.Pipes.GapSize >= s.Screen.Height:
		return fmt.Errorf("%w: gap_size must be in (0, %v), got %v", ErrInvalidConfig, s.Screen.Height, s.Pipes.GapSize)
	case s.Pipes.Count < 1:
		return fmt.Errorf("%w: pipe count must be at least 1, got %d", ErrInvalidConfig, s.Pipes.Count)
	case s.Pipes.OffscreenX >= s.SpawnX():
		return fmt.Errorf("%w: offscreen_x must be left of the spawn point", ErrInvalidConfig)
	}
	return nil
}
