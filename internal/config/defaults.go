package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// Default returns the built-in settings, matching defaults/flappy.yaml.
func Default() Settings {
	return Settings{
		Screen: ScreenSettings{
			Width:  400,
			Height: 600,
			FPS:    60,
		},
		Physics: PhysicsSettings{
			Gravity:        0.25,
			JumpImpulse:    -4,
			ScrollVelocity: -2,
		},
		Bird: BirdSettings{
			X:      50,
			Width:  34,
			Height: 24,
		},
		Pipes: PipeSettings{
			Width:           52,
			Height:          400,
			GapSize:         150,
			GapMarginTop:    150,
			GapMarginBottom: 150,
			SpawnOffset:     100,
			OffscreenX:      -100,
			Count:           1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
