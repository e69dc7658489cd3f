package core

// RuntimeConfig contains host parameters passed to frontends at start-up.
// The tick rate lives in the game settings.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is a snapshot of the round returned to hosts after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Ticks    int  // Physics ticks since the round started
	Round    int  // 1-based round number within the session
}
