package core

// RuntimeConfig contains configuration passed to games at initialization.
// Screen size is what the frontend can show; games simulate in their own
// world coordinates and the canvas scales.
type RuntimeConfig struct {
	ScreenW  int // Frontend width (cells or pixels)
	ScreenH  int // Frontend height (cells or pixels)
	TickRate int // Simulation ticks per second
}

// DefaultTickRate matches a 10ms frame delay.
const DefaultTickRate = 100

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
