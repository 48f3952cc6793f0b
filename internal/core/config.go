package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickPeriod returns the simulated duration of one tick.
func (c RuntimeConfig) TickPeriod() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 50
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	Lives    int     // Remaining lives
	Phase    string  // Ready, Playing, Paused or GameOver
	Speed    float64 // Current speed multiplier
	GameOver bool    // Whether the round has ended
	Paused   bool    // Whether the round is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// PhaseChanged is true when the tick moved the session to a new phase.
	PhaseChanged bool
}
