package core

// RuntimeConfig is passed to the game at initialization. Screen dimensions
// come from the terminal, tick rate and seed from flags or config.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // Initial RNG seed (0 = derive from entropy)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-visible summary of the game, returned from
// every Step.
type GameState struct {
	Flying bool // True while the play screen is active
	Passes int  // Screen crossings completed this flight
	Ticks  int  // Ticks flown this flight
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
