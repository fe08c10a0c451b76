package core

// RuntimeConfig is the host-environment configuration handed to the game at
// startup: terminal dimensions, tick scheduling, and the RNG seed used for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Scheduling ticks per second
	Seed     int64 // RNG seed; 0 means seed from wall clock in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
