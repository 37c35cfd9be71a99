package core

// RuntimeConfig carries the platform parameters for one run: screen size,
// frame rate and the RNG seed for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in cells
	ScreenH int   // Screen height in cells
	FPS     int   // Frames (simulation ticks) per second
	Seed    int64 // RNG seed; 0 means derive from the clock at the platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
		Seed:    0,
	}
}
