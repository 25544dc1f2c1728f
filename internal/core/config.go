package core

// RuntimeConfig contains configuration passed to a mission at creation.
// The seed makes world generation and every combat roll reproducible.
type RuntimeConfig struct {
	Seed       int64  // RNG seed for deterministic gameplay (0 = time based)
	Difficulty string // Difficulty preset name: easy, normal, hard, fixed
	Debug      bool   // Verify engine invariants after every command
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:       0, // 0 means use current time
		Difficulty: "normal",
	}
}
