package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains configuration passed to a play session at start.
// The platform layer fills it from flags and the terminal size.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay (0 = resolve from clock)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// ResolveSeed returns the configured seed, or a clock-based one when unset.
// It is called once per session; the result is never re-derived mid-session.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewRand creates the single random source used by a session.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
