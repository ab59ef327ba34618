package ports

import "math/rand"

// RNG provides seeded random number generation for deterministic
// resampling operations
type RNG interface {
	// Stream creates a deterministic random number generator for a named
	// operation. The same (name, seed) pair always yields an identical
	// stream, so bootstrap intervals are reproducible across runs.
	Stream(name string, seed int64) *rand.Rand
}
