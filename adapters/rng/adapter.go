package rng

import (
	"hash/fnv"
	"math/rand"
)

// Adapter implements ports.RNG with streams derived from the operation
// name and a caller-provided seed. The same (name, seed) pair always
// yields the same stream.
type Adapter struct{}

// New creates a new RNG adapter
func New() *Adapter { return &Adapter{} }

// Stream returns a deterministic generator for the named operation.
func (a *Adapter) Stream(name string, seed int64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return rand.New(rand.NewSource(seed ^ int64(h.Sum64())))
}
