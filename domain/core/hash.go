package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// ConfigHash identifies one score-presentation configuration. Comparison
// tables are memoized per (baseline case, config hash); a config change
// produces a different hash and therefore a cache miss instead of a stale
// table.
type ConfigHash Hash

func NewConfigHash(data []byte) ConfigHash { return ConfigHash(NewHash(data)) }

func (h ConfigHash) String() string { return Hash(h).String() }
