package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_DeterministicPerNameAndSeed(t *testing.T) {
	a := New()

	r1 := a.Stream("bootstrap/Logloss", 42)
	r2 := a.Stream("bootstrap/Logloss", 42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, r1.Int63(), r2.Int63())
	}
}

func TestStream_NamesYieldIndependentStreams(t *testing.T) {
	a := New()

	r1 := a.Stream("bootstrap/Logloss", 42)
	r2 := a.Stream("bootstrap/AUC", 42)
	assert.NotEqual(t, r1.Int63(), r2.Int63())
}

func TestStream_SeedChangesStream(t *testing.T) {
	a := New()

	r1 := a.Stream("bootstrap/Logloss", 42)
	r2 := a.Stream("bootstrap/Logloss", 43)
	assert.NotEqual(t, r1.Int63(), r2.Int63())
}
