package stats

import (
	"math/rand"
	"sort"

	mstats "github.com/montanaflynn/stats"
)

// DefaultBootstrapTries is the number of resamples drawn when callers have
// no reason to pick another value.
const DefaultBootstrapTries = 999

// BootstrapMeanInterval estimates a percentile-bootstrap confidence
// interval for the mean of samples. It draws tries resamples of the same
// size with replacement, sorts the resample means and returns the values
// at positions floor(tries*level/2) and floor(tries*(1-level/2)).
//
// An all-zero (or empty) sample short-circuits to (0, 0) without any
// resampling. The interval is a plain percentile bootstrap, not
// bias-corrected.
func BootstrapMeanInterval(rng *rand.Rand, samples []float64, level float64, tries int) (left, right float64) {
	allZero := true
	for _, v := range samples {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return 0, 0
	}

	n := len(samples)
	means := make([]float64, tries)
	resample := make([]float64, n)
	for i := 0; i < tries; i++ {
		for j := range resample {
			resample[j] = samples[rng.Intn(n)]
		}
		m, _ := mstats.Mean(resample)
		means[i] = m
	}
	sort.Float64s(means)

	left = means[int(float64(tries)*(level/2))]
	right = means[int(float64(tries)*(1-level/2))]
	return left, right
}
