package eval

import (
	"fmt"

	"curveval/domain/core"
)

// ScoreType selects how per-fold score differences are presented.
type ScoreType string

const (
	// ScoreAbsolute presents mean(baseline - test).
	ScoreAbsolute ScoreType = "AbsoluteDiff"
	// ScoreRelative presents mean((baseline - test) / |baseline|).
	ScoreRelative ScoreType = "RelativeDiff"
)

// ScoreConfig holds the presentation parameters for comparison tables.
// It is a pure value object; aggregators key their memoized tables on its
// hash, so any change produces a cache miss instead of a stale table.
type ScoreConfig struct {
	Type ScoreType `json:"type"`
	// Multiplier scales scores and interval bounds for display.
	Multiplier float64 `json:"multiplier"`
	// ScoreLevel is the rank-test level for GOOD/BAD decisions.
	ScoreLevel float64 `json:"score_level"`
	// IntervalLevel is the level for the bootstrap confidence interval.
	IntervalLevel float64 `json:"interval_level"`
	// OverfitIterationsInfo toggles the overfit-iteration diagnostics
	// columns.
	OverfitIterationsInfo bool `json:"overfit_iterations_info"`
}

// DefaultScoreConfig mirrors the defaults used for human-friendly result
// presentation: relative differences scaled by 1000, 1% decision level,
// 5% interval level, with overfit diagnostics on.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		Type:                  ScoreRelative,
		Multiplier:            1000,
		ScoreLevel:            0.01,
		IntervalLevel:         0.05,
		OverfitIterationsInfo: true,
	}
}

// Hash returns the memoization key component for this configuration.
func (c ScoreConfig) Hash() core.ConfigHash {
	payload := fmt.Sprintf("%s|%g|%g|%g|%t",
		c.Type, c.Multiplier, c.ScoreLevel, c.IntervalLevel, c.OverfitIterationsInfo)
	return core.NewConfigHash([]byte(payload))
}
