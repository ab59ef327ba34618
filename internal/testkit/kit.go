// Package testkit generates synthetic learning curves for tests and the
// demo mode of the CLI and viewer.
package testkit

import (
	"fmt"
	"math/rand"

	"curveval/domain/core"
	"curveval/domain/eval"
	"curveval/domain/metric"
)

// Kit produces deterministic synthetic evaluation data from a seed.
type Kit struct {
	rng *rand.Rand
}

// NewKit creates a test kit seeded for reproducible data
func NewKit(seed int64) *Kit {
	return &Kit{rng: rand.New(rand.NewSource(seed))}
}

// SyntheticCurve builds a curve with a single optimum at bestAt: a valley
// for min-optimal metrics, a peak for max-optimal ones. floor is the best
// reachable score, depth the distance to the worst end, noise the jitter
// amplitude.
func (k *Kit) SyntheticCurve(length int, isMaxOptimal bool, bestAt int, floor, depth, noise float64) metric.LearningCurve {
	curve := make(metric.LearningCurve, length)
	span := float64(length)
	for i := range curve {
		distance := float64(i-bestAt) / span
		v := floor + depth*distance*distance + k.rng.Float64()*noise
		if isMaxOptimal {
			// Mirror the valley into a peak below 1.0, AUC-style.
			v = 1 - v
		}
		curve[i] = v
	}
	return curve
}

// CaseResult builds a complete per-case store: one synthetic curve per
// fold, with fold-to-fold jitter on the optimum position and score floor.
func (k *Kit) CaseResult(execCase core.ExecutionCase, desc metric.Description, evalStep int, folds []core.FoldID, curveLen, bestAt int, floor float64) (*eval.CaseEvaluationResult, error) {
	result := eval.NewCaseEvaluationResult(execCase, desc, evalStep)
	for _, fold := range folds {
		at := bestAt + k.rng.Intn(curveLen/10+1) - curveLen/20
		if at < 0 {
			at = 0
		}
		if at >= curveLen {
			at = curveLen - 1
		}
		curve := k.SyntheticCurve(curveLen, desc.IsMaxOptimal, at, floor+k.rng.Float64()*0.01, 0.5, 0.005)
		if err := result.RecordFold(execCase, fold, curve); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// DemoResults builds a small but complete session: two metrics, three
// cases, five folds. The "faster-lr" case is consistently better than the
// baseline, "deeper-trees" consistently worse.
func (k *Kit) DemoResults() (*eval.Results, error) {
	folds := make([]core.FoldID, 5)
	for i := range folds {
		folds[i] = core.FoldID(fmt.Sprintf("%d", i))
	}

	metrics := []metric.Description{
		metric.NewDescription("Logloss", false),
		metric.NewDescription("AUC", true),
	}
	cases := []struct {
		name  core.ExecutionCase
		floor float64
	}{
		{"baseline", 0.30},
		{"faster-lr", 0.27},
		{"deeper-trees", 0.34},
	}

	var metricResults []*eval.MetricEvaluationResult
	for _, desc := range metrics {
		var caseResults []*eval.CaseEvaluationResult
		for i, c := range cases {
			// Stagger the optimum so iteration diagnostics have signal.
			bestAt := 60 + 10*i
			result, err := k.CaseResult(c.name, desc, 50, folds, 100, bestAt, c.floor)
			if err != nil {
				return nil, err
			}
			caseResults = append(caseResults, result)
		}
		metricResult, err := eval.NewMetricEvaluationResult(caseResults)
		if err != nil {
			return nil, err
		}
		metricResult.SetRNG(rand.New(rand.NewSource(k.rng.Int63())))
		metricResults = append(metricResults, metricResult)
	}

	return eval.NewResults(metricResults)
}

// Jitter returns v plus uniform noise in [-amplitude, amplitude). Handy
// for building test fixtures with controlled variation.
func (k *Kit) Jitter(v, amplitude float64) float64 {
	return v + (k.rng.Float64()*2-1)*amplitude
}
