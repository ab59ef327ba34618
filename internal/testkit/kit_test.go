package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curveval/domain/core"
	"curveval/domain/metric"
)

func TestSyntheticCurve_OptimumPlacement(t *testing.T) {
	kit := NewKit(1)

	curve := kit.SyntheticCurve(100, false, 60, 0.3, 0.5, 0)
	_, pos := curve.Best(false)
	assert.Equal(t, 60, pos)
	score, _ := curve.Best(false)
	assert.InDelta(t, 0.3, score, 1e-12)

	peak := kit.SyntheticCurve(100, true, 40, 0.3, 0.5, 0)
	_, pos = peak.Best(true)
	assert.Equal(t, 40, pos)
	score, _ = peak.Best(true)
	assert.InDelta(t, 0.7, score, 1e-12)
	for _, v := range peak {
		assert.Less(t, v, 1.0)
	}
}

func TestSyntheticCurve_Deterministic(t *testing.T) {
	a := NewKit(7).SyntheticCurve(50, false, 25, 0.2, 0.4, 0.01)
	b := NewKit(7).SyntheticCurve(50, false, 25, 0.2, 0.4, 0.01)
	assert.Equal(t, a, b)

	c := NewKit(8).SyntheticCurve(50, false, 25, 0.2, 0.4, 0.01)
	assert.NotEqual(t, a, c)
}

func TestCaseResult_BuildsAllFolds(t *testing.T) {
	kit := NewKit(3)
	folds := []core.FoldID{"0", "1", "2"}

	result, err := kit.CaseResult("baseline", metric.NewDescription("Logloss", false), 50, folds, 100, 60, 0.3)
	require.NoError(t, err)

	assert.Len(t, result.FoldIDs(), 3)
	for _, fold := range folds {
		curve, err := result.FoldCurve(fold)
		require.NoError(t, err)
		assert.Equal(t, 100, curve.Len())
	}
}

func TestDemoResults_Shape(t *testing.T) {
	catalog, err := NewKit(42).DemoResults()
	require.NoError(t, err)

	assert.Equal(t, []string{"Logloss", "AUC"}, catalog.MetricNames())

	for _, name := range catalog.MetricNames() {
		result, err := catalog.MetricResult(name)
		require.NoError(t, err)
		assert.Equal(t, []core.ExecutionCase{"baseline", "faster-lr", "deeper-trees"}, result.Cases())
		assert.Equal(t, core.ExecutionCase("baseline"), result.BaselineCase())
		assert.Len(t, result.FoldIDs(), 5)
		assert.Equal(t, 50, result.EvalStep())
	}
}

func TestDemoResults_ComparisonsComputable(t *testing.T) {
	catalog, err := NewKit(42).DemoResults()
	require.NoError(t, err)

	for _, name := range catalog.MetricNames() {
		result, err := catalog.MetricResult(name)
		require.NoError(t, err)
		table, err := result.BaselineComparison()
		require.NoError(t, err, name)
		assert.Len(t, table.Rows, 2, name)
	}
}

func TestJitter_StaysWithinAmplitude(t *testing.T) {
	kit := NewKit(5)
	for i := 0; i < 100; i++ {
		v := kit.Jitter(1.0, 0.1)
		assert.GreaterOrEqual(t, v, 0.9)
		assert.Less(t, v, 1.1)
	}
}
