package plot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curveval/domain/core"
	"curveval/domain/eval"
	"curveval/domain/metric"
	"curveval/ports"
)

func makeCurve(n int) metric.LearningCurve {
	curve := make(metric.LearningCurve, n)
	for i := range curve {
		curve[i] = 1.0 / float64(i+1)
	}
	return curve
}

func TestRender_DefaultOffsetSkipsFirstTenth(t *testing.T) {
	fig, err := NewRenderer().Render("title", []ports.CurveTrace{
		{Label: "fold", EvalStep: 10, Offset: -1, Curve: makeCurve(50)},
	})
	require.NoError(t, err)

	figure := fig.(*Figure)
	require.Len(t, figure.Data, 1)
	trace := figure.Data[0]
	// 50 points, default offset 5, x in iterations.
	assert.Len(t, trace.X, 45)
	assert.Equal(t, 50, trace.X[0])
	assert.Equal(t, 490, trace.X[len(trace.X)-1])
	assert.Equal(t, "lines", trace.Mode)
	assert.Equal(t, "fold", trace.Name)
}

func TestRender_ExplicitOffset(t *testing.T) {
	fig, err := NewRenderer().Render("title", []ports.CurveTrace{
		{Label: "fold", EvalStep: 2, Offset: 3, Curve: makeCurve(8)},
	})
	require.NoError(t, err)

	trace := fig.(*Figure).Data[0]
	assert.Equal(t, []int{6, 8, 10, 12, 14}, trace.X)
	assert.Equal(t, 1.0/4.0, trace.Y[0])
}

func TestRender_OffsetBeyondCurve(t *testing.T) {
	_, err := NewRenderer().Render("title", []ports.CurveTrace{
		{Label: "fold", EvalStep: 1, Offset: 8, Curve: makeCurve(8)},
	})
	assert.ErrorIs(t, err, core.ErrInputValidation)

	_, err = NewRenderer().Render("title", []ports.CurveTrace{
		{Label: "fold", EvalStep: 1, Offset: 0, Curve: metric.LearningCurve{}},
	})
	assert.ErrorIs(t, err, core.ErrInputValidation)
}

func TestCaseLearningCurves(t *testing.T) {
	desc := metric.NewDescription("Logloss", false)
	result := eval.NewCaseEvaluationResult("baseline", desc, 10)
	require.NoError(t, result.RecordFold("baseline", "0", makeCurve(20)))
	require.NoError(t, result.RecordFold("baseline", "1", makeCurve(20)))

	fig, err := CaseLearningCurves(result, 0)
	require.NoError(t, err)

	assert.Equal(t, "Learning curves for case baseline", fig.Layout.Title)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "Fold #0", fig.Data[0].Name)
	assert.Equal(t, "Fold #1", fig.Data[1].Name)
	assert.True(t, fig.Layout.ShowLegend)
}

func TestFoldLearningCurves(t *testing.T) {
	desc := metric.NewDescription("Logloss", false)

	var caseResults []*eval.CaseEvaluationResult
	for _, name := range []core.ExecutionCase{"baseline", "test"} {
		result := eval.NewCaseEvaluationResult(name, desc, 10)
		require.NoError(t, result.RecordFold(name, "0", makeCurve(20)))
		require.NoError(t, result.RecordFold(name, "1", makeCurve(20)))
		caseResults = append(caseResults, result)
	}
	m, err := eval.NewMetricEvaluationResult(caseResults)
	require.NoError(t, err)

	fig, err := FoldLearningCurves(m, "1", 0)
	require.NoError(t, err)

	assert.Equal(t, "Learning curves for metric Logloss on fold #1", fig.Layout.Title)
	require.Len(t, fig.Data, 2)
	assert.Equal(t, "Case baseline", fig.Data[0].Name)
	assert.Equal(t, "Case test", fig.Data[1].Name)

	_, err = FoldLearningCurves(m, "missing", 0)
	assert.ErrorIs(t, err, core.ErrUnknownFold)
}

func TestFigure_JSONShape(t *testing.T) {
	fig, err := NewRenderer().Render("t", []ports.CurveTrace{
		{Label: "fold", EvalStep: 1, Offset: 0, Curve: makeCurve(3)},
	})
	require.NoError(t, err)

	raw, err := json.Marshal(fig)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"hovermode":"closest"`)
	assert.Contains(t, string(raw), `"mode":"lines"`)
}
