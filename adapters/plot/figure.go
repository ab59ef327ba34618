// Package plot builds plotly-compatible figure values for learning
// curves. Figures are plain data; a browser-side plotly client (or any
// other consumer) decides how to draw them.
package plot

import (
	"fmt"

	"curveval/domain/core"
	"curveval/domain/eval"
	"curveval/ports"
)

// Trace is one drawable curve.
type Trace struct {
	X    []int     `json:"x"`
	Y    []float64 `json:"y"`
	Mode string    `json:"mode"`
	Name string    `json:"name"`
}

// Axis describes one figure axis.
type Axis struct {
	Title     string `json:"title"`
	TickLen   int    `json:"ticklen"`
	ZeroLine  bool   `json:"zeroline"`
	GridWidth int    `json:"gridwidth"`
}

// Layout holds figure-level presentation settings.
type Layout struct {
	Title      string `json:"title"`
	HoverMode  string `json:"hovermode"`
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	ShowLegend bool   `json:"showlegend"`
}

// Figure is a renderable set of traces with a layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Renderer implements ports.CurveRenderer with plotly-style figures.
type Renderer struct{}

// NewRenderer creates a figure renderer
func NewRenderer() *Renderer { return &Renderer{} }

// Render builds one figure from the given traces. A negative trace
// offset means the default: skip the first 10% of the curve, where early
// scores dwarf the interesting tail.
func (r *Renderer) Render(title string, traces []ports.CurveTrace) (ports.Renderable, error) {
	fig := &Figure{
		Layout: Layout{
			Title:      title,
			HoverMode:  "closest",
			XAxis:      Axis{Title: "Iteration", TickLen: 5, GridWidth: 2},
			YAxis:      Axis{Title: "Metric", TickLen: 5, GridWidth: 2},
			ShowLegend: true,
		},
	}

	for _, t := range traces {
		if t.Curve.Len() == 0 {
			return nil, core.NewInputValidationError("cannot render an empty curve")
		}
		first := t.Offset
		if first < 0 {
			first = t.Curve.Len() / 10
		}
		if first >= t.Curve.Len() {
			return nil, core.NewInputValidationError(
				fmt.Sprintf("offset %d is beyond the curve length %d", first, t.Curve.Len()))
		}

		x := make([]int, 0, t.Curve.Len()-first)
		y := make([]float64, 0, t.Curve.Len()-first)
		for i := first; i < t.Curve.Len(); i++ {
			x = append(x, i*t.EvalStep)
			y = append(y, t.Curve[i])
		}
		fig.Data = append(fig.Data, Trace{X: x, Y: y, Mode: "lines", Name: t.Label})
	}
	return fig, nil
}

// CaseLearningCurves renders every fold curve of one case. offset < 0
// picks the default starting point.
func CaseLearningCurves(result *eval.CaseEvaluationResult, offset int) (*Figure, error) {
	traces := make([]ports.CurveTrace, 0, len(result.FoldIDs()))
	for _, fold := range result.FoldIDs() {
		curve, err := result.FoldCurve(fold)
		if err != nil {
			return nil, err
		}
		traces = append(traces, ports.CurveTrace{
			Label:    fmt.Sprintf("Fold #%s", fold),
			EvalStep: result.EvalStep(),
			Offset:   offset,
			Curve:    curve,
		})
	}

	title := fmt.Sprintf("Learning curves for case %s", result.Case())
	fig, err := NewRenderer().Render(title, traces)
	if err != nil {
		return nil, err
	}
	return fig.(*Figure), nil
}

// FoldLearningCurves renders one fold's curve for every compared case.
func FoldLearningCurves(result *eval.MetricEvaluationResult, fold core.FoldID, offset int) (*Figure, error) {
	traces := make([]ports.CurveTrace, 0, len(result.Cases()))
	for _, c := range result.Cases() {
		caseResult, err := result.CaseResult(c)
		if err != nil {
			return nil, err
		}
		curve, err := caseResult.FoldCurve(fold)
		if err != nil {
			return nil, err
		}
		traces = append(traces, ports.CurveTrace{
			Label:    fmt.Sprintf("Case %s", c),
			EvalStep: caseResult.EvalStep(),
			Offset:   offset,
			Curve:    curve,
		})
	}

	title := fmt.Sprintf("Learning curves for metric %s on fold #%s", result.MetricDescription().Name, fold)
	fig, err := NewRenderer().Render(title, traces)
	if err != nil {
		return nil, err
	}
	return fig.(*Figure), nil
}
