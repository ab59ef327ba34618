package ports

import "curveval/domain/metric"

// Renderable is an opaque figure produced by a curve renderer. The engine
// never inspects it; the presentation layer decides what to do with it.
type Renderable interface{}

// CurveTrace is one curve handed to a renderer: the scores, the iteration
// interval between them, the first point to draw and a display label.
type CurveTrace struct {
	Label    string
	EvalStep int
	Offset   int
	Curve    metric.LearningCurve
}

// CurveRenderer turns learning-curve traces into a renderable figure
type CurveRenderer interface {
	Render(title string, traces []CurveTrace) (Renderable, error)
}
