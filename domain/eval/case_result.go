package eval

import (
	"curveval/domain/core"
	"curveval/domain/metric"
)

// Default fit-classification borders, expressed as fractions of the
// curve length.
const (
	DefaultOverfitBorder  = 0.15
	DefaultUnderfitBorder = 0.95
)

// FitQuality is the outcome of the per-case fit sanity check.
type FitQuality string

const (
	FitOverfitting  FitQuality = "Overfitting"
	FitUnderfitting FitQuality = "Underfitting"
	FitGood         FitQuality = "Good"
)

// CaseEvaluationResult stores aggregated statistics for one execution
// case and one metric: a learning curve per fold plus the derived best
// score and best iteration. Build it with repeated RecordFold calls; it
// is read-only afterwards.
type CaseEvaluationResult struct {
	execCase core.ExecutionCase
	metric   metric.Description
	evalStep int

	foldOrder    []core.FoldID
	curves       map[core.FoldID]metric.LearningCurve
	bestScore    map[core.FoldID]float64
	bestPosition map[core.FoldID]int
}

// NewCaseEvaluationResult creates an empty store for the given case and
// metric. evalStep is the number of training iterations between curve
// points.
func NewCaseEvaluationResult(execCase core.ExecutionCase, desc metric.Description, evalStep int) *CaseEvaluationResult {
	return &CaseEvaluationResult{
		execCase:     execCase,
		metric:       desc,
		evalStep:     evalStep,
		curves:       make(map[core.FoldID]metric.LearningCurve),
		bestScore:    make(map[core.FoldID]float64),
		bestPosition: make(map[core.FoldID]int),
	}
}

// RecordFold stores one fold's learning curve and derives its best score
// and best position in the same step, so the two can never diverge.
// Recording the same fold again overwrites the previous entry. modelCase
// must match the store's case.
func (r *CaseEvaluationResult) RecordFold(modelCase core.ExecutionCase, fold core.FoldID, curve metric.LearningCurve) error {
	if modelCase != r.execCase {
		return core.NewCaseMismatchError(r.execCase.String(), modelCase.String())
	}
	if curve.Len() == 0 {
		return core.NewInputValidationError("learning curve must not be empty")
	}

	if _, seen := r.curves[fold]; !seen {
		r.foldOrder = append(r.foldOrder, fold)
	}
	stored := curve.Clone()
	score, position := stored.Best(r.metric.IsMaxOptimal)
	r.curves[fold] = stored
	r.bestScore[fold] = score
	r.bestPosition[fold] = position
	return nil
}

// Case returns the execution case this result belongs to.
func (r *CaseEvaluationResult) Case() core.ExecutionCase { return r.execCase }

// MetricDescription returns the metric used to build this result.
func (r *CaseEvaluationResult) MetricDescription() metric.Description { return r.metric }

// EvalStep returns the iteration interval between curve points.
func (r *CaseEvaluationResult) EvalStep() int { return r.evalStep }

// FoldIDs returns the recorded folds in insertion order.
func (r *CaseEvaluationResult) FoldIDs() []core.FoldID {
	out := make([]core.FoldID, len(r.foldOrder))
	copy(out, r.foldOrder)
	return out
}

// BestScore returns the best metric value reached on the fold.
func (r *CaseEvaluationResult) BestScore(fold core.FoldID) (float64, error) {
	score, ok := r.bestScore[fold]
	if !ok {
		return 0, core.NewUnknownFoldError(fold.String())
	}
	return score, nil
}

// BestIteration returns the training iteration at which the best score
// was reached: curve position times the eval step.
func (r *CaseEvaluationResult) BestIteration(fold core.FoldID) (int, error) {
	position, ok := r.bestPosition[fold]
	if !ok {
		return 0, core.NewUnknownFoldError(fold.String())
	}
	return position * r.evalStep, nil
}

// FoldCurve returns the recorded learning curve for the fold.
func (r *CaseEvaluationResult) FoldCurve(fold core.FoldID) (metric.LearningCurve, error) {
	curve, ok := r.curves[fold]
	if !ok {
		return nil, core.NewUnknownFoldError(fold.String())
	}
	return curve, nil
}

// bestScores returns best scores aligned to the given fold order. Every
// requested fold must be present; no silent alignment.
func (r *CaseEvaluationResult) bestScores(folds []core.FoldID) ([]float64, error) {
	out := make([]float64, len(folds))
	for i, fold := range folds {
		score, err := r.BestScore(fold)
		if err != nil {
			return nil, err
		}
		out[i] = score
	}
	return out, nil
}

// bestIterations returns best iterations aligned to the given fold order.
func (r *CaseEvaluationResult) bestIterations(folds []core.FoldID) ([]float64, error) {
	out := make([]float64, len(folds))
	for i, fold := range folds {
		iter, err := r.BestIteration(fold)
		if err != nil {
			return nil, err
		}
		out[i] = float64(iter)
	}
	return out, nil
}

// CountUnderAndOverFits classifies each fold by the fraction of the curve
// at which its best score occurred. The counter naming is historical and
// inverted relative to the semantics: a large fraction increments the
// underfitting counter, a small one the overfitting counter. Callers rely
// on the counters as named here, so the behavior is kept as is.
func (r *CaseEvaluationResult) CountUnderAndOverFits(overfitBorder, underfitBorder float64) (countOverfitting, countUnderfitting int) {
	for _, fold := range r.foldOrder {
		fraction := float64(r.bestPosition[fold]) / float64(r.curves[fold].Len())
		if fraction > overfitBorder {
			countUnderfitting++
		} else if fraction < underfitBorder {
			countOverfitting++
		}
	}
	return countOverfitting, countUnderfitting
}

// EstimateFitQuality is a sanity check that the models overfit, and not
// too fast, using the default borders.
func (r *CaseEvaluationResult) EstimateFitQuality() FitQuality {
	countOverfitting, countUnderfitting := r.CountUnderAndOverFits(DefaultOverfitBorder, DefaultUnderfitBorder)
	if countOverfitting > countUnderfitting {
		return FitOverfitting
	}
	if countUnderfitting > countOverfitting {
		return FitUnderfitting
	}
	return FitGood
}
