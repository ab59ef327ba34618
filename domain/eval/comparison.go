package eval

import (
	"fmt"

	"curveval/domain/core"
	"curveval/domain/metric"
)

// Decision is the verdict for one case measured against the baseline.
type Decision string

const (
	DecisionGood    Decision = "GOOD"
	DecisionBad     Decision = "BAD"
	DecisionUnknown Decision = "UNKNOWN"
)

// Decide applies the verdict rule: a case is GOOD or BAD only when the
// rank-test p-value clears 1 - scoreLevel AND the mean diff has the
// matching sign. Statistical significance without direction (or an exact
// zero mean) stays UNKNOWN.
func Decide(pvalue, meanDiff, scoreLevel float64) Decision {
	if pvalue > 1-scoreLevel {
		if meanDiff > 0 {
			return DecisionGood
		}
		if meanDiff < 0 {
			return DecisionBad
		}
	}
	return DecisionUnknown
}

// OverfitInfo carries the optional overfit-iteration diagnostics for one
// comparison row: the mean difference of best iterations (test minus
// baseline) and the rank-test p-value over best iterations.
type OverfitInfo struct {
	IterDiff   float64 `json:"overfit_iter_diff"`
	IterPValue float64 `json:"overfit_iter_pvalue"`
}

// ComparisonRow describes how one execution case performed against the
// baseline on a single metric.
type ComparisonRow struct {
	Case          core.ExecutionCase `json:"case"`
	PValue        float64            `json:"pvalue"`
	Score         float64            `json:"score"`
	LeftQuantile  float64            `json:"left_quantile"`
	RightQuantile float64            `json:"right_quantile"`
	Decision      Decision           `json:"decision"`
	Overfit       *OverfitInfo       `json:"overfit,omitempty"`
}

// ComparisonTable is the baseline-vs-all result for one metric. Rows are
// sorted by Score, ascending when the metric is max-optimal.
type ComparisonTable struct {
	Baseline core.ExecutionCase `json:"baseline"`
	Metric   metric.Description `json:"metric"`
	// Quantile column titles are labelled with the score level, matching
	// the historical table layout (the interval itself is computed at the
	// interval level).
	LeftQuantileTitle  string          `json:"left_quantile_title"`
	RightQuantileTitle string          `json:"right_quantile_title"`
	Rows               []ComparisonRow `json:"rows"`
}

// Columns returns the ordered column titles of the table.
func (t *ComparisonTable) Columns() []string {
	cols := []string{"Case", "PValue", "Score", t.LeftQuantileTitle, t.RightQuantileTitle, "Decision"}
	if len(t.Rows) > 0 && t.Rows[0].Overfit != nil {
		cols = append(cols, "Overfit iter diff", "Overfit iter pValue")
	}
	return cols
}

func quantileTitles(scoreLevel float64) (left, right string) {
	left = fmt.Sprintf("Quantile %g", scoreLevel/2)
	right = fmt.Sprintf("Quantile %g", 1-scoreLevel/2)
	return left, right
}
