package eval

import (
	"math"
	"math/rand"
	"sort"
	"time"

	mstats "github.com/montanaflynn/stats"

	"curveval/domain/core"
	"curveval/domain/metric"
	"curveval/domain/stats"
)

// comparisonKey identifies one memoized comparison table. Keying on the
// config hash means a config change is a cache miss, never a stale hit.
type comparisonKey struct {
	baseline core.ExecutionCase
	config   core.ConfigHash
}

// MetricEvaluationResult aggregates the case results computed for one
// metric and produces baseline-vs-all comparison tables.
type MetricEvaluationResult struct {
	metric    metric.Description
	caseOrder []core.ExecutionCase
	results   map[core.ExecutionCase]*CaseEvaluationResult

	baseline core.ExecutionCase
	config   ScoreConfig

	rng         *rand.Rand
	comparisons map[comparisonKey]*ComparisonTable
}

// NewMetricEvaluationResult validates and aggregates case results. It
// requires at least two cases, all sharing the same metric description,
// fold set and eval step.
func NewMetricEvaluationResult(caseResults []*CaseEvaluationResult) (*MetricEvaluationResult, error) {
	if len(caseResults) < 2 {
		return nil, core.NewInconsistentInputError("need at least 2 case results")
	}

	first := caseResults[0]
	m := &MetricEvaluationResult{
		metric:      first.MetricDescription(),
		results:     make(map[core.ExecutionCase]*CaseEvaluationResult, len(caseResults)),
		baseline:    first.Case(),
		config:      DefaultScoreConfig(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		comparisons: make(map[comparisonKey]*ComparisonTable),
	}

	folds := first.FoldIDs()
	for _, result := range caseResults {
		if result.MetricDescription() != m.metric {
			return nil, core.NewInconsistentInputError("metric descriptions must be equal for all case results")
		}
		if !sameFoldSet(folds, result.FoldIDs()) {
			return nil, core.NewInconsistentInputError("case results must be computed on the same folds")
		}
		if result.EvalStep() != first.EvalStep() {
			return nil, core.NewInconsistentInputError("eval steps must be equal for all case results")
		}
		if _, dup := m.results[result.Case()]; dup {
			return nil, core.NewInconsistentInputError("duplicate case " + result.Case().String())
		}
		m.caseOrder = append(m.caseOrder, result.Case())
		m.results[result.Case()] = result
	}
	return m, nil
}

func sameFoldSet(a, b []core.FoldID) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[core.FoldID]struct{}, len(a))
	for _, fold := range a {
		set[fold] = struct{}{}
	}
	for _, fold := range b {
		if _, ok := set[fold]; !ok {
			return false
		}
	}
	return true
}

// SetRNG replaces the random source used for bootstrap resampling. Useful
// for reproducible tables; safe only before tables are computed
// concurrently.
func (m *MetricEvaluationResult) SetRNG(rng *rand.Rand) { m.rng = rng }

// MetricDescription returns the metric these results were computed for.
func (m *MetricEvaluationResult) MetricDescription() metric.Description { return m.metric }

// Cases returns the compared execution cases in insertion order.
func (m *MetricEvaluationResult) Cases() []core.ExecutionCase {
	out := make([]core.ExecutionCase, len(m.caseOrder))
	copy(out, m.caseOrder)
	return out
}

// BaselineCase returns the case everything else is compared against.
func (m *MetricEvaluationResult) BaselineCase() core.ExecutionCase { return m.baseline }

// CaseResult returns the per-case store for one execution case.
func (m *MetricEvaluationResult) CaseResult(c core.ExecutionCase) (*CaseEvaluationResult, error) {
	result, ok := m.results[c]
	if !ok {
		return nil, core.NewUnknownCaseError(c.String())
	}
	return result, nil
}

// FoldIDs returns the folds the evaluation was computed on.
func (m *MetricEvaluationResult) FoldIDs() []core.FoldID {
	return m.results[m.baseline].FoldIDs()
}

// EvalStep returns the iteration interval between curve points.
func (m *MetricEvaluationResult) EvalStep() int {
	return m.results[m.baseline].EvalStep()
}

// ScoreConfig returns the current presentation configuration.
func (m *MetricEvaluationResult) ScoreConfig() ScoreConfig { return m.config }

// SetScoreConfig replaces the presentation configuration. Previously
// memoized tables become unreachable through the new config hash.
func (m *MetricEvaluationResult) SetScoreConfig(config ScoreConfig) {
	m.config = config
}

// ChangeBaseline switches the baseline case for subsequent comparisons.
func (m *MetricEvaluationResult) ChangeBaseline(c core.ExecutionCase) error {
	if _, ok := m.results[c]; !ok {
		return core.NewUnknownCaseError(c.String())
	}
	m.baseline = c
	return nil
}

// BaselineComparison returns the comparison table against the current
// baseline case.
func (m *MetricEvaluationResult) BaselineComparison() (*ComparisonTable, error) {
	return m.CaseComparison(m.baseline)
}

// CaseComparison returns the comparison table with the given case taken
// as baseline. Tables are memoized per (baseline, config hash).
func (m *MetricEvaluationResult) CaseComparison(baseline core.ExecutionCase) (*ComparisonTable, error) {
	if _, ok := m.results[baseline]; !ok {
		return nil, core.NewUnknownCaseError(baseline.String())
	}
	key := comparisonKey{baseline: baseline, config: m.config.Hash()}
	if table, ok := m.comparisons[key]; ok {
		return table, nil
	}
	table, err := m.computeComparisonTable(baseline)
	if err != nil {
		return nil, err
	}
	m.comparisons[key] = table
	return table, nil
}

func (m *MetricEvaluationResult) computeComparisonTable(baseline core.ExecutionCase) (*ComparisonTable, error) {
	folds := m.results[baseline].FoldIDs()
	baselineScores, err := m.results[baseline].bestScores(folds)
	if err != nil {
		return nil, err
	}
	baselineIters, err := m.results[baseline].bestIterations(folds)
	if err != nil {
		return nil, err
	}

	leftTitle, rightTitle := quantileTitles(m.config.ScoreLevel)
	table := &ComparisonTable{
		Baseline:           baseline,
		Metric:             m.metric,
		LeftQuantileTitle:  leftTitle,
		RightQuantileTitle: rightTitle,
	}

	for _, c := range m.caseOrder {
		if c == baseline {
			continue
		}
		result := m.results[c]

		testScores, err := result.bestScores(folds)
		if err != nil {
			return nil, err
		}
		pvalue, _, err := stats.PairedRankTest(baselineScores, testScores)
		if err != nil {
			return nil, err
		}

		// Positive diff means the tested case beats the baseline,
		// whatever the optimization direction.
		diff := make([]float64, len(folds))
		for i := range folds {
			diff[i] = baselineScores[i] - testScores[i]
			if m.config.Type == ScoreRelative {
				diff[i] /= math.Abs(baselineScores[i])
			}
			if m.metric.IsMaxOptimal {
				diff[i] = -diff[i]
			}
		}
		meanDiff, _ := mstats.Mean(diff)
		left, right := stats.BootstrapMeanInterval(m.rng, diff, m.config.IntervalLevel, stats.DefaultBootstrapTries)

		row := ComparisonRow{
			Case:          c,
			PValue:        pvalue,
			Score:         meanDiff * m.config.Multiplier,
			LeftQuantile:  left * m.config.Multiplier,
			RightQuantile: right * m.config.Multiplier,
			Decision:      Decide(pvalue, meanDiff, m.config.ScoreLevel),
		}

		if m.config.OverfitIterationsInfo {
			testIters, err := result.bestIterations(folds)
			if err != nil {
				return nil, err
			}
			iterPValue, _, err := stats.PairedRankTest(baselineIters, testIters)
			if err != nil {
				return nil, err
			}
			iterDiff := make([]float64, len(folds))
			for i := range folds {
				iterDiff[i] = testIters[i] - baselineIters[i]
			}
			meanIterDiff, _ := mstats.Mean(iterDiff)
			row.Overfit = &OverfitInfo{IterDiff: meanIterDiff, IterPValue: iterPValue}
		}

		table.Rows = append(table.Rows, row)
	}

	// Sort direction follows the optimization direction, matching the
	// historical table layout.
	ascending := m.metric.IsMaxOptimal
	sort.SliceStable(table.Rows, func(a, b int) bool {
		if ascending {
			return table.Rows[a].Score < table.Rows[b].Score
		}
		return table.Rows[a].Score > table.Rows[b].Score
	})

	return table, nil
}
