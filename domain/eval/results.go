package eval

import (
	"context"

	"golang.org/x/sync/errgroup"

	"curveval/domain/core"
)

// Results is the catalog of per-metric evaluation results, keyed by
// metric name.
type Results struct {
	names   []string
	results map[string]*MetricEvaluationResult
}

// NewResults builds the catalog. Metric names must be unique and at least
// one result is required.
func NewResults(metricResults []*MetricEvaluationResult) (*Results, error) {
	if len(metricResults) == 0 {
		return nil, core.NewInconsistentInputError("need at least one metric result")
	}

	r := &Results{results: make(map[string]*MetricEvaluationResult, len(metricResults))}
	for _, result := range metricResults {
		key := result.MetricDescription().Key()
		if _, dup := r.results[key]; dup {
			return nil, core.NewInconsistentInputError("duplicate metric " + key)
		}
		r.names = append(r.names, key)
		r.results[key] = result
	}
	return r, nil
}

// MetricNames returns the catalog keys in insertion order.
func (r *Results) MetricNames() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// MetricResult returns the aggregator for one metric.
func (r *Results) MetricResult(name string) (*MetricEvaluationResult, error) {
	result, ok := r.results[name]
	if !ok {
		return nil, core.NewInconsistentInputError("no results for metric " + name)
	}
	return result, nil
}

// SetBaselineCase switches the baseline for every metric. The case must
// be known to every aggregator; the first failure propagates.
func (r *Results) SetBaselineCase(c core.ExecutionCase) error {
	for _, name := range r.names {
		if err := r.results[name].ChangeBaseline(c); err != nil {
			return err
		}
	}
	return nil
}

// ComputeAllComparisons computes the baseline comparison table for every
// metric, one goroutine per aggregator. Each aggregator is owned by
// exactly one goroutine, so the memo caches see no concurrent mutation.
func (r *Results) ComputeAllComparisons(ctx context.Context) (map[string]*ComparisonTable, error) {
	tables := make([]*ComparisonTable, len(r.names))

	g, _ := errgroup.WithContext(ctx)
	for i, name := range r.names {
		result := r.results[name]
		g.Go(func() error {
			table, err := result.BaselineComparison()
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*ComparisonTable, len(r.names))
	for i, name := range r.names {
		out[name] = tables[i]
	}
	return out, nil
}
