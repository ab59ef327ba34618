// Package curves loads recorded learning curves from JSON files and
// assembles them into an evaluation session.
package curves

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"curveval/domain/core"
	"curveval/domain/eval"
	"curveval/domain/metric"
)

// MetricSpec describes one metric in a curve file.
type MetricSpec struct {
	Name         string `json:"name"`
	IsMaxOptimal bool   `json:"is_max_optimal"`
}

// CaseCurves holds the per-fold curves of one case for one metric.
type CaseCurves struct {
	Case   string               `json:"case"`
	Metric string               `json:"metric"`
	Folds  map[string][]float64 `json:"folds"`
}

// File is the on-disk layout of recorded learning curves.
type File struct {
	EvalStep int          `json:"eval_step"`
	Metrics  []MetricSpec `json:"metrics"`
	Cases    []CaseCurves `json:"cases"`
}

// Load reads a curve file and builds the evaluation catalog. Metric and
// case order follow the file; fold curves are recorded in sorted fold-id
// order so repeated loads build identical sessions.
func Load(path string) (*eval.Results, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve file: %w", err)
	}

	var file File
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse curve file %s: %w", path, err)
	}
	return Build(&file)
}

// Build assembles a catalog from an in-memory curve file.
func Build(file *File) (*eval.Results, error) {
	if file.EvalStep <= 0 {
		return nil, core.NewInputValidationError(fmt.Sprintf("eval_step must be positive, got %d", file.EvalStep))
	}

	descriptions := make(map[string]metric.Description, len(file.Metrics))
	for _, spec := range file.Metrics {
		if _, dup := descriptions[spec.Name]; dup {
			return nil, core.NewInconsistentInputError("duplicate metric " + spec.Name)
		}
		descriptions[spec.Name] = metric.NewDescription(spec.Name, spec.IsMaxOptimal)
	}

	// Group case entries per metric, keeping file order.
	perMetric := make(map[string][]*eval.CaseEvaluationResult)
	for _, cc := range file.Cases {
		desc, ok := descriptions[cc.Metric]
		if !ok {
			return nil, core.NewInputValidationError("case " + cc.Case + " references undeclared metric " + cc.Metric)
		}

		execCase := core.ExecutionCase(cc.Case)
		result := eval.NewCaseEvaluationResult(execCase, desc, file.EvalStep)

		folds := make([]string, 0, len(cc.Folds))
		for fold := range cc.Folds {
			folds = append(folds, fold)
		}
		sort.Strings(folds)
		for _, fold := range folds {
			if err := result.RecordFold(execCase, core.FoldID(fold), cc.Folds[fold]); err != nil {
				return nil, err
			}
		}
		perMetric[cc.Metric] = append(perMetric[cc.Metric], result)
	}

	metricResults := make([]*eval.MetricEvaluationResult, 0, len(file.Metrics))
	for _, spec := range file.Metrics {
		caseResults := perMetric[spec.Name]
		result, err := eval.NewMetricEvaluationResult(caseResults)
		if err != nil {
			return nil, fmt.Errorf("metric %s: %w", spec.Name, err)
		}
		metricResults = append(metricResults, result)
	}

	return eval.NewResults(metricResults)
}
