package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"curveval/domain/core"
)

// PairedRankTest runs a Wilcoxon signed-rank test on the paired
// differences baseline[i] - test[i], using the Pratt zero handling: zero
// differences take part in ranking but contribute no sign. The two-sided
// p-value is computed from the normal approximation with tie correction
// and then folded into a one-sided "baseline beats test" framing: a raw
// p-value below 0.5 is returned as 1 - p.
//
// The returned statistic is min(W+, W-), the smaller signed-rank sum.
func PairedRankTest(baseline, test []float64) (pvalue, statistic float64, err error) {
	if len(baseline) != len(test) {
		return 0, 0, core.NewInputValidationError("paired samples must have equal length")
	}
	if len(baseline) == 0 {
		return 0, 0, core.NewInputValidationError("paired samples must not be empty")
	}

	n := len(baseline)
	diffs := make([]float64, n)
	zeros := 0
	for i := range baseline {
		diffs[i] = baseline[i] - test[i]
		if diffs[i] == 0 {
			zeros++
		}
	}
	if zeros == n {
		return 0, 0, core.NewInputValidationError("all paired differences are zero")
	}

	ranks := rankAbs(diffs)

	var rPlus, rMinus float64
	for i, d := range diffs {
		switch {
		case d > 0:
			rPlus += ranks[i]
		case d < 0:
			rMinus += ranks[i]
		}
	}
	statistic = math.Min(rPlus, rMinus)

	count := float64(n)
	nz := float64(zeros)
	mean := count * (count + 1) * 0.25
	variance := count * (count + 1) * (2*count + 1)

	// Pratt: the ranks held by zero differences are removed from the
	// null mean and variance.
	mean -= nz * (nz + 1) * 0.25
	variance -= nz * (nz + 1) * (2*nz + 1)

	// Tie correction over the ranks of non-zero differences.
	variance -= tieCorrection(diffs, ranks)
	se := math.Sqrt(variance / 24)
	if se == 0 {
		return 0, 0, core.NewInputValidationError("too few distinct paired differences for a rank test")
	}

	z := (statistic - mean) / se
	pvalue = 2 * distuv.UnitNormal.Survival(math.Abs(z))
	if pvalue < 0.5 {
		pvalue = 1 - pvalue
	}
	return pvalue, statistic, nil
}

// rankAbs assigns 1-based ranks to |diffs|, averaging ranks over ties.
func rankAbs(diffs []float64) []float64 {
	n := len(diffs)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return math.Abs(diffs[order[a]]) < math.Abs(diffs[order[b]])
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && math.Abs(diffs[order[j+1]]) == math.Abs(diffs[order[i]]) {
			j++
		}
		// Average rank for the tie group spanning positions i..j.
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// tieCorrection computes 0.5 * sum(t^3 - t) over groups of tied ranks
// among the non-zero differences.
func tieCorrection(diffs, ranks []float64) float64 {
	counts := make(map[float64]float64, len(ranks))
	for i, d := range diffs {
		if d != 0 {
			counts[ranks[i]]++
		}
	}
	var corr float64
	for _, t := range counts {
		if t > 1 {
			corr += t * (t*t - 1)
		}
	}
	return 0.5 * corr
}
