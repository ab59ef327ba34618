package metric

import "fmt"

// Description identifies a scoring function together with its optimization
// direction. All case results aggregated for one metric must carry an
// equal Description.
type Description struct {
	Name         string `json:"name"`
	IsMaxOptimal bool   `json:"is_max_optimal"`
}

// NewDescription creates a metric description.
func NewDescription(name string, isMaxOptimal bool) Description {
	return Description{Name: name, IsMaxOptimal: isMaxOptimal}
}

// Key returns the catalog key for this metric.
func (d Description) Key() string {
	return d.Name
}

// String returns a human-readable representation
func (d Description) String() string {
	direction := "min"
	if d.IsMaxOptimal {
		direction = "max"
	}
	return fmt.Sprintf("%s (%s-optimal)", d.Name, direction)
}

// LearningCurve is an ordered sequence of metric scores, one per
// evaluation step. Immutable once recorded.
type LearningCurve []float64

// Len returns the number of recorded evaluation points.
func (c LearningCurve) Len() int { return len(c) }

// Clone returns a defensive copy of the curve.
func (c LearningCurve) Clone() LearningCurve {
	out := make(LearningCurve, len(c))
	copy(out, c)
	return out
}

// Best returns the best score on the curve and its position, picking the
// maximum when isMaxOptimal and the minimum otherwise. The first position
// wins on ties.
func (c LearningCurve) Best(isMaxOptimal bool) (score float64, position int) {
	score = c[0]
	for i, v := range c {
		if isMaxOptimal {
			if v > score {
				score = v
				position = i
			}
		} else {
			if v < score {
				score = v
				position = i
			}
		}
	}
	return score, position
}
