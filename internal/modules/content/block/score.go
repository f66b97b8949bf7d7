package block

import "math"

// AggregateScore returns the rounded arithmetic mean of the breakdown scores.
// ok is false when the breakdown is empty, in which case the previous score
// must be preserved rather than reset.
func AggregateScore(breakdown []BreakdownItem) (score int, ok bool) {
	if len(breakdown) == 0 {
		return 0, false
	}
	sum := 0
	for _, item := range breakdown {
		sum += item.Score
	}
	return int(math.Round(float64(sum) / float64(len(breakdown)))), true
}

// Recomputed returns the review with its derived score refreshed from the
// breakdown. An empty breakdown leaves the last score in place. Individual
// row scores are clamped by the input surface, not here.
func (r ReviewData) Recomputed() ReviewData {
	if score, ok := AggregateScore(r.Breakdown); ok {
		r.Score = score
	}
	return r
}
