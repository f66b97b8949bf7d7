package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateScore(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		want   int
		wantOK bool
	}{
		{"single row", []int{73}, 73, true},
		{"exact mean", []int{80, 90}, 85, true},
		{"rounds half up", []int{80, 85}, 83, true},
		{"rounds to nearest", []int{80, 81, 81}, 81, true},
		{"empty breakdown", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			breakdown := make([]BreakdownItem, len(tc.scores))
			for i, s := range tc.scores {
				breakdown[i].Score = s
			}
			got, ok := AggregateScore(breakdown)
			assert.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestRecomputedPreservesScoreOnEmptyBreakdown(t *testing.T) {
	r := ReviewData{Score: 42}
	assert.Equal(t, 42, r.Recomputed().Score)
}

func TestBreakdownMutationsKeepScoreDerived(t *testing.T) {
	r := ReviewData{Breakdown: []BreakdownItem{
		{ID: "sound", Score: 90},
		{ID: "battery", Score: 70},
	}}.Recomputed()
	assert.Equal(t, 80, r.Score)

	r = r.UpdateBreakdownRow("battery", func(i BreakdownItem) BreakdownItem {
		i.Score = 50
		return i
	})
	assert.Equal(t, 70, r.Score)

	r = r.RemoveBreakdownRow("battery")
	assert.Equal(t, 90, r.Score)

	// Removing the last row keeps the previous derived score.
	r = r.RemoveBreakdownRow("sound")
	assert.Empty(t, r.Breakdown)
	assert.Equal(t, 90, r.Score)

	// A fresh zero-score row pulls the mean back down.
	r = r.AddBreakdownRow()
	assert.Equal(t, 0, r.Score)
}
