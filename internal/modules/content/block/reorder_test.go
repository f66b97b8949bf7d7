package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveBefore(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}},
		{"backward", 3, 1, []string{"a", "d", "b", "c"}},
		{"same slot", 2, 2, []string{"a", "b", "c", "d"}},
		{"clamp low", 1, -7, []string{"b", "a", "c", "d"}},
		{"clamp high", 0, 99, []string{"b", "c", "d", "a"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := []string{"a", "b", "c", "d"}
			got := MoveBefore(items, tc.from, tc.to)
			assert.Equal(t, tc.want, got)
			// Input order is never touched.
			assert.Equal(t, []string{"a", "b", "c", "d"}, items)
		})
	}
}

func TestDragSessionStepwiseMovesMatchSingleSplice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	// Dragging "a" over b, c, d one slot at a time lands in the same order as
	// a single splice to the final slot.
	s := StartDrag(items, 0)
	s.Over(1)
	s.Over(2)
	s.Over(3)
	stepwise, moved := s.End()
	require.True(t, moved)
	assert.Equal(t, MoveBefore(items, 0, 3), stepwise)
}

func TestDragSessionAbortedGestureDoesNotMove(t *testing.T) {
	items := []string{"a", "b", "c"}

	s := StartDrag(items, 1)
	s.Over(2)
	s.Over(1) // dragged back to where it started
	got, moved := s.End()
	assert.False(t, moved)
	assert.Equal(t, items, got)
}

func TestDragSessionRepeatedTargetIsIdempotent(t *testing.T) {
	s := StartDrag([]string{"a", "b", "c"}, 0)
	s.Over(2)
	first := s.Current()
	s.Over(2)
	assert.Equal(t, first, s.Current())
}
