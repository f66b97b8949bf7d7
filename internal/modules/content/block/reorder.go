package block

// DragSession tracks a live move-before reorder over an ordered list. It
// works purely on indices and item values, so the same engine serves poll
// options, quiz questions, answers, or any other ordered sub-collection.
//
// Each Over event with a new target removes the dragged item from its current
// slot and reinserts it before the target, shifting intervening items by one
// (a move, not a swap). Events within one gesture must arrive in order.
type DragSession[T any] struct {
	items   []T
	start   int
	current int
}

// StartDrag begins a gesture on a copy of items, dragging the element at
// from. The index is clamped to the list bounds.
func StartDrag[T any](items []T, from int) *DragSession[T] {
	copied := make([]T, len(items))
	copy(copied, items)
	from = clampIndex(from, len(copied))
	return &DragSession[T]{items: copied, start: from, current: from}
}

// Over handles a drag-over event at target. Targets past either end clamp to
// the boundary; a target equal to the current position is a no-op.
func (s *DragSession[T]) Over(target int) {
	target = clampIndex(target, len(s.items))
	if target == s.current {
		return
	}
	s.items = MoveBefore(s.items, s.current, target)
	s.current = target
}

// Current returns the list as reordered so far.
func (s *DragSession[T]) Current() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// End commits the gesture, returning the final order and whether the dragged
// element actually moved from its starting slot.
func (s *DragSession[T]) End() (items []T, moved bool) {
	return s.Current(), s.current != s.start
}

// MoveBefore removes the element at from and reinserts it at to, shifting
// the elements in between by one slot. Out-of-range indexes clamp.
func MoveBefore[T any](items []T, from, to int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) == 0 {
		return out
	}
	from = clampIndex(from, len(out))
	to = clampIndex(to, len(out))
	if from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	rest := append(out[:to:to], append([]T{moved}, out[to:]...)...)
	return rest
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
