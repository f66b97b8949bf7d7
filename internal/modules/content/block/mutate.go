package block

import "github.com/google/uuid"

// identifiable is satisfied by every id-keyed sub-collection item (options,
// quiz results/questions/answers, review breakdown rows).
type identifiable interface {
	GetID() string
}

// ReplaceByID rebuilds items with the entry whose id matches replaced by
// apply(entry). A non-matching id yields the list unchanged: mutation on a
// non-existent id is a silent no-op, not an error.
func ReplaceByID[T identifiable](items []T, id string, apply func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if item.GetID() == id {
			out[i] = apply(item)
		} else {
			out[i] = item
		}
	}
	return out
}

// RemoveByID rebuilds items without the entry whose id matches.
func RemoveByID[T identifiable](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetID() != id {
			out = append(out, item)
		}
	}
	return out
}

// IndexByID returns the position of the entry with the given id, or -1.
func IndexByID[T identifiable](items []T, id string) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// Update rebuilds the list with the block of the given id replaced by
// apply(block). An unknown id is a silent no-op.
func (l List) Update(id string, apply func(Block) Block) List {
	out := make(List, len(l))
	for i, b := range l {
		if b.ID == id {
			out[i] = apply(b)
		} else {
			out[i] = b
		}
	}
	return out
}

// Remove drops the block with the given id from the sequence.
func (l List) Remove(id string) List {
	out := make(List, 0, len(l))
	for _, b := range l {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}

// Append adds a block to the end of the sequence.
func (l List) Append(b Block) List {
	out := make(List, 0, len(l)+1)
	out = append(out, l...)
	return append(out, b)
}

// Insert places a block at the given position, clamped to the list bounds.
func (l List) Insert(b Block, at int) List {
	if at < 0 {
		at = 0
	}
	if at > len(l) {
		at = len(l)
	}
	out := make(List, 0, len(l)+1)
	out = append(out, l[:at]...)
	out = append(out, b)
	return append(out, l[at:]...)
}

// MoveUp swaps the block at index with its predecessor. No-op at the top.
func (l List) MoveUp(index int) List {
	if index <= 0 || index >= len(l) {
		return l
	}
	out := make(List, len(l))
	copy(out, l)
	out[index-1], out[index] = out[index], out[index-1]
	return out
}

// MoveDown swaps the block at index with its successor. No-op at the bottom.
func (l List) MoveDown(index int) List {
	if index < 0 || index >= len(l)-1 {
		return l
	}
	out := make(List, len(l))
	copy(out, l)
	out[index], out[index+1] = out[index+1], out[index]
	return out
}

// Index returns the position of the block with the given id, or -1.
func (l List) Index(id string) int {
	for i, b := range l {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the block with the given id, or nil.
func (l List) Find(id string) *Block {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// Normalized restores per-kind list invariants: versus duels are re-seeded to
// exactly two options, polls seed their option list when absent, and review
// scores are recomputed from the breakdown.
func (l List) Normalized() List {
	out := make(List, len(l))
	for i, b := range l {
		switch b.Kind {
		case KindVersus:
			if v := b.Versus(); v != nil {
				seeded := v.Seeded()
				b.Data = &seeded
			} else {
				seeded := VersusData{}.Seeded()
				b.Data = &seeded
			}
		case KindPoll:
			if p := b.Poll(); p != nil {
				seeded := p.Seeded()
				b.Data = &seeded
			}
		case KindReview:
			if r := b.Review(); r != nil {
				next := r.Recomputed()
				b.Data = &next
			}
		}
		out[i] = b
	}
	return out
}

// Poll option operations, all rebuild-and-replace.

// AddOption appends a freshly generated option.
func (p PollData) AddOption() PollData {
	p.Options = append(append([]Option{}, p.Options...), Option{ID: uuid.New().String()})
	return p
}

// UpdateOption replaces the matching option wholesale. Unknown ids no-op.
func (p PollData) UpdateOption(id string, apply func(Option) Option) PollData {
	p.Options = ReplaceByID(p.Options, id, apply)
	return p
}

// RemoveOption drops the matching option.
func (p PollData) RemoveOption(id string) PollData {
	p.Options = RemoveByID(p.Options, id)
	return p
}

// UpdateOption replaces one side of the duel. Unknown ids no-op.
func (v VersusData) UpdateOption(id string, apply func(Option) Option) VersusData {
	v.Options = ReplaceByID(v.Options, id, apply)
	return v
}

// Review list operations.

// AddBreakdownRow appends a zero-score criterion row.
func (r ReviewData) AddBreakdownRow() ReviewData {
	r.Breakdown = append(append([]BreakdownItem{}, r.Breakdown...), BreakdownItem{ID: uuid.New().String()})
	return r.Recomputed()
}

// UpdateBreakdownRow replaces the matching row and recomputes the score.
func (r ReviewData) UpdateBreakdownRow(id string, apply func(BreakdownItem) BreakdownItem) ReviewData {
	r.Breakdown = ReplaceByID(r.Breakdown, id, apply)
	return r.Recomputed()
}

// RemoveBreakdownRow drops the matching row and recomputes the score.
func (r ReviewData) RemoveBreakdownRow(id string) ReviewData {
	r.Breakdown = RemoveByID(r.Breakdown, id)
	return r.Recomputed()
}
