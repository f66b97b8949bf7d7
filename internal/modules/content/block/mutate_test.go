package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUpdateUnknownIDIsNoOp(t *testing.T) {
	list := List{New(KindQuote), New(KindPoll)}
	removedID := list[0].ID

	shorter := list.Remove(removedID)
	require.Len(t, shorter, 1)

	// A mutation aimed at the removed block leaves the list untouched.
	after := shorter.Update(removedID, func(b Block) Block {
		b.Title = "should not land"
		return b
	})
	assert.Equal(t, shorter, after)
}

func TestListUpdateDoesNotMutateOriginal(t *testing.T) {
	list := List{New(KindQuote)}
	id := list[0].ID

	updated := list.Update(id, func(b Block) Block {
		b.Title = "changed"
		return b
	})
	assert.Empty(t, list[0].Title)
	assert.Equal(t, "changed", updated[0].Title)
}

func TestListInsertClampsPosition(t *testing.T) {
	list := List{New(KindQuote), New(KindQuote)}
	b := New(KindAudio)

	front := list.Insert(b, -5)
	assert.Equal(t, b.ID, front[0].ID)

	back := list.Insert(b, 99)
	assert.Equal(t, b.ID, back[len(back)-1].ID)
}

func TestListMoveUpDownBoundaries(t *testing.T) {
	list := List{New(KindQuote), New(KindPoll), New(KindQuiz)}

	assert.Equal(t, list, list.MoveUp(0))
	assert.Equal(t, list, list.MoveDown(len(list)-1))

	swapped := list.MoveUp(2)
	assert.Equal(t, list[2].ID, swapped[1].ID)
	assert.Equal(t, list[1].ID, swapped[2].ID)
}

func TestPollOptionOperations(t *testing.T) {
	p := PollData{Options: []Option{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}}}

	grown := p.AddOption()
	require.Len(t, grown.Options, 3)
	assert.NotEmpty(t, grown.Options[2].ID)

	renamed := grown.UpdateOption("a", func(o Option) Option {
		o.Text = "uno"
		return o
	})
	assert.Equal(t, "uno", renamed.Options[0].Text)
	// Original stays as it was.
	assert.Equal(t, "one", grown.Options[0].Text)

	shrunk := renamed.RemoveOption("b")
	require.Len(t, shrunk.Options, 2)
	assert.Equal(t, -1, IndexByID(shrunk.Options, "b"))

	// Updating the removed option changes nothing.
	again := shrunk.UpdateOption("b", func(o Option) Option {
		o.Text = "ghost"
		return o
	})
	assert.Equal(t, shrunk, again)
}

func TestVersusSeededRestoresTwoOptions(t *testing.T) {
	broken := VersusData{Options: []Option{{ID: "only"}}}
	fixed := broken.Seeded()
	require.Len(t, fixed.Options, 2)
	assert.Equal(t, "Left", fixed.Options[0].Text)
	assert.Equal(t, "Right", fixed.Options[1].Text)

	intact := VersusData{Options: []Option{{ID: "l", Text: "Cats"}, {ID: "r", Text: "Dogs"}}}
	assert.Equal(t, intact, intact.Seeded())
}

func TestListNormalized(t *testing.T) {
	versus := New(KindVersus)
	versus.Versus().Options = versus.Versus().Options[:1]

	review := New(KindReview)
	review.Review().Breakdown = []BreakdownItem{{ID: "b1", Score: 70}, {ID: "b2", Score: 90}}
	review.Review().Score = 1

	list := List{versus, review}.Normalized()

	require.Len(t, list[0].Versus().Options, 2)
	assert.Equal(t, 80, list[1].Review().Score)
}
