package post

import (
	"testing"

	"github.com/blockpress/core/internal/modules/content/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTypedRewritesPayload(t *testing.T) {
	l := block.List{block.New(block.KindPoll)}
	id := l[0].ID

	next, err := updateTyped(l, id, (*block.Block).Poll, func(p *block.PollData) (*block.PollData, error) {
		out := p.AddOption()
		return &out, nil
	})
	require.NoError(t, err)

	require.Len(t, next[0].Poll().Options, 3)
	assert.Len(t, l[0].Poll().Options, 2, "input list must stay untouched")
}

func TestUpdateTypedUnknownBlock(t *testing.T) {
	l := block.List{block.New(block.KindPoll)}

	_, err := updateTyped(l, "nope", (*block.Block).Poll, func(p *block.PollData) (*block.PollData, error) {
		return p, nil
	})
	assert.ErrorIs(t, err, ErrUnknownBlock)
}

func TestUpdateTypedWrongKind(t *testing.T) {
	l := block.List{block.New(block.KindQuote)}

	_, err := updateTyped(l[:1], l[0].ID, (*block.Block).Poll, func(p *block.PollData) (*block.PollData, error) {
		return p, nil
	})
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestApplyOptionPartialPatch(t *testing.T) {
	text := "updated"
	votes := 7

	got := applyOption(UpdateOptionDTO{Text: &text, Votes: &votes})(block.Option{
		ID: "o1", Text: "old", Image: "img.png", Votes: 1,
	})

	assert.Equal(t, "updated", got.Text)
	assert.Equal(t, 7, got.Votes)
	assert.Equal(t, "img.png", got.Image, "absent fields keep their value")
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 0, clampScore(0))
	assert.Equal(t, 55, clampScore(55))
	assert.Equal(t, 100, clampScore(100))
	assert.Equal(t, 100, clampScore(640))
}
