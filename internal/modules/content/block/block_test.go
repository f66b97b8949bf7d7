package block

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsKindDefaults(t *testing.T) {
	poll := New(KindPoll)
	require.NotEmpty(t, poll.ID)
	require.NotNil(t, poll.Poll())
	assert.Len(t, poll.Poll().Options, 2)
	assert.Equal(t, 2, poll.Poll().Columns)

	versus := New(KindVersus)
	require.NotNil(t, versus.Versus())
	require.Len(t, versus.Versus().Options, 2)
	assert.Equal(t, "Left", versus.Versus().Options[0].Text)
	assert.Equal(t, "Right", versus.Versus().Options[1].Text)

	quiz := New(KindQuiz)
	require.NotNil(t, quiz.Quiz())
	assert.Equal(t, QuizTrivia, quiz.Quiz().QuizType)
	assert.Equal(t, SortAsc, quiz.Quiz().QuestionSorting)
	assert.True(t, quiz.Quiz().ShowResults)

	// Kinds whose content fits the common fields carry no payload.
	assert.Nil(t, New(KindAudio).Data)
	assert.Nil(t, New(KindQuote).Data)
	assert.Nil(t, New(KindFile).Data)
}

func TestBlockJSONRoundTrip(t *testing.T) {
	original := New(KindReview)
	original.Title = "Headphones"
	review := original.Review()
	review.ProductName = "XM5"
	review.Breakdown = []BreakdownItem{
		{ID: "b1", Label: "Sound", Score: 90},
		{ID: "b2", Label: "Comfort", Score: 80},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Block
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, KindReview, decoded.Kind)
	require.NotNil(t, decoded.Review())
	assert.Equal(t, "XM5", decoded.Review().ProductName)
	assert.Equal(t, review.Breakdown, decoded.Review().Breakdown)
}

func TestBlockUnmarshalRejectsUnknownKind(t *testing.T) {
	var b Block
	err := json.Unmarshal([]byte(`{"id":"x","kind":"carousel"}`), &b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carousel")
}

func TestBlockUnmarshalDecodesPayloadByKind(t *testing.T) {
	raw := `{"id":"x","kind":"poll","data":{"isImagePoll":true,"columns":3,"options":[{"id":"o1","text":"A","votes":4}]}}`
	var b Block
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	p := b.Poll()
	require.NotNil(t, p)
	assert.True(t, p.IsImagePoll)
	assert.Equal(t, 3, p.Columns)
	require.Len(t, p.Options, 1)
	assert.Equal(t, 4, p.Options[0].Votes)
}

func TestListJSONRoundTripPreservesOrder(t *testing.T) {
	list := List{New(KindQuote), New(KindPoll), New(KindQuiz)}
	raw, err := json.Marshal(list)
	require.NoError(t, err)

	var decoded List
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded, 3)
	for i := range list {
		assert.Equal(t, list[i].ID, decoded[i].ID)
		assert.Equal(t, list[i].Kind, decoded[i].Kind)
	}
}
