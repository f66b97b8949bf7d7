package render

import (
	"strings"
	"testing"

	"github.com/blockpress/core/internal/modules/content/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderQuizOrdinals(t *testing.T) {
	svc := NewService()

	quiz := block.New(block.KindQuiz)
	q := quiz.Quiz()
	q.Questions = []block.QuizQuestion{
		{ID: "q1", Title: "First", Layout: block.LayoutList},
		{ID: "q2", Title: "Second", Layout: block.LayoutList},
		{ID: "q3", Title: "Third", Layout: block.LayoutList},
	}

	q.QuestionSorting = block.SortDesc
	out := svc.RenderBlocks(block.List{quiz}).HTML
	assert.Contains(t, out, `<span class="ordinal">3.</span><h3>First</h3>`)
	assert.Contains(t, out, `<span class="ordinal">1.</span><h3>Third</h3>`)

	q.QuestionSorting = block.SortHidden
	out = svc.RenderBlocks(block.List{quiz}).HTML
	assert.NotContains(t, out, `class="ordinal"`)
}

func TestRenderQuizDanglingResultSkipped(t *testing.T) {
	svc := NewService()

	quiz := block.New(block.KindQuiz)
	q := quiz.Quiz()
	q.Results = []block.QuizResult{{ID: "r1", Title: "Winner"}}
	q.Questions = []block.QuizQuestion{{
		ID:    "q1",
		Title: "Pick",
		Answers: []block.QuizAnswer{
			{ID: "a1", Text: "resolves", ResultID: "r1"},
			{ID: "a2", Text: "dangling", ResultID: "gone"},
		},
	}}

	out := svc.RenderBlocks(block.List{quiz}).HTML
	assert.Contains(t, out, `<span class="answer-result">Winner</span>`)
	assert.Equal(t, 1, strings.Count(out, "answer-result"))
}

func TestRenderSocialUsesNormalizer(t *testing.T) {
	svc := NewService()

	social := block.New(block.KindSocial)
	social.Social().EmbedSource = "https://twitter.com/user/status/42"

	got := svc.RenderBlocks(block.List{social})
	assert.Contains(t, got.HTML, `class="twitter-tweet"`)
	require.Len(t, got.Scripts, 1)
	assert.Contains(t, got.Scripts[0].Src, "widgets.js")
}

func TestRenderAudioRecognizesVideoURL(t *testing.T) {
	svc := NewService()

	audio := block.New(block.KindAudio)
	audio.MediaURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	out := svc.RenderBlocks(block.List{audio}).HTML
	assert.Contains(t, out, "youtube.com/embed/dQw4w9WgXcQ")

	plain := block.New(block.KindAudio)
	plain.MediaURL = "https://example.com/track.mp3"
	out = svc.RenderBlocks(block.List{plain}).HTML
	assert.Contains(t, out, `<audio controls src="https://example.com/track.mp3">`)
}

func TestRenderReviewShowsDerivedScore(t *testing.T) {
	svc := NewService()

	review := block.New(block.KindReview)
	r := review.Review()
	r.ProductName = "Gadget"
	r.Breakdown = []block.BreakdownItem{{ID: "b1", Label: "Build", Score: 90}, {ID: "b2", Label: "Value", Score: 70}}
	r.Pros = []string{"fast"}
	r.Cons = []string{"pricey"}

	out := svc.RenderBlocks(block.List{review}.Normalized()).HTML
	assert.Contains(t, out, `<span class="review-score">80</span>`)
	assert.Contains(t, out, "<li>fast</li>")
	assert.Contains(t, out, "<li>pricey</li>")
}

func TestRenderEscapesTextFields(t *testing.T) {
	svc := NewService()

	quote := block.New(block.KindQuote)
	quote.Title = `<script>alert(1)</script>`
	quote.Source = "A & B"

	out := svc.RenderBlocks(block.List{quote}).HTML
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "A &amp; B")
}
