package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildQuiz() QuizData {
	q := QuizData{QuizType: QuizPersonality}
	q = q.AddQuestion()
	q = q.AddQuestion()
	q = q.AddResult()
	q = q.AddAnswer(q.Questions[0].ID)
	q = q.AddAnswer(q.Questions[0].ID)
	return q
}

func TestQuizNestedMutation(t *testing.T) {
	q := buildQuiz()
	questionID := q.Questions[0].ID
	answerID := q.Questions[0].Answers[1].ID

	q = q.UpdateAnswer(questionID, answerID, func(a QuizAnswer) QuizAnswer {
		a.Text = "Blue"
		a.ResultID = q.Results[0].ID
		return a
	})
	assert.Equal(t, "Blue", q.Questions[0].Answers[1].Text)

	q = q.RemoveAnswer(questionID, answerID)
	require.Len(t, q.Questions[0].Answers, 1)

	// Mutating under the wrong question leaves everything as is.
	before := q
	q = q.UpdateAnswer(q.Questions[1].ID, q.Questions[0].Answers[0].ID, func(a QuizAnswer) QuizAnswer {
		a.Text = "misrouted"
		return a
	})
	assert.Equal(t, before, q)

	q = q.RemoveQuestion(questionID)
	require.Len(t, q.Questions, 1)
}

func TestRemoveResultLeavesDanglingReference(t *testing.T) {
	q := buildQuiz()
	resultID := q.Results[0].ID
	questionID := q.Questions[0].ID
	answerID := q.Questions[0].Answers[0].ID

	q = q.UpdateAnswer(questionID, answerID, func(a QuizAnswer) QuizAnswer {
		a.ResultID = resultID
		return a
	})
	q = q.RemoveResult(resultID)

	// The answer keeps its reference; it just no longer resolves.
	assert.Equal(t, resultID, q.Questions[0].Answers[0].ResultID)
	assert.Nil(t, q.ResolveResult(resultID))
	assert.Nil(t, q.ResolveResult(""))
}

func TestQuizOrdinals(t *testing.T) {
	q := QuizData{Questions: make([]QuizQuestion, 3)}

	q.QuestionSorting = SortAsc
	for i, want := range []int{1, 2, 3} {
		got, show := q.Ordinal(i)
		assert.True(t, show)
		assert.Equal(t, want, got)
	}

	q.QuestionSorting = SortDesc
	for i, want := range []int{3, 2, 1} {
		got, show := q.Ordinal(i)
		assert.True(t, show)
		assert.Equal(t, want, got)
	}

	q.QuestionSorting = SortHidden
	_, show := q.Ordinal(0)
	assert.False(t, show)
}
