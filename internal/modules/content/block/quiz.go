package block

import "github.com/google/uuid"

// Quiz graph mutation. The payload is questions → answers two levels deep
// plus a sibling results list; every operation follows the same
// rebuild-and-replace discipline as the block list itself. Removing a result
// does not cascade-clear answer references to it: those become dangling ids
// that resolve to "no result selected" at read time.

// AddQuestion appends a question with a generated id and list layout.
func (q QuizData) AddQuestion() QuizData {
	q.Questions = append(append([]QuizQuestion{}, q.Questions...), QuizQuestion{
		ID:      uuid.New().String(),
		Layout:  LayoutList,
		Answers: []QuizAnswer{},
	})
	return q
}

// UpdateQuestion replaces the matching question wholesale. Unknown ids no-op.
func (q QuizData) UpdateQuestion(id string, apply func(QuizQuestion) QuizQuestion) QuizData {
	q.Questions = ReplaceByID(q.Questions, id, apply)
	return q
}

// RemoveQuestion drops the matching question and its answers.
func (q QuizData) RemoveQuestion(id string) QuizData {
	q.Questions = RemoveByID(q.Questions, id)
	return q
}

// AddAnswer appends a fresh answer under the given question.
func (q QuizData) AddAnswer(questionID string) QuizData {
	return q.UpdateQuestion(questionID, func(question QuizQuestion) QuizQuestion {
		question.Answers = append(append([]QuizAnswer{}, question.Answers...), QuizAnswer{ID: uuid.New().String()})
		return question
	})
}

// UpdateAnswer replaces the matching answer under the given question.
func (q QuizData) UpdateAnswer(questionID, answerID string, apply func(QuizAnswer) QuizAnswer) QuizData {
	return q.UpdateQuestion(questionID, func(question QuizQuestion) QuizQuestion {
		question.Answers = ReplaceByID(question.Answers, answerID, apply)
		return question
	})
}

// RemoveAnswer drops the matching answer under the given question.
func (q QuizData) RemoveAnswer(questionID, answerID string) QuizData {
	return q.UpdateQuestion(questionID, func(question QuizQuestion) QuizQuestion {
		question.Answers = RemoveByID(question.Answers, answerID)
		return question
	})
}

// AddResult appends a fresh result.
func (q QuizData) AddResult() QuizData {
	q.Results = append(append([]QuizResult{}, q.Results...), QuizResult{ID: uuid.New().String()})
	return q
}

// UpdateResult replaces the matching result wholesale.
func (q QuizData) UpdateResult(id string, apply func(QuizResult) QuizResult) QuizData {
	q.Results = ReplaceByID(q.Results, id, apply)
	return q
}

// RemoveResult drops the matching result. Answers referencing it keep their
// resultId; the reference simply stops resolving.
func (q QuizData) RemoveResult(id string) QuizData {
	q.Results = RemoveByID(q.Results, id)
	return q
}

// ResolveResult returns the result an answer points at, or nil when the id is
// empty or dangling.
func (q QuizData) ResolveResult(id string) *QuizResult {
	if id == "" {
		return nil
	}
	for i := range q.Results {
		if q.Results[i].ID == id {
			return &q.Results[i]
		}
	}
	return nil
}

// Ordinal returns the display number for the question at the given list
// position. Sorting desc mirrors the numbering (N..1) without touching
// content order; hidden suppresses the ordinal entirely.
func (q QuizData) Ordinal(position int) (int, bool) {
	switch q.QuestionSorting {
	case SortDesc:
		return len(q.Questions) - position, true
	case SortHidden:
		return 0, false
	default:
		return position + 1, true
	}
}
