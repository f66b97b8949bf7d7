package post

import (
	"encoding/json"
	"time"

	"github.com/blockpress/core/internal/models"
	"github.com/blockpress/core/internal/modules/content/block"
)

// CreatePostDTO is the request body for creating a post.
type CreatePostDTO struct {
	Slug        string `json:"slug"  binding:"required"`
	Title       string `json:"title" binding:"required"`
	Summary     string `json:"summary"`
	CoverImage  string `json:"coverImage"`
	IsPublished *bool  `json:"isPublished"`
}

// UpdatePostDTO is the request body for updating post metadata (all fields
// optional). Blocks are never updated through here; they have their own
// operations.
type UpdatePostDTO struct {
	Slug        *string `json:"slug"`
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`
	CoverImage  *string `json:"coverImage"`
	IsPublished *bool   `json:"isPublished"`
}

// AppendBlockDTO adds a block of the given kind, at the end unless At is set.
type AppendBlockDTO struct {
	Kind block.Kind `json:"kind" binding:"required"`
	At   *int       `json:"at"`
}

// UpdateBlockDTO patches a block's common fields; a present Data replaces the
// kind payload wholesale.
type UpdateBlockDTO struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Source      *string         `json:"source"`
	MediaURL    *string         `json:"mediaUrl"`
	OrderNumber *int            `json:"orderNumber"`
	Data        json.RawMessage `json:"data"`
}

// MoveBlockDTO nudges a block one position.
type MoveBlockDTO struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ReorderDTO is a single move-before splice, used for both the block sequence
// and id-keyed sub-collections.
type ReorderDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// UpdateOptionDTO patches a poll or versus option.
type UpdateOptionDTO struct {
	Text  *string `json:"text"`
	Image *string `json:"image"`
	Votes *int    `json:"votes"`
}

// UpdateQuizDTO patches quiz-level settings.
type UpdateQuizDTO struct {
	QuizType        *block.QuizType        `json:"quizType"`
	QuestionSorting *block.QuestionSorting `json:"questionSorting"`
	AllowMultiple   *bool                  `json:"allowMultiple"`
	ShowResults     *bool                  `json:"showResults"`
	EndDate         *time.Time             `json:"endDate"`
}

// UpdateQuestionDTO patches a quiz question.
type UpdateQuestionDTO struct {
	Title       *string               `json:"title"`
	Image       *string               `json:"image"`
	Description *string               `json:"description"`
	ShowOnCover *bool                 `json:"showOnCover"`
	Layout      *block.QuestionLayout `json:"layout"`
}

// UpdateAnswerDTO patches a quiz answer. ResultID may name a result that no
// longer exists; it is stored as-is and simply stops resolving.
type UpdateAnswerDTO struct {
	Text      *string `json:"text"`
	Image     *string `json:"image"`
	ResultID  *string `json:"resultId"`
	IsCorrect *bool   `json:"isCorrect"`
}

// UpdateResultDTO patches a quiz result.
type UpdateResultDTO struct {
	Title       *string `json:"title"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	MinScore    *int    `json:"minScore"`
	MaxScore    *int    `json:"maxScore"`
	AnswerCount *int    `json:"answerCount"`
}

// UpdateBreakdownDTO patches one review criterion row.
type UpdateBreakdownDTO struct {
	Label *string `json:"label"`
	Score *int    `json:"score"`
}

// ProsConsDTO replaces a review's pros and cons lists wholesale.
type ProsConsDTO struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// postResponse is the API response shape for a post.
type postResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	CoverImage  string     `json:"coverImage"`
	IsPublished bool       `json:"isPublished"`
	Blocks      block.List `json:"blocks"`
	Created     time.Time  `json:"created"`
	Modified    *time.Time `json:"modified"`
}

func toResponse(p *models.PostModel) postResponse {
	blocks := p.Blocks
	if blocks == nil {
		blocks = block.List{}
	}
	var modified *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		modified = &t
	}
	return postResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Summary:     p.Summary,
		CoverImage:  p.CoverImage,
		IsPublished: p.IsPublished,
		Blocks:      blocks,
		Created:     p.CreatedAt,
		Modified:    modified,
	}
}
