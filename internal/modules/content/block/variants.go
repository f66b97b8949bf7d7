package block

import (
	"time"

	"github.com/google/uuid"
)

// BeforeAfterData holds two image references and their labels for an
// image-compare block.
type BeforeAfterData struct {
	BeforeImage string `json:"beforeImage"`
	AfterImage  string `json:"afterImage"`
	BeforeLabel string `json:"beforeLabel"`
	AfterLabel  string `json:"afterLabel"`
}

func (*BeforeAfterData) blockKind() Kind { return KindBeforeAfter }

// FlipCardData holds the two independent faces of a flip card.
type FlipCardData struct {
	FrontImage       string `json:"frontImage"`
	FrontTitle       string `json:"frontTitle"`
	FrontLink        string `json:"frontLink"`
	FrontDescription string `json:"frontDescription"`
	BackImage        string `json:"backImage"`
	BackTitle        string `json:"backTitle"`
	BackLink         string `json:"backLink"`
	BackDescription  string `json:"backDescription"`
}

func (*FlipCardData) blockKind() Kind { return KindFlipCard }

// Option is one votable choice in a poll or versus duel.
type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
	Votes int    `json:"votes"`
}

func (o Option) GetID() string { return o.ID }

// PollData is a multi-option poll. Option order drives display order unless
// the author drag-reorders.
type PollData struct {
	IsImagePoll bool     `json:"isImagePoll"`
	Columns     int      `json:"columns"` // 2 or 3
	Options     []Option `json:"options"`
}

func (*PollData) blockKind() Kind { return KindPoll }

// VersusData is a two-option duel. Positions are fixed: options[0] is the
// left side, options[1] the right.
type VersusData struct {
	Options []Option `json:"options"`
}

func (*VersusData) blockKind() Kind { return KindVersus }

// QuizType selects how a quiz scores its answers.
type QuizType string

const (
	QuizPersonality QuizType = "personality"
	QuizTrivia      QuizType = "trivia"
	QuizChecklist   QuizType = "checklist"
)

// QuestionSorting controls the displayed question ordinal, not content order.
type QuestionSorting string

const (
	SortAsc    QuestionSorting = "asc"
	SortDesc   QuestionSorting = "desc"
	SortHidden QuestionSorting = "hidden"
)

// QuestionLayout selects the answer arrangement for one question.
type QuestionLayout string

const (
	LayoutList  QuestionLayout = "list"
	LayoutGrid2 QuestionLayout = "grid2"
	LayoutGrid3 QuestionLayout = "grid3"
)

// QuizResult is an outcome a quiz taker can land on. Results are independent
// of questions and referenced by id from answers.
type QuizResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	MinScore    int    `json:"minScore"`
	MaxScore    int    `json:"maxScore"`
	AnswerCount int    `json:"answerCount"`
}

func (r QuizResult) GetID() string { return r.ID }

// QuizAnswer is one choice under a question. ResultID is meaningful only for
// personality quizzes and may reference a deleted result; consumers must
// treat a non-resolving id as "no result selected". IsCorrect is meaningful
// only for trivia quizzes.
type QuizAnswer struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"`
	ResultID  string `json:"resultId,omitempty"`
	IsCorrect bool   `json:"isCorrect"`
}

func (a QuizAnswer) GetID() string { return a.ID }

// QuizQuestion is one question with its ordered answers.
type QuizQuestion struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Image       string         `json:"image,omitempty"`
	Description string         `json:"description,omitempty"`
	ShowOnCover bool           `json:"showOnCover"`
	Layout      QuestionLayout `json:"layout"`
	Answers     []QuizAnswer   `json:"answers"`
}

func (q QuizQuestion) GetID() string { return q.ID }

// QuizData is the quiz payload: questions with nested answers, plus a sibling
// results list cross-referenced by id from answers.
type QuizData struct {
	QuizType        QuizType        `json:"quizType"`
	Results         []QuizResult    `json:"results"`
	Questions       []QuizQuestion  `json:"questions"`
	QuestionSorting QuestionSorting `json:"questionSorting"`
	AllowMultiple   bool            `json:"allowMultiple"`
	ShowResults     bool            `json:"showResults"`
	EndDate         *time.Time      `json:"endDate,omitempty"`
}

func (*QuizData) blockKind() Kind { return KindQuiz }

// BreakdownItem is one scored sub-criterion of a review.
type BreakdownItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Score int    `json:"score"` // 0-100, clamped by the input surface
}

func (i BreakdownItem) GetID() string { return i.ID }

// ReviewData is a product review. Score is derived: it always equals the
// rounded mean of the breakdown scores and is only left alone when the
// breakdown is empty.
type ReviewData struct {
	ProductName  string          `json:"productName"`
	ProductImage string          `json:"productImage,omitempty"`
	Score        int             `json:"score"`
	Pros         []string        `json:"pros"`
	Cons         []string        `json:"cons"`
	Breakdown    []BreakdownItem `json:"breakdown"`
	Verdict      string          `json:"verdict,omitempty"` // HTML
}

func (*ReviewData) blockKind() Kind { return KindReview }

// SocialData stores the raw author input for an external embed. The display
// form is always recomputed from it by the embed normalizer, never stored.
type SocialData struct {
	EmbedSource string `json:"embedSource"`
}

func (*SocialData) blockKind() Kind { return KindSocial }

// defaultData returns the zeroed payload for a kind, seeded where the kind
// requires it. Kinds without variant-specific fields return nil.
func defaultData(kind Kind) Data {
	switch kind {
	case KindBeforeAfter:
		return &BeforeAfterData{BeforeLabel: "Before", AfterLabel: "After"}
	case KindFlipCard:
		return &FlipCardData{}
	case KindPoll:
		return &PollData{Columns: 2, Options: seedOptions(2)}
	case KindQuiz:
		return &QuizData{QuizType: QuizTrivia, QuestionSorting: SortAsc, ShowResults: true}
	case KindReview:
		return &ReviewData{Pros: []string{}, Cons: []string{}, Breakdown: []BreakdownItem{}}
	case KindSocial:
		return &SocialData{}
	case KindVersus:
		return &VersusData{Options: seedVersusOptions()}
	default:
		return nil
	}
}

func seedOptions(n int) []Option {
	opts := make([]Option, n)
	for i := range opts {
		opts[i] = Option{ID: uuid.New().String()}
	}
	return opts
}

func seedVersusOptions() []Option {
	return []Option{
		{ID: uuid.New().String(), Text: "Left"},
		{ID: uuid.New().String(), Text: "Right"},
	}
}

// Seeded returns the versus options restored to exactly two entries. A valid
// two-option list is returned unchanged; any other length is re-seeded.
func (v VersusData) Seeded() VersusData {
	if len(v.Options) == 2 {
		return v
	}
	v.Options = seedVersusOptions()
	return v
}

// Seeded returns the poll with its option list seeded when absent.
func (p PollData) Seeded() PollData {
	if len(p.Options) > 0 {
		return p
	}
	p.Options = seedOptions(2)
	return p
}
