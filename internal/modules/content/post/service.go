package post

import (
	"errors"
	"fmt"

	"github.com/blockpress/core/internal/models"
	"github.com/blockpress/core/internal/modules/content/block"
	"github.com/blockpress/core/internal/pkg/pagination"
	"github.com/blockpress/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrUnknownBlock reports a kind-specific operation aimed at a block id
	// that is not in the post.
	ErrUnknownBlock = errors.New("block not found in post")
	// ErrWrongKind reports a kind-specific operation aimed at a block of
	// another kind.
	ErrWrongKind = errors.New("operation does not apply to this block kind")
	// ErrInvalidPayload reports a block payload that failed to decode.
	ErrInvalidPayload = errors.New("invalid block payload")
)

// Service implements post persistence and the block mutation surface. Every
// block operation follows the same discipline: load the post, rebuild the
// block list as a value, write the whole column back.
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// List returns posts ordered newest first. Without includeUnpublished only
// published posts are visible.
func (s *Service) List(q pagination.Query, includeUnpublished bool) ([]models.PostModel, response.Pagination, error) {
	query := s.db.Model(&models.PostModel{})
	if !includeUnpublished {
		query = query.Where("is_published = ?", true)
	}
	query = query.Order("created_at DESC")

	var posts []models.PostModel
	pag, err := pagination.Paginate(query, q, &posts)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return posts, pag, nil
}

// GetByID returns the post or nil when absent. Per-kind block invariants are
// restored on the way out, so callers always see a well-formed list.
func (s *Service) GetByID(id string, includeUnpublished bool) (*models.PostModel, error) {
	return s.getOne("id = ?", id, includeUnpublished)
}

// GetBySlug returns the post with the given slug or nil when absent.
func (s *Service) GetBySlug(slug string, includeUnpublished bool) (*models.PostModel, error) {
	return s.getOne("slug = ?", slug, includeUnpublished)
}

func (s *Service) getOne(cond string, arg interface{}, includeUnpublished bool) (*models.PostModel, error) {
	query := s.db.Where(cond, arg)
	if !includeUnpublished {
		query = query.Where("is_published = ?", true)
	}

	var post models.PostModel
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	post.Blocks = post.Blocks.Normalized()
	return &post, nil
}

// Create stores a new post with an empty block sequence.
func (s *Service) Create(dto CreatePostDTO) (*models.PostModel, error) {
	post := models.PostModel{
		Slug:       dto.Slug,
		Title:      dto.Title,
		Summary:    dto.Summary,
		CoverImage: dto.CoverImage,
		Blocks:     block.List{},
	}
	if dto.IsPublished != nil {
		post.IsPublished = *dto.IsPublished
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}
	s.log.Info("post created", zap.String("id", post.ID), zap.String("slug", post.Slug))
	return &post, nil
}

// Update patches post metadata. Returns nil when the post does not exist.
func (s *Service) Update(id string, dto UpdatePostDTO) (*models.PostModel, error) {
	post, err := s.GetByID(id, true)
	if err != nil || post == nil {
		return post, err
	}

	if dto.Slug != nil {
		post.Slug = *dto.Slug
	}
	if dto.Title != nil {
		post.Title = *dto.Title
	}
	if dto.Summary != nil {
		post.Summary = *dto.Summary
	}
	if dto.CoverImage != nil {
		post.CoverImage = *dto.CoverImage
	}
	if dto.IsPublished != nil {
		post.IsPublished = *dto.IsPublished
	}
	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Missing posts delete to the same end state.
func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.PostModel{}, "id = ?", id).Error
}

// SetPublished flips the publish flag. Returns nil when the post is absent.
func (s *Service) SetPublished(id string, published bool) (*models.PostModel, error) {
	post, err := s.GetByID(id, true)
	if err != nil || post == nil {
		return post, err
	}
	post.IsPublished = published
	if err := s.db.Save(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// mutateBlocks is the single write path for block state: load, transform the
// list as a value, persist the whole column. The transform must not touch the
// stored slice it was handed.
func (s *Service) mutateBlocks(postID string, transform func(block.List) (block.List, error)) (*models.PostModel, error) {
	post, err := s.GetByID(postID, true)
	if err != nil || post == nil {
		return post, err
	}

	next, err := transform(post.Blocks)
	if err != nil {
		return nil, err
	}
	post.Blocks = next.Normalized()

	if err := s.db.Model(post).Update("blocks", post.Blocks).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// AppendBlock adds a freshly seeded block of the given kind, at the end or at
// the clamped position when at is set.
func (s *Service) AppendBlock(postID string, dto AppendBlockDTO) (*models.PostModel, error) {
	if !dto.Kind.Valid() {
		return nil, ErrWrongKind
	}
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		b := block.New(dto.Kind)
		if dto.At != nil {
			return l.Insert(b, *dto.At), nil
		}
		return l.Append(b), nil
	})
}

// UpdateBlock patches the common fields of one block and optionally replaces
// its payload. An unknown block id leaves the post untouched.
func (s *Service) UpdateBlock(postID, blockID string, dto UpdateBlockDTO) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		var decodeErr error
		next := l.Update(blockID, func(b block.Block) block.Block {
			if dto.Title != nil {
				b.Title = *dto.Title
			}
			if dto.Description != nil {
				b.Description = *dto.Description
			}
			if dto.Source != nil {
				b.Source = *dto.Source
			}
			if dto.MediaURL != nil {
				b.MediaURL = *dto.MediaURL
			}
			if dto.OrderNumber != nil {
				n := *dto.OrderNumber
				b.OrderNumber = &n
			}
			if len(dto.Data) > 0 {
				payload, err := block.DecodePayload(b.Kind, dto.Data)
				if err != nil {
					decodeErr = err
					return b
				}
				b.Data = payload
			}
			return b
		})
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, decodeErr)
		}
		return next, nil
	})
}

// RemoveBlock drops a block from the sequence. Unknown ids are a no-op.
func (s *Service) RemoveBlock(postID, blockID string) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return l.Remove(blockID), nil
	})
}

// MoveBlock nudges a block one position up or down. At either boundary the
// move is a no-op.
func (s *Service) MoveBlock(postID, blockID, direction string) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		i := l.Index(blockID)
		if i < 0 {
			return l, nil
		}
		if direction == "up" {
			return l.MoveUp(i), nil
		}
		return l.MoveDown(i), nil
	})
}

// ReorderBlocks splices the block at from to before position to.
func (s *Service) ReorderBlocks(postID string, dto ReorderDTO) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return block.MoveBefore(l, dto.From, dto.To), nil
	})
}

// updateTyped locates the block, asserts its kind payload via get, applies
// the mutation, and stores the rebuilt payload back on the block.
func updateTyped[P block.Data](l block.List, blockID string, get func(*block.Block) P, apply func(P) (P, error)) (block.List, error) {
	target := l.Find(blockID)
	if target == nil {
		return nil, ErrUnknownBlock
	}
	payload := get(target)
	var zero P
	if any(payload) == any(zero) {
		return nil, ErrWrongKind
	}
	next, err := apply(payload)
	if err != nil {
		return nil, err
	}
	return l.Update(blockID, func(b block.Block) block.Block {
		b.Data = next
		return b
	}), nil
}

// Poll option operations.

func (s *Service) AddPollOption(postID, blockID string) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return updateTyped(l, blockID, (*block.Block).Poll, func(p *block.PollData) (*block.PollData, error) {
			next := p.AddOption()
			return &next, nil
		})
	})
}

func (s *Service) UpdatePollOption(postID, blockID, optionID string, dto UpdateOptionDTO) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return updateTyped(l, blockID, (*block.Block).Poll, func(p *block.PollData) (*block.PollData, error) {
			next := p.UpdateOption(optionID, applyOption(dto))
			return &next, nil
		})
	})
}

func (s *Service) RemovePollOption(postID, blockID, optionID string) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return updateTyped(l, blockID, (*block.Block).Poll, func(p *block.PollData) (*block.PollData, error) {
			next := p.RemoveOption(optionID)
			return &next, nil
		})
	})
}

func (s *Service) ReorderPollOptions(postID, blockID string, dto ReorderDTO) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return updateTyped(l, blockID, (*block.Block).Poll, func(p *block.PollData) (*block.PollData, error) {
			next := *p
			next.Options = block.MoveBefore(p.Options, dto.From, dto.To)
			return &next, nil
		})
	})
}

// UpdateVersusOption patches one side of a versus duel. Sides are fixed, so
// there is no add, remove, or reorder for versus.
func (s *Service) UpdateVersusOption(postID, blockID, optionID string, dto UpdateOptionDTO) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return updateTyped(l, blockID, (*block.Block).Versus, func(v *block.VersusData) (*block.VersusData, error) {
			next := v.UpdateOption(optionID, applyOption(dto))
			return &next, nil
		})
	})
}

func applyOption(dto UpdateOptionDTO) func(block.Option) block.Option {
	return func(o block.Option) block.Option {
		if dto.Text != nil {
			o.Text = *dto.Text
		}
		if dto.Image != nil {
			o.Image = *dto.Image
		}
		if dto.Votes != nil {
			o.Votes = *dto.Votes
		}
		return o
	}
}

// Quiz operations.

func (s *Service) updateQuiz(postID, blockID string, apply func(block.QuizData) block.QuizData) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return updateTyped(l, blockID, (*block.Block).Quiz, func(q *block.QuizData) (*block.QuizData, error) {
			next := apply(*q)
			return &next, nil
		})
	})
}

func (s *Service) UpdateQuizSettings(postID, blockID string, dto UpdateQuizDTO) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		if dto.QuizType != nil {
			q.QuizType = *dto.QuizType
		}
		if dto.QuestionSorting != nil {
			q.QuestionSorting = *dto.QuestionSorting
		}
		if dto.AllowMultiple != nil {
			q.AllowMultiple = *dto.AllowMultiple
		}
		if dto.ShowResults != nil {
			q.ShowResults = *dto.ShowResults
		}
		if dto.EndDate != nil {
			t := *dto.EndDate
			q.EndDate = &t
		}
		return q
	})
}

func (s *Service) AddQuizQuestion(postID, blockID string) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, block.QuizData.AddQuestion)
}

func (s *Service) UpdateQuizQuestion(postID, blockID, questionID string, dto UpdateQuestionDTO) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		return q.UpdateQuestion(questionID, func(question block.QuizQuestion) block.QuizQuestion {
			if dto.Title != nil {
				question.Title = *dto.Title
			}
			if dto.Image != nil {
				question.Image = *dto.Image
			}
			if dto.Description != nil {
				question.Description = *dto.Description
			}
			if dto.ShowOnCover != nil {
				question.ShowOnCover = *dto.ShowOnCover
			}
			if dto.Layout != nil {
				question.Layout = *dto.Layout
			}
			return question
		})
	})
}

func (s *Service) RemoveQuizQuestion(postID, blockID, questionID string) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		return q.RemoveQuestion(questionID)
	})
}

func (s *Service) ReorderQuizQuestions(postID, blockID string, dto ReorderDTO) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		q.Questions = block.MoveBefore(q.Questions, dto.From, dto.To)
		return q
	})
}

func (s *Service) AddQuizAnswer(postID, blockID, questionID string) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		return q.AddAnswer(questionID)
	})
}

func (s *Service) UpdateQuizAnswer(postID, blockID, questionID, answerID string, dto UpdateAnswerDTO) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		return q.UpdateAnswer(questionID, answerID, func(a block.QuizAnswer) block.QuizAnswer {
			if dto.Text != nil {
				a.Text = *dto.Text
			}
			if dto.Image != nil {
				a.Image = *dto.Image
			}
			if dto.ResultID != nil {
				a.ResultID = *dto.ResultID
			}
			if dto.IsCorrect != nil {
				a.IsCorrect = *dto.IsCorrect
			}
			return a
		})
	})
}

func (s *Service) RemoveQuizAnswer(postID, blockID, questionID, answerID string) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		return q.RemoveAnswer(questionID, answerID)
	})
}

func (s *Service) AddQuizResult(postID, blockID string) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, block.QuizData.AddResult)
}

func (s *Service) UpdateQuizResult(postID, blockID, resultID string, dto UpdateResultDTO) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		return q.UpdateResult(resultID, func(r block.QuizResult) block.QuizResult {
			if dto.Title != nil {
				r.Title = *dto.Title
			}
			if dto.Image != nil {
				r.Image = *dto.Image
			}
			if dto.Description != nil {
				r.Description = *dto.Description
			}
			if dto.MinScore != nil {
				r.MinScore = *dto.MinScore
			}
			if dto.MaxScore != nil {
				r.MaxScore = *dto.MaxScore
			}
			if dto.AnswerCount != nil {
				r.AnswerCount = *dto.AnswerCount
			}
			return r
		})
	})
}

// RemoveQuizResult drops a result. Answers referencing it keep their ids;
// those render as "no result selected" downstream.
func (s *Service) RemoveQuizResult(postID, blockID, resultID string) (*models.PostModel, error) {
	return s.updateQuiz(postID, blockID, func(q block.QuizData) block.QuizData {
		return q.RemoveResult(resultID)
	})
}

// Review operations. The derived score refreshes inside the block package on
// every breakdown mutation.

func (s *Service) updateReview(postID, blockID string, apply func(block.ReviewData) block.ReviewData) (*models.PostModel, error) {
	return s.mutateBlocks(postID, func(l block.List) (block.List, error) {
		return updateTyped(l, blockID, (*block.Block).Review, func(r *block.ReviewData) (*block.ReviewData, error) {
			next := apply(*r)
			return &next, nil
		})
	})
}

func (s *Service) AddBreakdownRow(postID, blockID string) (*models.PostModel, error) {
	return s.updateReview(postID, blockID, block.ReviewData.AddBreakdownRow)
}

func (s *Service) UpdateBreakdownRow(postID, blockID, rowID string, dto UpdateBreakdownDTO) (*models.PostModel, error) {
	return s.updateReview(postID, blockID, func(r block.ReviewData) block.ReviewData {
		return r.UpdateBreakdownRow(rowID, func(row block.BreakdownItem) block.BreakdownItem {
			if dto.Label != nil {
				row.Label = *dto.Label
			}
			if dto.Score != nil {
				row.Score = clampScore(*dto.Score)
			}
			return row
		})
	})
}

func (s *Service) RemoveBreakdownRow(postID, blockID, rowID string) (*models.PostModel, error) {
	return s.updateReview(postID, blockID, func(r block.ReviewData) block.ReviewData {
		return r.RemoveBreakdownRow(rowID)
	})
}

func (s *Service) SetProsCons(postID, blockID string, dto ProsConsDTO) (*models.PostModel, error) {
	return s.updateReview(postID, blockID, func(r block.ReviewData) block.ReviewData {
		if dto.Pros != nil {
			r.Pros = dto.Pros
		}
		if dto.Cons != nil {
			r.Cons = dto.Cons
		}
		return r
	})
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
