package post

import (
	"errors"

	"github.com/blockpress/core/internal/middleware"
	"github.com/blockpress/core/internal/models"
	"github.com/blockpress/core/internal/pkg/pagination"
	"github.com/blockpress/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles post HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts post routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	posts := rg.Group("/posts")

	posts.GET("", h.list)
	posts.GET("/:id", h.getByID)
	posts.GET("/slug/:slug", h.getBySlug)

	authed := posts.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
	authed.PATCH("/:id/publish", h.publish)

	blocks := authed.Group("/:id/blocks")
	blocks.POST("", h.appendBlock)
	blocks.POST("/reorder", h.reorderBlocks)
	blocks.PUT("/:blockId", h.updateBlock)
	blocks.DELETE("/:blockId", h.removeBlock)
	blocks.POST("/:blockId/move", h.moveBlock)

	blocks.POST("/:blockId/options", h.addOption)
	blocks.POST("/:blockId/options/reorder", h.reorderOptions)
	blocks.PUT("/:blockId/options/:optionId", h.updateOption)
	blocks.DELETE("/:blockId/options/:optionId", h.removeOption)

	blocks.PUT("/:blockId/quiz", h.updateQuizSettings)
	blocks.POST("/:blockId/questions", h.addQuestion)
	blocks.POST("/:blockId/questions/reorder", h.reorderQuestions)
	blocks.PUT("/:blockId/questions/:questionId", h.updateQuestion)
	blocks.DELETE("/:blockId/questions/:questionId", h.removeQuestion)
	blocks.POST("/:blockId/questions/:questionId/answers", h.addAnswer)
	blocks.PUT("/:blockId/questions/:questionId/answers/:answerId", h.updateAnswer)
	blocks.DELETE("/:blockId/questions/:questionId/answers/:answerId", h.removeAnswer)
	blocks.POST("/:blockId/results", h.addResult)
	blocks.PUT("/:blockId/results/:resultId", h.updateResult)
	blocks.DELETE("/:blockId/results/:resultId", h.removeResult)

	blocks.POST("/:blockId/breakdown", h.addBreakdownRow)
	blocks.PUT("/:blockId/breakdown/:rowId", h.updateBreakdownRow)
	blocks.DELETE("/:blockId/breakdown/:rowId", h.removeBreakdownRow)
	blocks.PUT("/:blockId/pros-cons", h.setProsCons)
}

// list GET /posts
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	posts, pag, err := h.svc.List(q, middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]postResponse, len(posts))
	for i, p := range posts {
		items[i] = toResponse(&p)
	}
	response.Paged(c, items, pag)
}

// getByID GET /posts/:id
func (h *Handler) getByID(c *gin.Context) {
	post, err := h.svc.GetByID(c.Param("id"), middleware.IsAuthenticated(c))
	h.respondPost(c, post, err)
}

// getBySlug GET /posts/slug/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Param("slug"), middleware.IsAuthenticated(c))
	h.respondPost(c, post, err)
}

// create POST /posts
func (h *Handler) create(c *gin.Context) {
	var dto CreatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Create(dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	resp := toResponse(post)
	response.Created(c, resp)
}

// update PUT /posts/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdatePostDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.Update(c.Param("id"), dto)
	h.respondPost(c, post, err)
}

// delete DELETE /posts/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// publish PATCH /posts/:id/publish
func (h *Handler) publish(c *gin.Context) {
	var dto struct {
		IsPublished *bool `json:"isPublished" binding:"required"`
	}
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.SetPublished(c.Param("id"), *dto.IsPublished)
	h.respondPost(c, post, err)
}

// appendBlock POST /posts/:id/blocks
func (h *Handler) appendBlock(c *gin.Context) {
	var dto AppendBlockDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.AppendBlock(c.Param("id"), dto)
	h.respondPost(c, post, err)
}

// updateBlock PUT /posts/:id/blocks/:blockId
func (h *Handler) updateBlock(c *gin.Context) {
	var dto UpdateBlockDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.UpdateBlock(c.Param("id"), c.Param("blockId"), dto)
	h.respondPost(c, post, err)
}

// removeBlock DELETE /posts/:id/blocks/:blockId
func (h *Handler) removeBlock(c *gin.Context) {
	post, err := h.svc.RemoveBlock(c.Param("id"), c.Param("blockId"))
	h.respondPost(c, post, err)
}

// moveBlock POST /posts/:id/blocks/:blockId/move
func (h *Handler) moveBlock(c *gin.Context) {
	var dto MoveBlockDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.MoveBlock(c.Param("id"), c.Param("blockId"), dto.Direction)
	h.respondPost(c, post, err)
}

// reorderBlocks POST /posts/:id/blocks/reorder
func (h *Handler) reorderBlocks(c *gin.Context) {
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.ReorderBlocks(c.Param("id"), dto)
	h.respondPost(c, post, err)
}

// addOption POST /posts/:id/blocks/:blockId/options
func (h *Handler) addOption(c *gin.Context) {
	post, err := h.svc.AddPollOption(c.Param("id"), c.Param("blockId"))
	h.respondPost(c, post, err)
}

// updateOption PUT /posts/:id/blocks/:blockId/options/:optionId
//
// Poll options and versus sides share the option shape; versus blocks are
// routed to the versus mutation by kind.
func (h *Handler) updateOption(c *gin.Context) {
	var dto UpdateOptionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.svc.UpdatePollOption(c.Param("id"), c.Param("blockId"), c.Param("optionId"), dto)
	if errors.Is(err, ErrWrongKind) {
		post, err = h.svc.UpdateVersusOption(c.Param("id"), c.Param("blockId"), c.Param("optionId"), dto)
	}
	h.respondPost(c, post, err)
}

// removeOption DELETE /posts/:id/blocks/:blockId/options/:optionId
func (h *Handler) removeOption(c *gin.Context) {
	post, err := h.svc.RemovePollOption(c.Param("id"), c.Param("blockId"), c.Param("optionId"))
	h.respondPost(c, post, err)
}

// reorderOptions POST /posts/:id/blocks/:blockId/options/reorder
func (h *Handler) reorderOptions(c *gin.Context) {
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.ReorderPollOptions(c.Param("id"), c.Param("blockId"), dto)
	h.respondPost(c, post, err)
}

// updateQuizSettings PUT /posts/:id/blocks/:blockId/quiz
func (h *Handler) updateQuizSettings(c *gin.Context) {
	var dto UpdateQuizDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.UpdateQuizSettings(c.Param("id"), c.Param("blockId"), dto)
	h.respondPost(c, post, err)
}

// addQuestion POST /posts/:id/blocks/:blockId/questions
func (h *Handler) addQuestion(c *gin.Context) {
	post, err := h.svc.AddQuizQuestion(c.Param("id"), c.Param("blockId"))
	h.respondPost(c, post, err)
}

// updateQuestion PUT /posts/:id/blocks/:blockId/questions/:questionId
func (h *Handler) updateQuestion(c *gin.Context) {
	var dto UpdateQuestionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.UpdateQuizQuestion(c.Param("id"), c.Param("blockId"), c.Param("questionId"), dto)
	h.respondPost(c, post, err)
}

// removeQuestion DELETE /posts/:id/blocks/:blockId/questions/:questionId
func (h *Handler) removeQuestion(c *gin.Context) {
	post, err := h.svc.RemoveQuizQuestion(c.Param("id"), c.Param("blockId"), c.Param("questionId"))
	h.respondPost(c, post, err)
}

// reorderQuestions POST /posts/:id/blocks/:blockId/questions/reorder
func (h *Handler) reorderQuestions(c *gin.Context) {
	var dto ReorderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.ReorderQuizQuestions(c.Param("id"), c.Param("blockId"), dto)
	h.respondPost(c, post, err)
}

// addAnswer POST /posts/:id/blocks/:blockId/questions/:questionId/answers
func (h *Handler) addAnswer(c *gin.Context) {
	post, err := h.svc.AddQuizAnswer(c.Param("id"), c.Param("blockId"), c.Param("questionId"))
	h.respondPost(c, post, err)
}

// updateAnswer PUT /posts/:id/blocks/:blockId/questions/:questionId/answers/:answerId
func (h *Handler) updateAnswer(c *gin.Context) {
	var dto UpdateAnswerDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.UpdateQuizAnswer(c.Param("id"), c.Param("blockId"), c.Param("questionId"), c.Param("answerId"), dto)
	h.respondPost(c, post, err)
}

// removeAnswer DELETE /posts/:id/blocks/:blockId/questions/:questionId/answers/:answerId
func (h *Handler) removeAnswer(c *gin.Context) {
	post, err := h.svc.RemoveQuizAnswer(c.Param("id"), c.Param("blockId"), c.Param("questionId"), c.Param("answerId"))
	h.respondPost(c, post, err)
}

// addResult POST /posts/:id/blocks/:blockId/results
func (h *Handler) addResult(c *gin.Context) {
	post, err := h.svc.AddQuizResult(c.Param("id"), c.Param("blockId"))
	h.respondPost(c, post, err)
}

// updateResult PUT /posts/:id/blocks/:blockId/results/:resultId
func (h *Handler) updateResult(c *gin.Context) {
	var dto UpdateResultDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.UpdateQuizResult(c.Param("id"), c.Param("blockId"), c.Param("resultId"), dto)
	h.respondPost(c, post, err)
}

// removeResult DELETE /posts/:id/blocks/:blockId/results/:resultId
func (h *Handler) removeResult(c *gin.Context) {
	post, err := h.svc.RemoveQuizResult(c.Param("id"), c.Param("blockId"), c.Param("resultId"))
	h.respondPost(c, post, err)
}

// addBreakdownRow POST /posts/:id/blocks/:blockId/breakdown
func (h *Handler) addBreakdownRow(c *gin.Context) {
	post, err := h.svc.AddBreakdownRow(c.Param("id"), c.Param("blockId"))
	h.respondPost(c, post, err)
}

// updateBreakdownRow PUT /posts/:id/blocks/:blockId/breakdown/:rowId
func (h *Handler) updateBreakdownRow(c *gin.Context) {
	var dto UpdateBreakdownDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.UpdateBreakdownRow(c.Param("id"), c.Param("blockId"), c.Param("rowId"), dto)
	h.respondPost(c, post, err)
}

// removeBreakdownRow DELETE /posts/:id/blocks/:blockId/breakdown/:rowId
func (h *Handler) removeBreakdownRow(c *gin.Context) {
	post, err := h.svc.RemoveBreakdownRow(c.Param("id"), c.Param("blockId"), c.Param("rowId"))
	h.respondPost(c, post, err)
}

// setProsCons PUT /posts/:id/blocks/:blockId/pros-cons
func (h *Handler) setProsCons(c *gin.Context) {
	var dto ProsConsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.SetProsCons(c.Param("id"), c.Param("blockId"), dto)
	h.respondPost(c, post, err)
}

// respondPost maps the service result convention to HTTP: nil post means the
// post does not exist, sentinel errors map to client errors.
func (h *Handler) respondPost(c *gin.Context, post *models.PostModel, err error) {
	switch {
	case errors.Is(err, ErrUnknownBlock):
		response.NotFoundMsg(c, "block not found")
	case errors.Is(err, ErrWrongKind), errors.Is(err, ErrInvalidPayload):
		response.UnprocessableEntity(c, err.Error())
	case err != nil:
		response.InternalError(c, err)
	case post == nil:
		response.NotFoundMsg(c, "post not found")
	default:
		response.OK(c, toResponse(post))
	}
}
