package render

import (
	"github.com/blockpress/core/internal/middleware"
	"github.com/blockpress/core/internal/modules/content/post"
	"github.com/blockpress/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler serves rendered post previews.
type Handler struct {
	svc     *Service
	postSvc *post.Service
}

func NewHandler(svc *Service, postSvc *post.Service) *Handler {
	return &Handler{svc: svc, postSvc: postSvc}
}

// RegisterRoutes mounts render routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/render/posts/:id", h.renderPost)
}

// renderPost GET /render/posts/:id
func (h *Handler) renderPost(c *gin.Context) {
	p, err := h.postSvc.GetByID(c.Param("id"), middleware.IsAuthenticated(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if p == nil {
		response.NotFoundMsg(c, "post not found")
		return
	}
	response.OK(c, h.svc.RenderBlocks(p.Blocks))
}
