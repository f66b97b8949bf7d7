package auth

import (
	"errors"

	"github.com/blockpress/core/internal/middleware"
	"github.com/blockpress/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles auth HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	grp := rg.Group("/auth")
	grp.POST("/login", h.login)
	grp.POST("/register", h.register)
	grp.GET("/check", h.check)
	grp.GET("/me", authMW, h.me)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, u, err := h.svc.Login(dto.Username, dto.Password)
	if errors.Is(err, errUserNotFound) || errors.Is(err, errWrongPassword) {
		response.Unauthorized(c)
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "user": u})
}

// register POST /auth/register
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.svc.Register(&dto)
	if errors.Is(err, errOwnerAlreadyExists) {
		response.Conflict(c, err.Error())
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, u)
}

// check GET /auth/check
func (h *Handler) check(c *gin.Context) {
	response.OK(c, gin.H{"registered": h.svc.IsRegistered()})
}

// me GET /auth/me
func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, u)
}
