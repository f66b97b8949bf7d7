package app

import (
	"net/http"
	"time"

	"github.com/blockpress/core/internal/middleware"
	"github.com/blockpress/core/internal/modules/auth"
	"github.com/blockpress/core/internal/modules/content/post"
	"github.com/blockpress/core/internal/modules/processing/render"
	pkgredis "github.com/blockpress/core/internal/pkg/redis"
	"github.com/blockpress/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})

	appInfo := gin.H{
		"name":    "blockpress-core",
		"version": "1.0.0",
	}

	// Rate limiting and idempotence run on every route (requires Redis).
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:             15 * time.Second,
		EnableCDNHeader: true,
		Disable:         a.cfg.IsDev(),
		SkipPaths:       []string{apiPrefix + "/auth*"},
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"timestamp": time.Since(processStart).Milliseconds()})
	})

	authSvc := auth.NewService(a.db)
	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)

	postSvc := post.NewService(a.db, a.logger)
	post.NewHandler(postSvc).RegisterRoutes(api, authMW)

	renderSvc := render.NewService()
	render.NewHandler(renderSvc, postSvc).RegisterRoutes(api)
}
