package api

import (
	"github.com/gin-gonic/gin"

	"github.com/PatriceWisniewsky/MotionCut/internal/api/handlers"
	"github.com/PatriceWisniewsky/MotionCut/internal/api/middleware"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/auth"
	"github.com/PatriceWisniewsky/MotionCut/internal/logger"
)

type Router struct {
	engine           *gin.Engine
	log              *logger.Logger
	authMiddleware   *middleware.AuthMiddleware
	authHandler      *handlers.AuthHandler
	templateHandler  *handlers.TemplateHandler
	previewHandler   *handlers.PreviewHandler
	blueprintHandler *handlers.BlueprintHandler
	historyHandler   *handlers.HistoryHandler
}

func NewRouter(
	log *logger.Logger,
	authService *auth.Service,
	authHandler *handlers.AuthHandler,
	templateHandler *handlers.TemplateHandler,
	previewHandler *handlers.PreviewHandler,
	blueprintHandler *handlers.BlueprintHandler,
	historyHandler *handlers.HistoryHandler,
) *Router {
	return &Router{
		log:              log,
		authMiddleware:   middleware.NewAuthMiddleware(authService),
		authHandler:      authHandler,
		templateHandler:  templateHandler,
		previewHandler:   previewHandler,
		blueprintHandler: blueprintHandler,
		historyHandler:   historyHandler,
	}
}

func (r *Router) Setup(mode string) *gin.Engine {
	gin.SetMode(mode)
	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestLogger(r.log))

	r.setupRoutes()
	return r.engine
}

func (r *Router) setupRoutes() {
	api := r.engine.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Auth routes (public)
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", r.authHandler.Register)
		authRoutes.POST("/login", r.authHandler.Login)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(r.authMiddleware.Authenticate())
	{
		protected.GET("/auth/me", r.authHandler.Me)

		// Template catalog, materialized forms, frame previews
		templates := protected.Group("/templates")
		{
			templates.GET("", r.templateHandler.List)
			templates.GET("/:id", r.templateHandler.Get)
			templates.GET("/:id/form", r.templateHandler.Form)
			templates.POST("/:id/form", r.templateHandler.ApplyChange)
			templates.GET("/:id/preview", r.previewHandler.Frame)
		}

		// Blueprints
		blueprints := protected.Group("/blueprints")
		{
			blueprints.POST("", r.blueprintHandler.Create)
			blueprints.GET("", r.blueprintHandler.List)
			blueprints.GET("/:id", r.blueprintHandler.Get)
			blueprints.PUT("/:id", r.blueprintHandler.Update)
			blueprints.DELETE("/:id", r.blueprintHandler.Delete)
			blueprints.POST("/:id/duplicate", r.blueprintHandler.Duplicate)
		}

		// Render history
		hist := protected.Group("/history")
		{
			hist.GET("", r.historyHandler.List)
			hist.POST("", r.historyHandler.Create)
			hist.PATCH("/:id/status", r.historyHandler.UpdateStatus)
		}
	}
}
