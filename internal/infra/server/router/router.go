// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/study-cards/backend/internal/integration/entrypoint/controller"
	"github.com/study-cards/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	cardController      *controller.CardController
	reportController    *controller.ReportController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
	reportKeyMiddleware *middleware.ReportKeyMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	cardController *controller.CardController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	reportKeyMiddleware *middleware.ReportKeyMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		cardController:      cardController,
		reportController:    reportController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
		reportKeyMiddleware: reportKeyMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Card routes (require authentication)
		if r.cardController != nil && r.authMiddleware != nil {
			cards := v1.Group("/cards")
			cards.Use(r.authMiddleware.Authenticate())
			{
				cards.GET("", r.cardController.List)
				cards.POST("", r.cardController.Create)
				cards.GET("/:id", r.cardController.Get)
				cards.PATCH("/:id", r.cardController.Update)
				cards.DELETE("/:id", r.cardController.Delete)
				cards.POST("/:id/attachments", r.cardController.Attach)
				cards.GET("/:id/attachments", r.cardController.ListAttachments)
				cards.GET("/:id/attachments/:key/url", r.cardController.AttachmentURL)
			}
		}

		// Reporting routes (guarded by the static report key when configured)
		if r.reportController != nil && r.reportKeyMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.reportKeyMiddleware.Enforce())
			{
				reports.GET("/finance", r.reportController.GetReport)
				reports.GET("/finance/history", r.reportController.GetHistory)
			}
		}
	}
}
