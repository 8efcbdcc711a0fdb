// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	analyticsController   *controller.AnalyticsController
	categoryController    *controller.CategoryController
	writeRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	analyticsController *controller.AnalyticsController,
	categoryController *controller.CategoryController,
	writeRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		analyticsController:   analyticsController,
		categoryController:    categoryController,
		writeRateLimiter:      writeRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
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
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				// Fixed paths are registered before /:id.
				transactions.GET("/summary", r.analyticsController.Summary)
				transactions.GET("/categories", r.categoryController.List)

				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.writeRateLimiter.Middleware(), r.transactionController.Create)
				transactions.PATCH("/:id", r.writeRateLimiter.Middleware(), r.transactionController.Update)
				transactions.DELETE("/:id", r.writeRateLimiter.Middleware(), r.transactionController.Delete)
			}
		}
	}
}
