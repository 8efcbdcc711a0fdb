// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/application/usecase/analytics"
	"github.com/spendwise/backend/internal/application/usecase/category"
	"github.com/spendwise/backend/internal/application/usecase/transaction"
	"github.com/spendwise/backend/internal/infra/server/router"
	"github.com/spendwise/backend/internal/integration/adapters"
	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
	"github.com/spendwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, which disables the summary cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) *Injector {
	// Repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)

	// Adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	var summaryCache adapter.SummaryCache
	if cfg.SummaryCache.Enabled && redisClient != nil {
		summaryCache = adapters.NewSummaryCache(redisClient, cfg.SummaryCache.TTL)
	}

	// Use cases
	listUseCase := transaction.NewListTransactionsUseCase(transactionRepo, cfg.Pagination.MaxPageSize)
	createUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, summaryCache)
	updateUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, summaryCache)
	deleteUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)
	summaryUseCase := analytics.NewGetSummaryUseCase(analyticsRepo, summaryCache)
	listCategoriesUseCase := category.NewListCategoriesUseCase(transactionRepo)

	// Controllers and middleware
	healthController := controller.NewHealthController(dbHealthChecker)
	transactionController := controller.NewTransactionController(listUseCase, createUseCase, updateUseCase, deleteUseCase)
	analyticsController := controller.NewAnalyticsController(summaryUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	writeRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		transactionController,
		analyticsController,
		categoryController,
		writeRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
