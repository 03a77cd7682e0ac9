// Package server assembles the gin router from the service layer.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "dream/internal/docs" // Swagger docs
	"dream/internal/handlers"
	"dream/internal/middleware"
	"dream/internal/services"
)

// Services bundles everything the routes need.
type Services struct {
	Ledger     services.LedgerServicer
	Analytics  services.AnalyticsServicer
	Categories services.CategoryServicer
	Entries    services.EntryServicer
	Advisor    services.AdvisorServicer
	Auth       services.AuthServicer
}

// Options configures NewRouter.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Location  *time.Location
	// RequestLogging adds the zap request logger.
	RequestLogging bool
	Swagger        bool
}

// NewRouter builds the HTTP API. Routes under /api/v1 other than
// /auth/unlock require a bearer token when passcode auth is enabled.
func NewRouter(svc Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Auth, opts.JWTSecret, opts.TokenTTL)
	transactionHandler := handlers.NewTransactionHandler(svc.Ledger, opts.Location)
	budgetHandler := handlers.NewBudgetHandler(svc.Ledger)
	assetHandler := handlers.NewAssetHandler(svc.Ledger, svc.Analytics)
	analyticsHandler := handlers.NewAnalyticsHandler(svc.Analytics)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories)
	entryHandler := handlers.NewEntryHandler(svc.Entries)
	advisorHandler := handlers.NewAdvisorHandler(svc.Advisor)

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.RequestLogging {
		router.Use(middleware.RequestLogging())
	}
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	v1.POST("/auth/unlock", authHandler.Unlock)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(opts.JWTSecret, svc.Auth.Enabled()))

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.ReplaceTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := protected.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("", budgetHandler.UpsertBudget)

	assets := protected.Group("/assets")
	assets.GET("", assetHandler.GetAssets)
	assets.GET("/total", assetHandler.GetAssetTotal)
	assets.PUT("/:id", assetHandler.UpdateAsset)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("/summary", analyticsHandler.GetSummary)
	dashboard.GET("/days", analyticsHandler.GetDays)

	analytics := protected.Group("/analytics")
	analytics.GET("/budgets", analyticsHandler.GetBudgetProgress)
	analytics.GET("/daily", analyticsHandler.GetDailySeries)
	analytics.GET("/categories", analyticsHandler.GetCategoryBreakdown)

	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/names", categoryHandler.GetCategoryNames)
	categories.GET("/icon", categoryHandler.GetCategoryIcon)

	entries := protected.Group("/entries")
	entries.POST("", entryHandler.OpenEntry)
	entries.GET("/:id", entryHandler.GetEntry)
	entries.PATCH("/:id", entryHandler.UpdateEntry)
	entries.DELETE("/:id", entryHandler.DiscardEntry)
	entries.POST("/:id/type", entryHandler.SwitchType)
	entries.POST("/:id/select", entryHandler.SelectNode)
	entries.POST("/:id/ascend", entryHandler.Ascend)
	entries.POST("/:id/receipt", entryHandler.ScanReceipt)
	entries.POST("/:id/submit", entryHandler.SubmitEntry)

	protected.POST("/advisor/ask", advisorHandler.Ask)

	return router
}
