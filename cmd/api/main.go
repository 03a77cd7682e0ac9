package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"dream/internal/advisor"
	"dream/internal/cache"
	"dream/internal/category"
	"dream/internal/config"
	"dream/internal/database"
	"dream/internal/entry"
	"dream/internal/events"
	"dream/internal/ledger"
	"dream/internal/logger"
	"dream/internal/server"
	"dream/internal/services"
	"dream/internal/storage"
	"dream/internal/validator"
)

// @title           Dream API
// @version         1.0
// @description     Dream is a personal ledger: quick expense and income entry over a category tree, budgets, assets and spending analytics.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const (
	maxOpenSessions = 256
	janitorInterval = time.Minute
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(cfg.DatabaseConfig())
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	trees, err := loadTrees(cfg.CategoryTreeFile)
	if err != nil {
		return err
	}

	ai := newAdvisor(ctx, cfg, trees)
	defer ai.Close()

	publisher := newPublisher(cfg)
	defer publisher.Close()

	validator.Register()

	now := func() time.Time { return time.Now().In(cfg.Location) }
	repo := ledger.NewRepository(storage.NewGormStore(dbManager.DB()))
	sessions := cache.NewLRUCache[*entry.Session](maxOpenSessions, cfg.SessionTTL)

	ledgerService := services.NewLedgerService(ctx, repo, publisher, trees, now)
	svc := server.Services{
		Ledger:     ledgerService,
		Analytics:  services.NewAnalyticsService(ledgerService, trees, now),
		Categories: services.NewCategoryService(trees),
		Entries: services.NewEntryService(services.EntryOptions{
			Sessions: sessions,
			Ledger:   ledgerService,
			Advisor:  ai,
			Trees:    trees,
			Now:      now,
		}),
		Advisor: services.NewAdvisorService(ledgerService, ai),
		Auth:    services.NewAuthService(cfg.PasscodeHash),
	}
	if !svc.Auth.Enabled() {
		log.Warn("PASSCODE_HASH not set, API is unauthenticated")
	}

	router := server.NewRouter(svc, server.Options{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.JWTExpirationDur,
		Location:       cfg.Location,
		RequestLogging: true,
		Swagger:        true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Starting Dream server on port %s", cfg.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return cache.NewJanitor(janitorInterval, sessions).Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Server stopped gracefully")
	return nil
}

func loadTrees(path string) (category.Trees, error) {
	if path == "" {
		return category.DefaultTrees(), nil
	}
	trees, err := category.LoadTree(path)
	if err != nil {
		return category.Trees{}, fmt.Errorf("failed to load category trees: %w", err)
	}
	logger.Get().Infow("category trees loaded", "path", path)
	return trees, nil
}

func newAdvisor(ctx context.Context, cfg *config.Config, trees category.Trees) advisor.Advisor {
	if cfg.GeminiAPIKey == "" {
		logger.Get().Warn("GEMINI_API_KEY not set, advisor and receipt scanning disabled")
		return advisor.Disabled{}
	}
	g, err := advisor.NewGemini(ctx, advisor.Options{
		APIKey:      cfg.GeminiAPIKey,
		TextModel:   cfg.GeminiTextModel,
		VisionModel: cfg.GeminiVisionModel,
		Categories:  trees.Expense.Names(),
		Timeout:     cfg.AITimeout,
	})
	if err != nil {
		logger.Get().Errorw("advisor unavailable", "error", err)
		return advisor.Disabled{}
	}
	return g
}

func newPublisher(cfg *config.Config) events.Publisher {
	if cfg.AMQPURL == "" {
		return events.NoopPublisher{}
	}
	p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Get().Errorw("event publishing disabled", "error", err)
		return events.NoopPublisher{}
	}
	return p
}
