package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/PatriceWisniewsky/MotionCut/config"
	"github.com/PatriceWisniewsky/MotionCut/internal/api"
	"github.com/PatriceWisniewsky/MotionCut/internal/api/handlers"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/auth"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/blueprint"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/composition"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/history"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/validation"
	"github.com/PatriceWisniewsky/MotionCut/internal/logger"
	"github.com/PatriceWisniewsky/MotionCut/internal/store"
	"github.com/PatriceWisniewsky/MotionCut/internal/store/local"
	"github.com/PatriceWisniewsky/MotionCut/internal/store/postgres"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logg, err := logger.New(cfg.Server.Mode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logg.Sync()

	// Validate critical configuration
	if cfg.JWT.Secret == "" {
		logg.Fatal("JWT_SECRET environment variable is required")
	}

	// Storage mode is resolved exactly once, here.
	db, cleanup, err := openStore(cfg, logg)
	if err != nil {
		logg.Fatal("Failed to open storage", "error", err)
	}
	defer cleanup()

	// Initialize repositories
	authRepo := auth.NewRepository(db)
	compositionRepo := composition.NewRepository(db)
	blueprintRepo := blueprint.NewRepository(db)
	historyRepo := history.NewRepository(db)

	// Initialize services
	authService := auth.NewService(authRepo, &cfg.JWT)
	compositionService := composition.NewService(compositionRepo)
	validator := validation.NewValidator()
	blueprintService := blueprint.NewService(blueprintRepo, compositionService, validator)
	historyService := history.NewService(historyRepo)

	// Make sure every registry template has a composition_types row.
	if err := compositionService.EnsureSeeded(context.Background()); err != nil {
		logg.Fatal("Failed to seed composition types", "error", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	templateHandler := handlers.NewTemplateHandler()
	previewHandler := handlers.NewPreviewHandler()
	blueprintHandler := handlers.NewBlueprintHandler(blueprintService)
	historyHandler := handlers.NewHistoryHandler(historyService)

	// Setup router
	router := api.NewRouter(
		logg,
		authService,
		authHandler,
		templateHandler,
		previewHandler,
		blueprintHandler,
		historyHandler,
	)

	engine := router.Setup(cfg.Server.Mode)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logg.Info("Shutting down server")
		cleanup()
		logg.Sync()
		os.Exit(0)
	}()

	// Start server
	logg.Info("Starting server", "port", cfg.Server.Port, "storage", cfg.Storage.Mode)
	if err := engine.Run(":" + cfg.Server.Port); err != nil {
		logg.Fatal("Failed to start server", "error", err)
	}
}

func openStore(cfg *config.Config, logg *logger.Logger) (store.Executor, func(), error) {
	if cfg.Storage.Mode == config.StoragePostgres {
		client, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		logg.Info("Connected to database", "host", cfg.Database.Host)
		return client, func() { client.Close() }, nil
	}

	client, err := local.Open(cfg.Storage.DataDir)
	if err != nil {
		return nil, nil, err
	}
	logg.Info("Using local file store", "dir", cfg.Storage.DataDir)
	return client, func() {}, nil
}
