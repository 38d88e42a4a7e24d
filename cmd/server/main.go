package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"translate-bridge/internal/api"
	"translate-bridge/internal/history"
	"translate-bridge/internal/services"
	"translate-bridge/internal/translation_engine"
	"translate-bridge/internal/translator_provider"
	"translate-bridge/pkg/database"
	"translate-bridge/pkg/logging"
	"translate-bridge/pkg/types"
)

func main() {
	// Load application configuration from environment variables
	globalConfig, err := types.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger, err := logging.New(globalConfig.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	defer logger.Sync()

	if err := globalConfig.ValidateServer(); err != nil {
		logger.Fatal("invalid server config", zap.Error(err))
	}

	ctx := context.Background()

	// History is optional; without a database translations are served but not stored
	var historyRepo *history.Repository
	var recorder translation_engine.Recorder
	if globalConfig.Database.Enabled() {
		dbConfig := database.Config{
			Host:     globalConfig.Database.Host,
			Port:     globalConfig.Database.Port,
			User:     globalConfig.Database.User,
			Password: globalConfig.Database.Password,
			DBName:   globalConfig.Database.Name,
			SSLMode:  globalConfig.Database.SSLMode,
		}

		db, err := database.NewDB(ctx, dbConfig, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		historyRepo = history.NewRepository(db.DB)
		if err := historyRepo.Migrate(ctx); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		recorder = historyRepo
	} else {
		logger.Info("no database configured, translation history disabled")
	}

	// Initialize provider factory and create translator provider
	providerFactory := translator_provider.NewFactory(globalConfig)
	provider, err := providerFactory.CreateConfigured(ctx)
	if err != nil {
		logger.Fatal("failed to create translator provider", zap.Error(err))
	}
	logger.Info("translator provider ready", zap.String("provider", globalConfig.Translator.Provider))

	// Initialize services
	translationService := translation_engine.NewTranslationService(logger, provider, recorder)

	svc := services.NewServices(translationService, historyRepo)

	// Start the HTTP server
	runServer(logger, globalConfig, svc)
}

func runServer(logger *zap.Logger, cfg *types.Config, svc *services.Services) {

	apiServer := api.NewGinServer(logger, svc)
	// Create HTTP server
	addr := cfg.Server.GetServerAddress()
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      apiServer.GetRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", zap.String("address", addr), zap.String("env", cfg.Server.AppEnv))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Create channel to listen for interrupt signals (Ctrl+C)
	quit := make(chan os.Signal, 1)
	// Notify on SIGINT (Ctrl+C) and SIGTERM (kill command)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal
	<-quit
	logger.Info("shutting down server...")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
