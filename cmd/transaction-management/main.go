package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"transaction-management/internal/api"
	"transaction-management/internal/api/handlers"
	"transaction-management/internal/cache"
	"transaction-management/internal/repository"
	"transaction-management/internal/service"
	"transaction-management/pkg/config"
	"transaction-management/pkg/logger"
	"transaction-management/pkg/postgres"

	"go.uber.org/zap"
)

// @title Transaction Management API
// @version 1.0
// @description CRUD API for financial transaction records with a read-through, write-invalidate cache.

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting transaction management service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	txnRepo := repository.NewTransactionRepository(db, appLogger)

	txnCache := cache.New(cache.Config{
		Capacity:           cfg.Cache.Capacity,
		NumShards:          cfg.Cache.NumShards,
		TTL:                cfg.Cache.TTL,
		EvictionPercentage: cfg.Cache.EvictionPercentage,
	})
	appLogger.Info("Transaction cache initialized",
		zap.Int("capacity", cfg.Cache.Capacity),
		zap.Duration("ttl", cfg.Cache.TTL),
	)

	txnService := service.NewTransactionService(txnRepo, txnCache, appLogger)
	txnHandler := handlers.NewTransactionHandler(txnService, appLogger)

	app := api.SetupRouter(txnHandler, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
