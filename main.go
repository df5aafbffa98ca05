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

	"fincalc/config"
	httpLayer "fincalc/http"
	"fincalc/logging"
	"fincalc/repository"
	"fincalc/service"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.InitLog(cfg.Service.LogLevel)
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	repo := repository.NewCalculationRepositoryMemory()

	var cache repository.CacheRepository
	if cfg.Redis.Address != "" {
		redisCache := repository.NewRedisCache(cfg.Redis.Address, cfg.Redis.TTL)
		if err := redisCache.Ping(context.Background()); err != nil {
			logger.Warn("redis unreachable, using in-process cache", zap.Error(err))
			cache = repository.NewMockCache()
		} else {
			logger.Info("redis cache connected", zap.String("address", cfg.Redis.Address))
			cache = redisCache
		}
	} else {
		cache = repository.NewMockCache()
	}

	calculatorService := service.NewCalculatorService(repo, cache)

	calculatorHandler := httpLayer.NewCalculatorHandler(calculatorService)

	projectionService := service.NewProjectionService(calculatorService)
	projectionHandler := httpLayer.NewProjectionHandler(projectionService)

	comparisonService := service.NewComparisonService(calculatorService)
	comparisonHandler := httpLayer.NewComparisonHandler(comparisonService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.Service.RateLimitRequests, cfg.Service.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(logger, rateLimiter,
		calculatorHandler, projectionHandler, comparisonHandler)

	server := &http.Server{
		Addr:         cfg.Service.Address,
		Handler:      router,
		ReadTimeout:  cfg.Service.ReadTimeout,
		WriteTimeout: cfg.Service.WriteTimeout,
		IdleTimeout:  cfg.Service.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("address", cfg.Service.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Fatal("error starting server", zap.Error(err))
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
