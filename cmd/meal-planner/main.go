package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"smart-meal-planner/internal/config"
	"smart-meal-planner/internal/database"
	"smart-meal-planner/internal/llm"
	"smart-meal-planner/internal/metrics"
	"smart-meal-planner/internal/planner"
	"smart-meal-planner/internal/server"
	"smart-meal-planner/internal/snapshot"
)

func main() {
	// A missing .env is fine in production; variables come from the
	// environment there.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg, err := config.NewFromEnv()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var textGen llm.TextGenerator
	switch cfg.Provider {
	case config.ProviderGemini:
		textGen, err = llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			return err
		}
	default:
		textGen = llm.NewOpenRouterClient(cfg)
	}
	if closer, ok := textGen.(llm.Closer); ok {
		defer closer.Close()
	}

	db, err := database.NewDB(cfg.MetricsDBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	metricsStore := metrics.NewStore(db.SQL)

	gateway, err := snapshot.NewGateway(cfg)
	if err != nil {
		return err
	}

	svc := planner.NewService(textGen, metricsStore, logger)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewServer(svc, gateway, logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("provider", cfg.Provider))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
