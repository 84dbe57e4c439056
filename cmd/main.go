package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"onmo-campaigns/internal/adapter/dynamo"
	httpadapter "onmo-campaigns/internal/adapter/http"
	openaiadapter "onmo-campaigns/internal/adapter/openai"
	"onmo-campaigns/internal/adapter/usecase"
	"onmo-campaigns/internal/config"
)

// main is the entry point of the campaign service. It loads configuration,
// constructs the store and suggestion clients once, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server. Missing required configuration (table name, API credential) is a
// startup failure, never a per-request one.
func main() {
	// A local .env is a development convenience; the OS environment wins.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Both outbound clients are built once and reused across requests.
	store, err := dynamo.NewClient(ctx, cfg.Dynamo)
	if err != nil {
		logger.Error("dynamodb client error", slog.Any("error", err))
		os.Exit(1)
	}

	repo := dynamo.NewCampaignRepository(store, cfg.Dynamo.Table)
	suggester := openaiadapter.NewSuggester(cfg.OpenAI)
	svc := usecase.NewCampaignUseCase(repo, suggester)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("table", cfg.Dynamo.Table))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
