package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/stemsi/aptify-backend/internal/config"
	"github.com/stemsi/aptify-backend/internal/fallback"
	"github.com/stemsi/aptify-backend/internal/generator"
	"github.com/stemsi/aptify-backend/internal/handler"
	"github.com/stemsi/aptify-backend/internal/logger"
	"github.com/stemsi/aptify-backend/internal/router"
	"github.com/stemsi/aptify-backend/internal/service"
	"github.com/stemsi/aptify-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Aptify Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Initialize Question Sources ───────────────────────────────────
	genCfg := cfg.Generator()
	fetcher, err := generator.NewFetcher(ctx, genCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create question generator")
	}
	bank := fallback.NewProvider()
	log.Info().Bool("generator_enabled", fetcher.Enabled()).Msg("Question sources ready")

	// ─── Initialize Services ──────────────────────────────────────────
	questionService := service.NewQuestionService(fetcher, bank, service.QuestionServiceConfig{
		TopUpShortResults: cfg.TopUpShortResults,
	}, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Question: handler.NewQuestionHandler(questionService, log),
		Health:   handler.NewHealthHandler(),
		Page:     handler.NewPageHandler(),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	// The write timeout must outlast one generator call plus the fallback.
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      genCfg.Timeout + 15*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// In-flight generator calls are bounded by their own timeout; give
	// handlers 5s to finish before closing connections.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
