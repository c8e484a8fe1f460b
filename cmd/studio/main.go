// Command studio serves a browser front-end for generative AI: chat,
// still image, and video generation against the Google GenAI API.
//
// Configuration is via environment variables:
//
//	STUDIO_ADDR          - Listen address (default: :8080)
//	STUDIO_LOG_LEVEL     - Log level: debug, info, warn, error (default: info)
//	STUDIO_POLL_INTERVAL - Video poll interval (default: 10s)
//	GEMINI_API_KEY       - Google GenAI API key (required; GOOGLE_API_KEY
//	                       is accepted as a fallback)
//
// Usage:
//
//	GEMINI_API_KEY=... go run ./cmd/studio
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spetersoncode/studio/client"
	"github.com/spetersoncode/studio/session"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	ctx := context.Background()
	providers, err := client.New(ctx, client.Config{APIKey: cfg.APIKey})
	if err != nil {
		slog.Error("failed to create client", "error", err)
		os.Exit(1)
	}

	handler := &Handler{
		Chat:         providers,
		Images:       providers,
		Videos:       providers,
		Sessions:     session.NewStore(),
		PollInterval: cfg.PollInterval,
	}

	server := &http.Server{
		Addr:        cfg.Addr,
		Handler:     handler.Routes(),
		ReadTimeout: 30 * time.Second,
		// SSE responses stay open for the length of a video job, so no
		// write timeout.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("studio starting", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
