package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/tweetproxy/config"
	"github.com/spacesedan/tweetproxy/internal/api"
	"github.com/spacesedan/tweetproxy/internal/logging"
	"github.com/spacesedan/tweetproxy/internal/sentiment"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := config.AppEnv()
	config.LoadEnv(env)
	logging.InitLogger()

	checkCredentials()

	analyzer := sentiment.Default()
	go analyzer.LoadModel()

	router := api.NewRouter(analyzer)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		slog.Info("[Main] Relay listening",
			slog.String("addr", srv.Addr),
			slog.String("env", env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("[Main] Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("[Main] Forced shutdown", slog.String("error", err.Error()))
	}
	slog.Info("[Main] Server stopped")
}

// checkCredentials logs what is and isn't configured at startup. Nothing here
// is fatal: missing keys degrade the affected endpoints to explicit error
// payloads instead of crashing the relay.
func checkCredentials() {
	if os.Getenv("TWITTER_BEARER_TOKEN") == "" {
		slog.Warn("TWITTER_BEARER_TOKEN is not set; callers must supply their own bearer token")
	}
	for _, key := range []string{
		"TWITTER_API_KEY",
		"TWITTER_API_SECRET",
		"TWITTER_ACCESS_TOKEN",
		"TWITTER_ACCESS_TOKEN_SECRET",
	} {
		if os.Getenv(key) == "" {
			slog.Debug("Optional credential not set", slog.String("key", key))
		}
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		slog.Warn("OPENAI_API_KEY is not set; AI analysis endpoints will report an error payload")
	}
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		slog.Warn("ANTHROPIC_API_KEY is not set; AI analysis responses will omit the context field")
	}
}
