package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hrvibe/internal/adapters/garmin"
	"hrvibe/internal/api"
	"hrvibe/internal/config"
	"hrvibe/internal/metrics"
	"hrvibe/internal/session"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, _ := zap.NewProduction()
	log := logger.Sugar()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	backend, err := garmin.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal("failed to create backend client", zap.Error(err))
	}

	sessions := session.NewStore(backend, log)
	store := metrics.NewStore(backend, log)

	mainAPI := api.NewAPI(log, sessions, store, cfg.SessionKey, cfg.AuthGrace)

	// Start server with context-aware logic
	server := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: mainAPI.Routes(),
	}

	// Kick off session resolution so the first guarded request usually
	// finds a settled state. No cached session exists at process start.
	go sessions.Resolve(ctx, nil)

	// Listen for syscall signals for process to interrupt/quit
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		// Shutdown signal with grace period of 30 seconds
		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit")
			}
		}()

		// Trigger graceful shutdown
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}
		cancel()
	}()

	// Run the server
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	// Wait for server context to be stopped
	<-ctx.Done()
}
