package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sidesh-hub/medinfo-india/config"
	"github.com/sidesh-hub/medinfo-india/handlers"
	"github.com/sidesh-hub/medinfo-india/logging"
	"github.com/sidesh-hub/medinfo-india/resolver"
	"github.com/sidesh-hub/medinfo-india/server"
	"github.com/sidesh-hub/medinfo-india/sessions"
	"github.com/sidesh-hub/medinfo-india/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Init(cfg.LogLevel)

	if cfg.APIKey == "" {
		logging.Warn("No provider API key configured; remote lookups will report a configuration error")
	}

	medicineStore := store.New()
	logging.Info("Sample medicine store seeded", "count", medicineStore.Count())

	res := resolver.New(resolver.Options{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Models:  cfg.Models,
		Timeout: cfg.LookupTimeout,
	})

	sessionStore := sessions.NewStore(cfg.SessionTTL)
	janitor := sessions.NewJanitor(sessionStore, cfg.SweepInterval)
	if err := janitor.Start(); err != nil {
		logging.Error("Failed to start session janitor", "error", err)
		os.Exit(1)
	}
	defer janitor.Stop()

	handler := handlers.NewHandler(medicineStore, res, sessionStore)
	srv := server.NewServer(cfg, handler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}

	logging.Info("Server shutdown complete")
}
