package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"unit-converter/internal/config"
	"unit-converter/internal/conversion"
	"unit-converter/internal/kvstore"
	"unit-converter/internal/observability"
	"unit-converter/internal/preferences"
	"unit-converter/internal/server"
)

func main() {

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.AppEnv, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing, log export, metrics
	telemetryShutdown, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		observability.Logger.Fatal("telemetry init failed", zap.Error(err))
	}
	defer telemetryShutdown(ctx)

	// Storage
	store, err := kvstore.Open(ctx, cfg.Store, observability.Logger)
	if err != nil {
		observability.Logger.Fatal("store init failed", zap.Error(err))
	}
	defer store.Close()

	// Router
	prefs := preferences.NewService(store, cfg.Store.KeyPrefix, cfg.Store.PreferenceTTL)
	router := server.NewRouter(server.Deps{
		Conversion:  conversion.NewHandler(cfg.Locale()),
		Preferences: preferences.NewHandler(prefs, cfg.Locale()),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store", cfg.Store.Backend),
			zap.String("default_locale", string(cfg.Locale())),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv)
}

func waitForShutdown(srv *http.Server) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
