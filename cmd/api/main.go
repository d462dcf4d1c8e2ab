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

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-marketplace/internal/app"
	"github.com/BruksfildServices01/barber-marketplace/internal/audit"
	"github.com/BruksfildServices01/barber-marketplace/internal/config"
	"github.com/BruksfildServices01/barber-marketplace/internal/logger"
	"github.com/BruksfildServices01/barber-marketplace/internal/routes"
	"github.com/BruksfildServices01/barber-marketplace/internal/seed"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stores, err := app.OpenStores(cfg, log)
	if err != nil {
		log.Error("store init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer stores.Close()

	if cfg.StoreDriver == config.StoreDriverMemory {
		if err := seed.Subscriptions(ctx, stores.Catalog); err != nil {
			log.Error("seeding plans failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	cacheStore := app.OpenCache(ctx, cfg, log)
	objects := app.OpenObjects(cfg, log)

	dispatcher := audit.NewDispatcher(audit.New(stores.Audit), log, 256)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Log:          log,
		Appointments: stores.Appointments,
		Catalog:      stores.Catalog,
		AuditStore:   stores.Audit,
		Audit:        dispatcher,
		Cache:        cacheStore,
		Objects:      objects,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server running", slog.String("addr", cfg.Addr()), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}
	dispatcher.Close()
}
