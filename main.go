package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tiresomefanatic/FindPRO-Backend/config"
	"github.com/tiresomefanatic/FindPRO-Backend/controllers"
	db "github.com/tiresomefanatic/FindPRO-Backend/database"
	"github.com/tiresomefanatic/FindPRO-Backend/gcs"
	"github.com/tiresomefanatic/FindPRO-Backend/logger"
	"github.com/tiresomefanatic/FindPRO-Backend/metrics"
	"github.com/tiresomefanatic/FindPRO-Backend/repository"
	"github.com/tiresomefanatic/FindPRO-Backend/routes"
	"github.com/tiresomefanatic/FindPRO-Backend/services"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad("")

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		database.Disconnect(shutdownCtx)
	}()

	if err := database.EnsureIndexes(ctx); err != nil {
		return err
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	opts := []services.Option{
		services.WithPagination(cfg.Pagination),
		services.WithMetrics(m),
		services.WithLogger(log),
	}

	if cfg.GCS.Enabled() {
		store, err := gcs.New(ctx, cfg.GCS, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Warn("gcs close failed", zap.Error(err))
			}
		}()

		opts = append(opts, services.WithMediaStore(store, cfg.GCS.Folder))
	} else {
		log.Info("gcs bucket not configured, portfolio uploads disabled")
	}

	svc := services.NewGigService(
		repository.NewGigRepository(database.Collection(db.GigsCollection)),
		repository.NewUserRepository(database.Collection(db.UsersCollection)),
		opts...,
	)

	router := routes.SetupRoutes(routes.Deps{
		Config:       cfg,
		Gigs:         controllers.NewGigController(svc, log),
		MediaEnabled: svc.MediaEnabled(),
		DB:           database,
		Metrics:      m,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	log.Info("graceful shutdown complete")
	return nil
}
