// Package main provides the netmend HTTP service.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	_ "net/http/pprof" // register /debug/pprof on the default mux
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/netmend/netmend/internal/adapters/repository/memory"
	"github.com/netmend/netmend/internal/adapters/repository/postgres"
	"github.com/netmend/netmend/internal/adapters/repository/sqlite"
	"github.com/netmend/netmend/internal/config"
	"github.com/netmend/netmend/internal/core/network"
	"github.com/netmend/netmend/internal/infrastructure/logging"
	"github.com/netmend/netmend/pkg/netmend"
	"github.com/netmend/netmend/pkg/serialization"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewProduction(cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logging.SetLogger(logger)

	store, cleanup, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer cleanup()

	rt := netmend.NewRuntimeWithStore(store)
	srv := newServer(rt, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(cfg.App.RequestTimeout))

	router.Get("/healthz", srv.handleHealth)
	router.Get("/metrics", srv.handleMetrics)
	router.Route("/v1", func(r chi.Router) {
		r.Post("/repair", srv.handleRepair)
		r.Post("/networks", srv.handleSaveNetwork)
		r.Get("/networks/{id}", srv.handleGetNetwork)
		r.Post("/networks/{id}/repair", srv.handleRepairNetwork)
	})
	// pprof and expvar stay on the default mux.
	router.Mount("/debug", http.DefaultServeMux)

	logger.Info("starting netmend server",
		zap.String("addr", cfg.App.ListenAddr),
		zap.String("store", cfg.Store.Backend))
	if err := http.ListenAndServe(cfg.App.ListenAddr, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// openStore builds the configured persistence backend.
func openStore(cfg *config.Config) (network.Store, func(), error) {
	switch cfg.Store.Backend {
	case "sqlite":
		db, err := sql.Open("sqlite", cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store := sqlite.NewNetworkStore(db, serialization.DefaultSerializer())
		if err := store.CreateTables(context.Background()); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "postgres":
		pool, err := pgxpool.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		store := postgres.NewNetworkStore(pool, serialization.DefaultSerializer())
		if err := store.CreateTables(context.Background()); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return memory.NewNetworkStore(), func() {}, nil
	}
}
