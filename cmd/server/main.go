package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	authhandler "doorman/internal/auth/handler"
	authservice "doorman/internal/auth/service"
	userstore "doorman/internal/auth/store/user"
	"doorman/internal/directory"
	"doorman/internal/platform/config"
	"doorman/internal/platform/database"
	"doorman/internal/platform/health"
	"doorman/internal/platform/logger"
	"doorman/internal/platform/metrics"
	"doorman/internal/token"
	httptransport "doorman/internal/transport/http"
	"doorman/pkg/secrets"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing doorman",
		"addr", cfg.Addr,
		"store", storeKind(cfg),
	)

	var users authservice.UserStore
	var dirUsers directory.UserStore
	healthHandler := health.New()

	if cfg.DatabaseURL != "" {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Error("migrations failed", "error", err)
			os.Exit(1)
		}

		dbCfg := database.DefaultConfig()
		dbCfg.URL = cfg.DatabaseURL
		pool, err := database.New(dbCfg)
		if err != nil {
			log.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close() //nolint:errcheck // shutdown path

		log.Info("database connected")
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})

		store := userstore.NewPostgres(pool.DB())
		users, dirUsers = store, store
	} else {
		store := userstore.NewMemory()
		users, dirUsers = store, store
	}

	m := metrics.New()
	hasher := secrets.NewHasher(cfg.BcryptCost)
	tokens := token.NewService(cfg.JWTSigningKey, cfg.TokenTTL)

	authSvc, err := authservice.New(users, hasher, tokens,
		authservice.WithLogger(log),
		authservice.WithMetrics(m),
	)
	if err != nil {
		log.Error("auth service init failed", "error", err)
		os.Exit(1)
	}

	dirSvc, err := directory.New(dirUsers,
		directory.WithLogger(log),
		directory.WithMetrics(m),
	)
	if err != nil {
		log.Error("directory service init failed", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Auth:      authhandler.New(authSvc, log),
		Directory: directory.NewHandler(dirSvc, log),
		Health:    healthHandler,
		Tokens:    token.NewValidator(tokens),
		Logger:    log,
		Metrics:   m,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("starting http server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown on SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

func storeKind(cfg config.Server) string {
	if cfg.DatabaseURL != "" {
		return "postgres"
	}
	return "memory"
}
