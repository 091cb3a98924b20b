package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/shopsync/internal/server/handlers"
	"github.com/iudanet/shopsync/internal/server/middleware"
	"github.com/iudanet/shopsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "shopsync-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (or SHOPSYNC_JWT_SECRET env)")
	tokenTTL := flag.Duration("token-ttl", 15*time.Minute, "Access token lifetime")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("SHOPSYNC_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("JWT secret is required: pass -jwt-secret or set SHOPSYNC_JWT_SECRET")
		os.Exit(1)
	}

	if err := run(logger, *addr, *dbPath, secret, *tokenTTL); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, jwtSecret string, tokenTTL time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(jwtSecret),
		AccessTokenTTL: tokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	dataHandler := handlers.NewDataHandler(logger, store)
	productHandler := handlers.NewProductHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authRequired := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()

	// Публичные endpoints
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", authHandler.GetSalt)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Endpoints данных пользователя: требуют access token
	protected := func(h http.HandlerFunc) http.Handler {
		return authRequired(h)
	}
	mux.Handle("GET /api/v1/cart", protected(dataHandler.GetCart))
	mux.Handle("PUT /api/v1/cart", protected(dataHandler.PutCart))
	mux.Handle("GET /api/v1/preferences", protected(dataHandler.GetPreferences))
	mux.Handle("PUT /api/v1/preferences", protected(dataHandler.PutPreferences))
	mux.Handle("GET /api/v1/favorites", protected(dataHandler.GetFavorites))
	mux.Handle("PUT /api/v1/favorites", protected(dataHandler.PutFavorites))
	mux.Handle("GET /api/v1/alerts", protected(dataHandler.GetPriceAlerts))
	mux.Handle("PUT /api/v1/alerts", protected(dataHandler.PutPriceAlerts))
	mux.Handle("PATCH /api/v1/alerts/{id}", protected(dataHandler.PatchPriceAlert))
	mux.Handle("GET /api/v1/products/{id}/price", protected(productHandler.GetPrice))
	mux.Handle("PUT /api/v1/products/{id}", protected(productHandler.Upsert))

	// Общая цепочка: recovery -> rate limit -> logging
	var handler http.Handler = mux
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RateLimitMiddleware(300, time.Minute, logger)(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", addr), slog.String("version", Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}

func printVersion() {
	fmt.Printf("ShopSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
