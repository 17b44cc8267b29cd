package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"budgettracker/internal/config"
	"budgettracker/internal/database"
	"budgettracker/internal/logger"
	"budgettracker/internal/router"
	"budgettracker/internal/services"
	"budgettracker/internal/telemetry"
)

const (
	shutdownTimeout   = 10 * time.Second
	sessionSweepEvery = time.Hour
	readHeaderTimeout = 5 * time.Second
)

// @title           Budget Tracker API
// @version         1.0
// @description     Budget Tracker lets users record expenses against their own categories, set budgets over date windows and follow their monthly spending.

// @host      localhost:3000
// @BasePath  /

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	shutdownTracing, err := telemetry.Init(ctx, appConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warnf("tracing shutdown error: %v", err)
		}
	}()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	svc := router.NewServices(dbManager.DB(), appConfig.SessionTTL)
	engine := router.New(svc, router.Options{
		DevMode:       appConfig.IsDevelopment(),
		SessionSecret: appConfig.SessionSecret,
		SessionTTL:    appConfig.SessionTTL,
		SecureCookie:  appConfig.SecureCookie,
	})

	server := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           otelhttp.NewHandler(engine, "budget-tracker"),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting Budget Tracker server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sweepSessions(gctx, svc.Sessions)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// sweepSessions purges expired sessions at startup and then periodically
// until ctx is cancelled.
func sweepSessions(ctx context.Context, sessions services.SessionServicer) {
	log := logger.Get()
	ticker := time.NewTicker(sessionSweepEvery)
	defer ticker.Stop()

	for {
		removed, err := sessions.DeleteExpired(ctx)
		switch {
		case err != nil && ctx.Err() == nil:
			log.Warnf("failed to purge expired sessions: %v", err)
		case removed > 0:
			log.Infow("Purged expired sessions", "count", removed)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
