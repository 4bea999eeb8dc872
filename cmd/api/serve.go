package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/mediflow/mediflow-api/internal/config"
	analyticsHandler "github.com/mediflow/mediflow-api/internal/handler/analytics"
	authHandler "github.com/mediflow/mediflow-api/internal/handler/auth"
	"github.com/mediflow/mediflow-api/internal/handler/health"
	patientHandler "github.com/mediflow/mediflow-api/internal/handler/patient"
	promHandler "github.com/mediflow/mediflow-api/internal/handler/prometheus"
	resourceHandler "github.com/mediflow/mediflow-api/internal/handler/resource"
	"github.com/mediflow/mediflow-api/internal/middleware"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore"
	"github.com/mediflow/mediflow-api/internal/router"
	"github.com/mediflow/mediflow-api/internal/service"
	analyticsService "github.com/mediflow/mediflow-api/internal/service/analytics"
	authService "github.com/mediflow/mediflow-api/internal/service/auth"
	eventService "github.com/mediflow/mediflow-api/internal/service/event"
	patientService "github.com/mediflow/mediflow-api/internal/service/patient"
	resourceService "github.com/mediflow/mediflow-api/internal/service/resource"
	"github.com/mediflow/mediflow-api/pkg/auth"
	"github.com/mediflow/mediflow-api/pkg/messaging/redis"
	"github.com/mediflow/mediflow-api/pkg/metrics"
	"github.com/mediflow/mediflow-api/pkg/security"
)

const dbStatsInterval = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, l, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := sqlstore.NewDB(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(cfg.Metrics.Namespace, "", reg)

	if cfg.Database.AutoMigrate {
		err := sqlstore.Migrate(ctx, db)
		m.DatabaseOperations.WithLabelValues("migrate", metrics.Status(err)).Inc()
		if err != nil {
			return err
		}
	}

	// Initialize repositories and services
	repos := sqlstore.NewRepositories(db)
	events := eventService.NewEventService(repos.Outbox)

	jwt, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenTTL)
	if err != nil {
		return err
	}

	authSvc := authService.NewService(repos.Users, jwt, security.NewBcryptHasher(bcrypt.DefaultCost), service.SystemClock)
	patientSvc := patientService.NewService(patientService.Repositories{
		Patients:     repos.Patients,
		Admissions:   repos.Admissions,
		Discharges:   repos.Discharges,
		Outcomes:     repos.Outcomes,
		Readmissions: repos.Readmissions,
		Satisfaction: repos.Satisfaction,
		Departments:  repos.Departments,
		Beds:         repos.Beds,
	}, events, service.SystemClock)
	resourceSvc := resourceService.NewService(resourceService.Repositories{
		Departments: repos.Departments,
		Beds:        repos.Beds,
		Staff:       repos.Staff,
		Equipment:   repos.Equipment,
		Metrics:     repos.Metrics,
	}, service.SystemClock)
	analyticsSvc := analyticsService.NewService(analyticsService.Repositories{
		Metrics:      repos.Metrics,
		Departments:  repos.Departments,
		CostAnalyses: repos.CostAnalyses,
		Admissions:   repos.Admissions,
	}, events, service.SystemClock)

	// Readiness covers the database and, when configured, the event broker.
	checks := map[string]health.Pinger{
		"database": health.PingFunc(db.PingContext),
	}
	if cfg.Redis.URL != "" {
		broker, connErr := redis.NewRedisBroker(ctx, redisConfig(cfg.Redis), l.Zerolog())
		if connErr != nil {
			l.Warn("Redis unavailable at startup, readiness will report it down", "error", connErr.Error())
			checks["redis"] = health.PingFunc(func(context.Context) error { return connErr })
		} else {
			defer broker.Close()
			checks["redis"] = broker
		}
	}

	r, err := router.NewRouter(
		router.RouterConfig{
			Mode:           cfg.Server.Mode,
			RateLimit:      rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst:      cfg.RateLimit.Burst,
			RateLimitOn:    cfg.RateLimit.Enabled,
			RateIdleTTL:    cfg.RateLimit.ClientIdleTTL,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		},
		middleware.NewAuthMiddleware(jwt, nil),
		health.NewHandler(checks),
		promHandler.New(m, reg),
		patientHandler.NewHandler(patientSvc),
		resourceHandler.NewHandler(resourceSvc),
		analyticsHandler.NewHandler(analyticsSvc),
		authHandler.NewHandler(authSvc),
	)
	if err != nil {
		return err
	}

	go reportDBStats(ctx, db, m)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("Starting server", "addr", srv.Addr, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	l.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	l.Info("Server exited properly")
	return nil
}

func redisConfig(c config.RedisConfig) redis.Config {
	return redis.Config{
		URL:          c.URL,
		MaxRetries:   c.MaxRetries,
		RetryBackoff: c.RetryBackoff,
		PoolSize:     c.PoolSize,
		MinIdleConns: c.MinIdleConns,
	}
}

func reportDBStats(ctx context.Context, db *sqlx.DB, m *metrics.Metrics) {
	ticker := time.NewTicker(dbStatsInterval)
	defer ticker.Stop()

	for {
		m.DatabaseConnections.Set(float64(db.Stats().OpenConnections))
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
