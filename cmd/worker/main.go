package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/mediflow/mediflow-api/internal/config"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore"
	"github.com/mediflow/mediflow-api/pkg/email"
	"github.com/mediflow/mediflow-api/pkg/logger"
	"github.com/mediflow/mediflow-api/pkg/messaging"
	"github.com/mediflow/mediflow-api/pkg/messaging/redis"
	"github.com/mediflow/mediflow-api/pkg/metrics"
	"github.com/mediflow/mediflow-api/pkg/worker"
)

// Settings only the worker needs. Everything shared with the API comes
// from config.yml.
type workerEnv struct {
	ConfigPath      string        `envconfig:"CONFIG"`
	HealthPort      int           `envconfig:"HEALTH_PORT" default:"8081"`
	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h"`

	SMTPHost     string        `envconfig:"SMTP_HOST"`
	SMTPPort     int           `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword string        `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string        `envconfig:"SMTP_FROM"`
	SMTPSSL      bool          `envconfig:"SMTP_SSL"`
	SMTPTimeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"30s"`

	DigestRecipients []string      `envconfig:"DIGEST_RECIPIENTS"`
	DigestInterval   time.Duration `envconfig:"DIGEST_INTERVAL" default:"24h"`
}

func (e workerEnv) emailConfig() email.Config {
	return email.Config{
		Host:     e.SMTPHost,
		Port:     e.SMTPPort,
		Username: e.SMTPUsername,
		Password: e.SMTPPassword,
		From:     e.SMTPFrom,
		SSL:      e.SMTPSSL,
		Timeout:  e.SMTPTimeout,
	}
}

// digestEnabled is false without recipients or a usable SMTP server.
func (e workerEnv) digestEnabled() bool {
	return len(e.DigestRecipients) > 0 && e.emailConfig().Enabled() && e.DigestInterval > 0
}

func loadEnv() (workerEnv, error) {
	var env workerEnv
	if err := envconfig.Process("MEDIFLOW_WORKER", &env); err != nil {
		return workerEnv{}, fmt.Errorf("failed to read worker environment: %w", err)
	}
	if env.CleanupInterval <= 0 {
		return workerEnv{}, fmt.Errorf("MEDIFLOW_WORKER_CLEANUP_INTERVAL must be positive, got %s", env.CleanupInterval)
	}
	return env, nil
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("worker failed")
		os.Exit(1)
	}
}

func run() error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	cfg, err := config.LoadWorker(env.ConfigPath)
	if err != nil {
		return err
	}

	l := logger.Setup(logger.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "mediflow-worker",
		File: logger.FileConfig{
			Enabled:    cfg.Logging.File.Enabled,
			Path:       cfg.Logging.File.Path,
			MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAgeDays: cfg.Logging.File.MaxAgeDays,
			Compress:   cfg.Logging.File.Compress,
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := sqlstore.NewDB(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(cfg.Metrics.Namespace, "worker", reg)
	repos := sqlstore.NewRepositories(db)

	broker, err := newBroker(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer broker.Close()

	processor, err := worker.NewOutboxProcessor(repos.Outbox, broker, worker.OutboxProcessorConfig{
		Channel:       cfg.Redis.Channel,
		BatchSize:     cfg.Outbox.BatchSize,
		PollInterval:  cfg.Outbox.PollInterval,
		RetryAttempts: cfg.Outbox.RetryAttempts,
		RetryDelay:    cfg.Outbox.RetryDelay,
		MaxFailures:   cfg.Outbox.MaxFailures,
	}, l, m)
	if err != nil {
		return err
	}
	cleanup := worker.NewOutboxCleanupWorker(repos.Outbox, cfg.Outbox.Retention, env.CleanupInterval, l, m)

	var wg sync.WaitGroup
	start := func(fn func(context.Context)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(ctx)
		}()
	}

	start(processor.Start)
	start(cleanup.Start)
	if env.digestEnabled() {
		digest := worker.NewMaintenanceDigestWorker(repos.Equipment, email.NewSMTPClient(env.emailConfig()),
			env.DigestRecipients, env.DigestInterval, l, m)
		start(digest.Start)
	} else {
		l.Info("Maintenance digest disabled, no SMTP host or recipients configured")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", env.HealthPort),
		Handler:           healthMux(db.PingContext, broker, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error(err, "Health server failed")
			stop()
		}
	}()

	l.Info("Worker started", "channel", cfg.Redis.Channel, "health_port", env.HealthPort)
	<-ctx.Done()
	l.Info("Shutting down worker")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	wg.Wait()
	return nil
}

// newBroker publishes to redis when a URL is configured and to the log
// otherwise.
func newBroker(ctx context.Context, cfg *config.Config, l *logger.Logger) (messaging.Broker, error) {
	if cfg.Redis.URL == "" {
		l.Warn("No redis.url configured, events will be written to the log")
		return messaging.NewLogBroker(l.Zerolog()), nil
	}

	broker, err := redis.NewRedisBroker(ctx, redis.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   cfg.Redis.MaxRetries,
		RetryBackoff: cfg.Redis.RetryBackoff,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}, l.Zerolog())
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis broker: %w", err)
	}
	return broker, nil
}

func healthMux(pingDB func(context.Context) error, broker messaging.Broker, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pingDB(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		if err := broker.Ping(ctx); err != nil {
			http.Error(w, "broker unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}
