package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mediflow/mediflow-api/internal/repository/sqlstore"
	"github.com/mediflow/mediflow-api/pkg/metrics"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			db, err := sqlstore.NewDB(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			m := metrics.NewMetrics(cfg.Metrics.Namespace, "", prometheus.NewRegistry())
			err = sqlstore.Migrate(ctx, db)
			m.DatabaseOperations.WithLabelValues("migrate", metrics.Status(err)).Inc()
			if err != nil {
				return err
			}

			l.Info("Migrations applied")
			return nil
		},
	}
}
