package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/admitly/portal-service/internal/config"
	"github.com/admitly/portal-service/internal/observability"
	"github.com/admitly/portal-service/internal/persistence"
)

func newMigrateCmd() *cobra.Command {
	var (
		dir     string
		timeout time.Duration
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if dir == "" {
				dir = cfg.Postgres.MigrationsDir
			}

			if dryRun {
				files, err := persistence.MigrationFiles(dir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}

			logger, err := observability.NewLogger(cfg.Logger, cfg.App)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pg.Close()
			if pg.PoolHandle() == nil {
				return persistence.ErrPostgresNotConfigured
			}

			applied, err := persistence.RunMigrations(ctx, pg.PoolHandle(), dir, logger)
			if err != nil {
				return err
			}
			logger.Info("migrations complete", zap.Int("applied", applied))
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "migrations directory (defaults to POSTGRES_MIGRATIONS_DIR)")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall timeout")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list migration files without applying them")
	return cmd
}
