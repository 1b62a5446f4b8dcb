package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"escrow-dashboard/internal/config"
	"escrow-dashboard/internal/database"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	var (
		seed       bool
		statusOnly bool
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and optional seeds",
		Long: `Apply pending SQL migrations to the database configured through the
DB_* environment variables (a .env file is read when present).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cmd.Flags().Changed("seed") {
				cfg.Migration.Seed = seed
			}

			sqlDB, err := database.OpenSQL(&cfg.Database)
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			ctx := cmd.Context()

			runner := database.NewMigrationRunnerFromConfig(sqlDB, &cfg.Migration)
			if err := runner.WaitForDatabase(ctx); err != nil {
				return err
			}

			if !statusOnly {
				if err := runner.RunMigrations(); err != nil {
					return err
				}
				if err := runner.LoadSeeds(ctx); err != nil {
					return err
				}
			}

			version, dirty, err := runner.GetMigrationStatus()
			if errors.Is(err, migrate.ErrNilVersion) {
				version, dirty, err = 0, false, nil
			}
			if errors.Is(err, database.ErrMigrationsNotFound) {
				return fmt.Errorf("no migrations at %s", cfg.Migration.MigrationsPath)
			}
			if err != nil {
				return fmt.Errorf("failed to read migration status: %w", err)
			}
			opts.logger.Debug("migration status", "version", version, "dirty", dirty)

			return renderTable(cmd.OutOrStdout(), []string{"Version", "Dirty"}, [][]string{
				{strconv.FormatUint(uint64(version), 10), strconv.FormatBool(dirty)},
			})
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "load db/seeds after migrating")
	cmd.Flags().BoolVar(&statusOnly, "status", false, "only print the current version")
	return cmd
}
