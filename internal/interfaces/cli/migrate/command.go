package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/texnokross/texnokross/internal/infrastructure/config"
	"github.com/texnokross/texnokross/internal/infrastructure/database"
	"github.com/texnokross/texnokross/internal/infrastructure/migration"
	"github.com/texnokross/texnokross/internal/interfaces/cli/clienv"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

var (
	env       string
	configDir string
	steps     int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the schema of the SQL record store (sqlite or mysql storage drivers).`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", "", "Directory holding config.yaml (default: ./configs)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migration.Migrator, db *gorm.DB) error {
				return m.Up(db)
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return withMigrator(func(m *migration.Migrator, db *gorm.DB) error {
				return m.Down(db, steps)
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "s", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *migration.Migrator, db *gorm.DB) error {
				version, err := m.Version(db)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "current version: %d\n", version)
				return m.Status(db)
			})
		},
	}
}

func withMigrator(fn func(*migration.Migrator, *gorm.DB) error) error {
	cfg, err := clienv.Init(env, configDir)
	if err != nil {
		return err
	}
	log := logger.NewLogger().Named("migrate")

	m, err := migration.NewMigrator(cfg.Storage.Driver, log)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close database", "error", err)
		}
	}()

	return fn(m, db)
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Open(&cfg.Storage, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}
