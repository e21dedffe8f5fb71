package main

import (
	"fmt"
	"os"
	"strconv"

	"budgetmaster/internal/config"
	"budgetmaster/internal/database"
	"budgetmaster/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Apply or roll back BudgetMaster database migrations",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("driver", "", "database driver (postgres, sqlite); defaults to DB_DRIVER")
	flags.String("sqlite-path", "", "SQLite database file; defaults to SQLITE_PATH")

	_ = viper.BindPFlag("db.driver", flags.Lookup("driver"))
	_ = viper.BindPFlag("db.sqlite_path", flags.Lookup("sqlite-path"))
	_ = viper.BindEnv("db.driver", "DB_DRIVER")
	_ = viper.BindEnv("db.sqlite_path", "SQLITE_PATH")

	rootCmd.AddCommand(upCmd(), downCmd(), versionCmd())
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.Get().Fatalf("Migration error: %v", err)
	}
}

// openMigrator resolves the database settings and returns a migrator for them.
func openMigrator() (*migrate.Migrate, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbConfig := database.NewConfig(cfg)
	if driver := viper.GetString("db.driver"); driver != "" {
		dbConfig.Driver = driver
	}
	if path := viper.GetString("db.sqlite_path"); path != "" {
		dbConfig.SQLitePath = path
	}

	m, err := database.NewMigrator(dbConfig)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}
	return m, closeFn, nil
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, closeFn, err := openMigrator()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := m.Up(); err != nil && !database.IsNoChange(err) {
				return fmt.Errorf("migration up failed: %w", err)
			}
			logger.Get().Info("Migrations applied successfully")
			return nil
		},
	}
}

func downCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down [N]",
		Short: "Roll back N migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid step count %q", args[0])
				}
				steps = n
			}

			m, closeFn, err := openMigrator()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := m.Steps(-steps); err != nil && !database.IsNoChange(err) {
				return fmt.Errorf("migration down failed: %w", err)
			}
			logger.Get().Infof("Rolled back %d migration(s)", steps)
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m, closeFn, err := openMigrator()
			if err != nil {
				return err
			}
			defer closeFn()

			version, dirty, err := m.Version()
			if err != nil {
				return fmt.Errorf("failed to get version: %w", err)
			}
			logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)
			return nil
		},
	}
}
