package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehmann314159/vocablearn/internal/config"
	"github.com/lehmann314159/vocablearn/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			return runMigrate(cfg.Database, logger)
		},
	}
}

func runMigrate(cfg config.DatabaseConfig, logger *slog.Logger) error {
	if cfg.Driver == database.DriverMemory {
		logger.Info("nothing to migrate", slog.String("driver", cfg.Driver))
		return nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}

	logger.Info("migrations applied", slog.String("driver", cfg.Driver))
	return nil
}
