package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehmann314159/vocablearn/internal/app"
	"github.com/lehmann314159/vocablearn/internal/config"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCommand := cobra.Command{
		Use:           "vocablearn",
		Short:         "Personal vocabulary notebook with generated definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCommand.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newGenerateCommand(),
		newExportCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration and builds the logger; --debug wins over log.level
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if debugMode {
		cfg.Log.Level = "debug"
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

// newApp loads configuration and builds the application
func newApp() (*app.App, error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, logger)
}
