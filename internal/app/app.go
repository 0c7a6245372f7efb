// Package app wires configuration, storage, completion and HTTP together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lehmann314159/vocablearn/internal/api"
	"github.com/lehmann314159/vocablearn/internal/completion"
	"github.com/lehmann314159/vocablearn/internal/completion/anthropic"
	"github.com/lehmann314159/vocablearn/internal/completion/openai"
	"github.com/lehmann314159/vocablearn/internal/config"
	"github.com/lehmann314159/vocablearn/internal/database"
	"github.com/lehmann314159/vocablearn/internal/repository"
	"github.com/lehmann314159/vocablearn/internal/services"
)

// App holds the long-lived components built from a Config
type App struct {
	Config      *config.Config
	Logger      *slog.Logger
	Words       *services.WordService
	Definitions *services.DefinitionService

	closers []func() error
}

// NewCompleter builds the completion client for the configured provider.
// The returned close function releases the client's transport.
func NewCompleter(cfg config.CompletionConfig) (completion.Completer, func() error, error) {
	switch cfg.Provider {
	case completion.ProviderOpenAI:
		client := openai.NewClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout, cfg.MaxTokens)
		return client, client.Close, nil
	case completion.ProviderAnthropic:
		client := anthropic.NewClient(cfg.APIKey, cfg.Model, cfg.BaseURL, cfg.Timeout, cfg.MaxTokens)
		return client, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported completion provider: %q", cfg.Provider)
	}
}

// NewRepository builds the word store for the configured driver. SQL stores
// are migrated before use; the returned close function releases the pool.
func NewRepository(cfg config.DatabaseConfig) (repository.WordRepository, func() error, error) {
	if cfg.Driver == database.DriverMemory {
		return repository.NewMemoryRepository(), func() error { return nil }, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return repository.NewSQLRepository(db), db.Close, nil
}

// New builds the store, the completion client and the services
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	repo, closeRepo, err := NewRepository(cfg.Database)
	if err != nil {
		return nil, err
	}

	completer, closeCompleter, err := NewCompleter(cfg.Completion)
	if err != nil {
		_ = closeRepo()
		return nil, err
	}

	if cfg.Completion.APIKey == "" {
		logger.Warn("no completion API key configured, generated fields will use placeholder text",
			slog.String("provider", cfg.Completion.Provider),
		)
	}

	return &App{
		Config:      cfg,
		Logger:      logger,
		Words:       services.NewWordService(repo),
		Definitions: services.NewDefinitionService(completer, logger),
		closers:     []func() error{closeCompleter, closeRepo},
	}, nil
}

// Handler builds the HTTP router
func (a *App) Handler() (http.Handler, error) {
	webHandler, err := api.NewWebHandler(a.Words, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return api.NewRouter(api.NewHandler(a.Words, a.Definitions, a.Logger), webHandler, a.Logger), nil
}

// Serve runs the HTTP server until ctx is canceled or SIGINT/SIGTERM arrives,
// then shuts it down within the configured shutdown timeout.
func (a *App) Serve(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         a.Config.Server.Addr,
		Handler:      handler,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		a.Logger.Info("starting server",
			slog.String("addr", srv.Addr),
			slog.String("driver", a.Config.Database.Driver),
			slog.String("provider", a.Config.Completion.Provider),
			slog.String("model", a.Config.Completion.Model),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		a.Logger.Info("shutting down server")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	a.Logger.Info("server stopped")
	return nil
}

// Close releases the completion client and the database
func (a *App) Close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
