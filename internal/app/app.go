// Package app wires the data store and the dispatcher into one container
// shared by the interactive session and the command line.
package app

import (
	"log/slog"

	"github.com/thenoetrevino/astrolab/internal/database"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// App holds the application services.
// It owns the data store: Close releases it.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Command layer
	Dispatcher *dispatch.Dispatcher

	logger *slog.Logger
}

// New creates a new App around repo.
// This is the single entry point for creating the application container.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var dispatchOpts []dispatch.Option
	if cfg.recorder != nil {
		dispatchOpts = append(dispatchOpts, dispatch.WithRecorder(cfg.recorder))
	}

	return &App{
		repo:       repo,
		Dispatcher: dispatch.New(repo, dispatchOpts...),
		logger:     cfg.logger,
	}
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the data store
func (a *App) Close() error {
	if err := a.repo.Close(); err != nil {
		a.logger.Error("error closing database", "error", err)
		return err
	}
	a.logger.Debug("database closed")
	return nil
}
