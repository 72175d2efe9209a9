// Package cli holds the shared plumbing of the non-interactive commands:
// the application context, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/astrolab/internal/app"
	"github.com/thenoetrevino/astrolab/internal/config"
	"github.com/thenoetrevino/astrolab/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with the dispatcher
	Config *config.Config
	ctx    context.Context

	// owned is false when App was injected through the context; the caller
	// that created it closes it
	owned bool
}

// NewCLI opens the configured database and builds the application around it
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	repo, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(repo),
		Config: cfg,
		ctx:    ctx,
		owned:  true,
	}, nil
}

// Context returns the context the CLI was created with
func (c *CLI) Context() context.Context {
	return c.ctx
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

type contextKey int

const (
	appKey contextKey = iota
	configKey
)

// WithApp makes GetCLIFromContext reuse application instead of opening the database
func WithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// WithConfig stores the resolved configuration for the commands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, loading
// it from disk when none was stored
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// GetCLIFromContext returns a CLI for a command run
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		return &CLI{App: application, Config: cfg, ctx: ctx}, nil
	}
	return NewCLI(ctx, cfg)
}
