// Package launcher starts the interactive session
package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thenoetrevino/astrolab/internal/app"
	"github.com/thenoetrevino/astrolab/internal/config"
	"github.com/thenoetrevino/astrolab/internal/console"
	"github.com/thenoetrevino/astrolab/internal/database"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
	"github.com/thenoetrevino/astrolab/internal/metrics"
)

// helpWidth is the wrap width of the help page
const helpWidth = 80

// Launch opens the configured database and runs the interactive menu until
// the user quits or ctx is cancelled
func Launch(ctx context.Context, cfg *config.Config) error {
	return launch(ctx, cfg, console.NewPrompter(cfg), os.Stdout)
}

func launch(ctx context.Context, cfg *config.Config, prompter dispatch.Prompter, out io.Writer) error {
	repo, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	m := metrics.New()
	if cfg.MetricsAddr != "" {
		go func() {
			if err := m.Serve(ctx, cfg.MetricsAddr); err != nil {
				slog.Error("metrics server stopped", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
		slog.Info("serving metrics", "addr", cfg.MetricsAddr)
	}

	application := app.New(repo, app.WithRecorder(m))
	renderer := console.NewRenderer(out,
		console.NewStyles(cfg.ColorScheme),
		console.NewHelpRenderer(helpWidth))

	// The session closes the database when it ends
	session := dispatch.NewSession(application.Dispatcher, prompter, renderer)
	err = session.Run(ctx)

	snap := m.GetSnapshot()
	slog.Info("session ended",
		"commands", snap.Commands,
		"rejected", snap.Rejected,
		"failed", snap.Failed,
		"uptime", snap.Uptime)

	if err != nil {
		return fmt.Errorf("error running session: %w", err)
	}
	return nil
}
