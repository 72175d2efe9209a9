// Package cmd holds the astrolab root command
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/cli/entity"
	"github.com/thenoetrevino/astrolab/internal/cli/setup"
	"github.com/thenoetrevino/astrolab/internal/config"
	"github.com/thenoetrevino/astrolab/internal/launcher"
	"github.com/thenoetrevino/astrolab/internal/logging"
)

var (
	driverFlag string
	dsnFlag    string

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "astrolab",
	Short: "Astrolab - laboratories, researchers and the objects they observe",
	Long: `Astrolab manages astronomical laboratories, their researchers, object
types and observed objects in SQLite or PostgreSQL.

Run without a subcommand for the interactive menu.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.ConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		return launcher.Launch(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "Database driver: sqlite or postgres (default from config)")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "Database file path or connection URL (default from config)")

	rootCmd.AddCommand(entity.Commands()...)
	rootCmd.AddCommand(setup.SetupCmd())
}

// prepare loads the configuration, applies the database flags and starts
// file logging before any command runs
func prepare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.OverrideDatabase(driverFlag, dsnFlag); err != nil {
		return &cli.CodeError{Code: cli.ExitUsage, Err: err}
	}

	closer, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer
	slog.Debug("command starting", "command", cmd.CommandPath(), "driver", cfg.Database.Driver)

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// Execute runs the root command with a context cancelled on SIGINT and SIGTERM
func Execute() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	if logCloser != nil {
		if closeErr := logCloser.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", closeErr)
		}
	}
	return err
}
