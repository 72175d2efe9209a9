package setup

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/config"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the configuration file",
		Long: `Write the current configuration, including --driver and --dsn,
to $XDG_CONFIG_HOME/astrolab/config.yaml.

Examples:
  # Write the defaults
  astrolab setup config

  # Point every later run at postgres
  astrolab --driver=postgres --dsn="postgres://localhost/astro" setup config --force

  # Show where the file lives
  astrolab setup config --check
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkFlag {
				return CheckConfig(cmd.OutOrStdout())
			}

			cfg, err := cli.ConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return InstallConfig(cmd.OutOrStdout(), cfg, forceFlag)
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Check installation status")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing file")

	return cmd
}

// InstallConfig saves cfg unless a file already exists and force is false
func InstallConfig(out io.Writer, cfg *config.Config, force bool) error {
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	exists, err := fileExists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		fmt.Fprintf(out, "Config already exists: %s\n", path)
		fmt.Fprintln(out, "Use --force to overwrite it.")
		return nil
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(out, "Config written: %s\n", path)
	fmt.Fprintf(out, "  Driver: %s\n", cfg.Database.Driver)
	return nil
}

// CheckConfig reports where the config file lives and whether it exists
func CheckConfig(out io.Writer) error {
	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	exists, err := fileExists(path)
	if err != nil {
		return err
	}

	status := "not installed"
	if exists {
		status = "installed"
	}
	fmt.Fprintf(out, "Config: %s (%s)\n", path, status)
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
}
