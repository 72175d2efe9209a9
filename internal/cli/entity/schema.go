package entity

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/cli/handler"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// SchemaCmd returns the schema subcommand
func SchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create the tables if needed and show row counts",
		Long: `Connect to the configured database, create any missing table and
print how many rows each table holds.

Examples:
  astrolab schema
  astrolab --driver=postgres --dsn="postgres://localhost/astro" schema --json
`,
		Args: cobra.NoArgs,
		RunE: runSchema,
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func runSchema(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	formatter, err := handler.Formatter(cmd)
	if err != nil {
		return err
	}

	// Opening the database runs the migrations
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return &cli.CodeError{Code: cli.ExitError, Err: err}
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	repo := cliInstance.App.Repo()
	counts := make(map[string]int, len(models.Kinds()))
	rows := make([][]string, 0, len(models.Kinds()))
	for _, kind := range models.Kinds() {
		n, err := repo.Count(ctx, kind)
		if err != nil {
			if fmtErr := formatter.Error("STORAGE_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return &cli.CodeError{Code: cli.ExitError, Err: err}
		}
		counts[kind.Table()] = n
		rows = append(rows, []string{kind.Table(), strconv.Itoa(n)})
	}

	if formatter.Quiet && !formatter.JSON {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{
			"driver": repo.Dialect().Name,
			"tables": counts,
		})
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Driver: %s\n", repo.Dialect().Name); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatter.Table([]string{"table", "rows"}, rows))
	return err
}
