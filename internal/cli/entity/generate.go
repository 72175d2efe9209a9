package entity

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/cli/handler"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// GenerateCmd returns the generate subcommand
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Insert random rows",
		Long: `Insert random rows in one transaction. Researchers need existing
laboratories; objects need existing laboratories and object types.

Examples:
  astrolab generate laboratories --count=1000
  astrolab generate objects --count=50000 --json
`,
		Args:              kindArg(dispatch.CategoryGenerate),
		ValidArgsFunction: kindCompletion(dispatch.CategoryGenerate),
		RunE:              handler.Command(handler.HandlerFunc(buildGenerate)),
	}

	cmd.Flags().Int("count", 0, "Number of rows to insert (required)")
	if err := cmd.MarkFlagRequired("count"); err != nil {
		slog.Error("Error marking flag as required", "flag", "count", "error", err)
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

// buildGenerate passes the count through unchecked; the dispatcher rejects
// non-positive counts
func buildGenerate(_ context.Context, args *handler.Arguments) (dispatch.Command, dispatch.Args, error) {
	cmd, err := cli.ResolveCommand(dispatch.CategoryGenerate, args.Args[0])
	if err != nil {
		return 0, dispatch.Args{}, err
	}
	return cmd, dispatch.Args{Count: args.GetInt("count", 0)}, nil
}
