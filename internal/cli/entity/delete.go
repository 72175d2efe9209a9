package entity

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/cli/handler"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <kind>",
		Short: "Delete a row by ID",
		Long: `Delete a row by ID. Laboratories and object types that are still
referenced by researchers or objects cannot be deleted.

Examples:
  astrolab delete object --id=12
`,
		Args:              kindArg(dispatch.CategoryDelete),
		ValidArgsFunction: kindCompletion(dispatch.CategoryDelete),
		RunE:              handler.Command(handler.HandlerFunc(buildDelete)),
	}

	cmd.Flags().Int64("id", 0, "Row ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		slog.Error("Error marking flag as required", "flag", "id", "error", err)
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func buildDelete(_ context.Context, args *handler.Arguments) (dispatch.Command, dispatch.Args, error) {
	cmd, err := cli.ResolveCommand(dispatch.CategoryDelete, args.Args[0])
	if err != nil {
		return 0, dispatch.Args{}, err
	}

	id, err := handler.NewFlagParser(args.GetCmd()).ParseID("id")
	if err != nil {
		return 0, dispatch.Args{}, err
	}
	return cmd, dispatch.Args{ID: strconv.FormatInt(id, 10)}, nil
}
