package entity

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/cli/handler"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// ReadCmd returns the read subcommand
func ReadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <kind>",
		Short: "List every row of a kind",
		Long: `List every row of a kind. Researchers and objects show the names of
the laboratory and object type they reference.

Examples:
  astrolab read laboratories
  astrolab read objects --json
  LAB_IDS=$(astrolab read labs --quiet)
`,
		Args:              kindArg(dispatch.CategoryRead),
		ValidArgsFunction: kindCompletion(dispatch.CategoryRead),
		RunE:              handler.Command(handler.HandlerFunc(buildRead)),
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func buildRead(_ context.Context, args *handler.Arguments) (dispatch.Command, dispatch.Args, error) {
	cmd, err := cli.ResolveCommand(dispatch.CategoryRead, args.Args[0])
	return cmd, dispatch.Args{}, err
}
