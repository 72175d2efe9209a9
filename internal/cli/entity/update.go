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

// UpdateCmd returns the update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <kind>",
		Short: "Change one field of a row",
		Long: `Change one field of a row. Only the listed columns can be changed:

  laboratory   lab_name
  researcher   full_name, level, laboratory_id
  object_type  type, galaxy_location
  object       name, distance, laboratory_id, type_id

Examples:
  astrolab update researcher --id=4 --field=level --value=Lead
  astrolab update object --id=2 --field=distance --value=4200 --json
`,
		Args:              kindArg(dispatch.CategoryUpdate),
		ValidArgsFunction: kindCompletion(dispatch.CategoryUpdate),
		RunE:              handler.Command(handler.HandlerFunc(buildUpdate)),
	}

	// Required flags
	cmd.Flags().Int64("id", 0, "Row ID (required)")
	cmd.Flags().String("field", "", "Column to change (required)")
	cmd.Flags().String("value", "", "New value (required)")
	for _, name := range []string{"id", "field", "value"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func buildUpdate(_ context.Context, args *handler.Arguments) (dispatch.Command, dispatch.Args, error) {
	cmd, err := cli.ResolveCommand(dispatch.CategoryUpdate, args.Args[0])
	if err != nil {
		return 0, dispatch.Args{}, err
	}

	parser := handler.NewFlagParser(args.GetCmd())
	id, err := parser.ParseID("id")
	if err != nil {
		return 0, dispatch.Args{}, err
	}
	field, err := parser.ParseString("field")
	if err != nil {
		return 0, dispatch.Args{}, err
	}

	return cmd, dispatch.Args{
		ID:    strconv.FormatInt(id, 10),
		Field: field,
		Value: args.GetString("value", ""),
	}, nil
}
