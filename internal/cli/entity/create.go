package entity

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/cli/handler"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// CreateCmd returns the create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <kind>",
		Short: "Add a row",
		Long: `Add a row. Each kind takes its columns as flags.

  laboratory   --lab-name
  researcher   --full-name --level --laboratory-id
  object_type  --type --galaxy-location
  object       --name --distance --laboratory-id --type-id

Examples:
  astrolab create laboratory --lab-name="AAA-L"
  astrolab create researcher --full-name="Vera Rubin" --level=Senior --laboratory-id=1
  OBJECT_ID=$(astrolab create object --name=M31 --distance=2500000 --laboratory-id=1 --type-id=1 --quiet)
`,
		Args:              kindArg(dispatch.CategoryCreate),
		ValidArgsFunction: kindCompletion(dispatch.CategoryCreate),
		RunE:              handler.Command(handler.HandlerFunc(buildCreate)),
	}

	seen := make(map[string]bool)
	for _, kind := range models.Kinds() {
		for _, f := range models.CreateFields(kind) {
			name := cli.FlagName(f.Column())
			if seen[name] {
				continue
			}
			seen[name] = true
			cmd.Flags().String(name, "", fmt.Sprintf("%s column", f.Column()))
		}
	}

	handler.AddOutputFlags(cmd)
	return cmd
}

func buildCreate(_ context.Context, args *handler.Arguments) (dispatch.Command, dispatch.Args, error) {
	cmd, err := cli.ResolveCommand(dispatch.CategoryCreate, args.Args[0])
	if err != nil {
		return 0, dispatch.Args{}, err
	}

	fields := models.CreateFields(cmd.Kind())
	values := make([]string, len(fields))
	for i, f := range fields {
		name := cli.FlagName(f.Column())
		if !args.Has(name) {
			return 0, dispatch.Args{}, fmt.Errorf("--%s is required for %s", name, cmd.Kind())
		}
		values[i] = args.GetString(name, "")
	}
	return cmd, dispatch.Args{Values: values}, nil
}
