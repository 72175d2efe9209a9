package entity

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/cli/handler"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
	"github.com/thenoetrevino/astrolab/internal/models"
)

// searchFlags maps each search onto its filter flags, in filter order
var searchFlags = map[dispatch.Command][]string{
	dispatch.CmdSearchResearchers: {"lab", "level"},
	dispatch.CmdSearchObjects:     {"lab", "type"},
	dispatch.CmdSearchLabs:        {"researcher", "level", "object"},
}

// SearchCmd returns the search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <researchers|objects|labs>",
		Short: "Search with substring and exact-match filters",
		Long: fmt.Sprintf(`Search with filters. Name filters match substrings; level matches
exactly. A filter that is not given, or given as %q, is ignored.

  researchers  --lab --level
  objects      --lab --type
  labs         --researcher --level --object

Examples:
  astrolab search researchers --lab=Optics --level=Senior
  astrolab search labs --researcher=Ann --object=M3 --json
`, models.NoFilter),
		Args:              kindArg(dispatch.CategorySearch),
		ValidArgsFunction: kindCompletion(dispatch.CategorySearch),
		RunE:              handler.Command(handler.HandlerFunc(buildSearch)),
	}

	cmd.Flags().String("lab", "", "Laboratory name contains")
	cmd.Flags().String("level", "", "Researcher level equals")
	cmd.Flags().String("type", "", "Object type contains")
	cmd.Flags().String("researcher", "", "Researcher full name contains")
	cmd.Flags().String("object", "", "Object name contains")

	handler.AddOutputFlags(cmd)
	return cmd
}

func buildSearch(_ context.Context, args *handler.Arguments) (dispatch.Command, dispatch.Args, error) {
	cmd, err := cli.ResolveCommand(dispatch.CategorySearch, args.Args[0])
	if err != nil {
		return 0, dispatch.Args{}, err
	}

	parser := handler.NewFlagParser(args.GetCmd())
	names := searchFlags[cmd]
	filters := make([]string, len(names))
	for i, name := range names {
		if filters[i], err = parser.ParseFilter(name); err != nil {
			return 0, dispatch.Args{}, err
		}
	}

	for _, name := range []string{"lab", "level", "type", "researcher", "object"} {
		if args.Has(name) && !slices.Contains(names, name) {
			return 0, dispatch.Args{}, fmt.Errorf("--%s does not apply to %s search", name, cmd.Kind().Plural())
		}
	}

	return cmd, dispatch.Args{Filters: filters}, nil
}
