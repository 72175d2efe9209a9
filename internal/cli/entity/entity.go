// Package entity holds the cli commands working on laboratories,
// researchers, object types and objects
//
// e.g., astrolab create laboratory --lab-name=AAA-L
package entity

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/astrolab/internal/cli"
	"github.com/thenoetrevino/astrolab/internal/dispatch"
)

// Commands returns every entity command for the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ReadCmd(),
		CreateCmd(),
		UpdateCmd(),
		DeleteCmd(),
		GenerateCmd(),
		SearchCmd(),
		SchemaCmd(),
	}
}

// kindArg validates the single kind argument of a category's command
func kindArg(category dispatch.Category) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected one of %v", cli.KindArgs(category))
		}
		_, err := cli.ResolveCommand(category, args[0])
		return err
	}
}

func kindCompletion(category dispatch.Category) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return cli.KindArgs(category), cobra.ShellCompDirectiveNoFileComp
	}
}
