// Package setup holds the commands that prepare the local environment
//
// e.g., astrolab setup config
package setup

import (
	"github.com/spf13/cobra"
)

// SetupCmd returns the setup command
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Prepare the local environment",
		Long:  `Write the astrolab configuration file and check its location.`,
	}

	cmd.AddCommand(ConfigCmd())

	return cmd
}
