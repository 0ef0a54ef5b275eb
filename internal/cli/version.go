package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treestack/pkg/buildinfo"
)

// versionCommand prints build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), appName+" "+buildinfo.String())
			return err
		},
	}
}
