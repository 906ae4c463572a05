package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the shelf CLI version.
const Version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shelf v%s\n", Version)
		},
	}
}
