package cli

import "github.com/spf13/cobra"

// version is set at build time via ldflags.
var version = "dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the blogctl version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("blogctl %s\n", version)
		},
	}
}
