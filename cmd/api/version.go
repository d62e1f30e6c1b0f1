package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Set by the linker at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of the Floowy API.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("floowy api\n")
			cmd.Printf("  Version: %s\n", version)
			cmd.Printf("  Commit:  %s\n", commit)
			cmd.Printf("  Built:   %s\n", date)
			cmd.Printf("  Runtime: %s\n", runtime.Version())
		},
	}
}
