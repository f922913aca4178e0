package main

import (
	"fmt"
	"runtime"

	"github.com/socialpost/socialpost"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "socialpost version %s\n", socialpost.Version)

			if verbose {
				fmt.Fprintf(out, "  Commit: %s\n", socialpost.Commit)
				fmt.Fprintf(out, "  Build time: %s\n", socialpost.CompiledAt)
				fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
			}
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print build details")

	return cmd
}
