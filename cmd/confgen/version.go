package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Livins1/confgen/internal/git"
)

// Version subcommand
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("confgen version %s\n", version)

		if verbose {
			fmt.Printf("  Build time: %s\n", buildTime)
			fmt.Printf("  Go version: %s\n", runtime.Version())

			// Live repo state, when running inside a checkout
			if info, err := git.Describe("."); err == nil {
				commit := info.Commit
				if info.Dirty {
					commit += " (dirty)"
				}
				fmt.Printf("  Git commit: %s\n", commit)
				fmt.Printf("  Git branch: %s\n", info.Branch)
			}
		}
	},
}
