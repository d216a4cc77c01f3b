package main

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags (available to all commands)
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "confgen",
	Short: "Generate config artifacts for the Zig language server",
	Long: `confgen reads the canonical config options document and generates three
synchronized artifacts from it: the default configuration source file
(Config.zig), the JSON schema (schema.json), and the options table inside
the README.

Generating all three from one ordered document keeps them from drifting
apart and makes regeneration reproducible byte for byte.`,
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	// Add subcommands to root
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
