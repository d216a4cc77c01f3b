package main

import (
	"github.com/spf13/cobra"

	"github.com/Livins1/confgen/internal/cli"
)

var (
	// Validate command flags
	validateOptionsPath string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config options document",
	Long: `Validate the config options document without generating anything.

This command checks for:
- Missing or malformed required fields (name, description, type, default)
- Duplicate option names
- Option types with no JSON schema equivalent (reported as warnings)

Examples:
  confgen validate
  confgen validate --options src/config_options.json`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.ValidateOptions{
			OptionsPath: validateOptionsPath,
			Verbose:     verbose,
		}

		cli.ValidateRun(opts)
	},
}

func init() {
	// Validate command specific flags
	validateCmd.Flags().StringVar(&validateOptionsPath, "options", "src/config_options.json", "Path to the config options document")
}
