package main

import (
	"github.com/spf13/cobra"

	"github.com/Livins1/confgen/internal/cli"
)

var (
	// Command-specific flags for generate
	optionsPath string
	configOut   string
	schemaOut   string
	readmePath  string
	dryRun      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate all config artifacts from the options document",
	Long: `Generate the default config source file, the JSON schema, and the README
options table from the config options document.

Examples:
  confgen generate
  confgen generate --options src/config_options.json --readme README.md
  confgen generate --dry-run`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.GenerateOptions{
			OptionsPath: optionsPath,
			ConfigOut:   configOut,
			SchemaOut:   schemaOut,
			ReadmePath:  readmePath,
			DryRun:      dryRun,
			Verbose:     verbose,
		}

		cli.GenerateRun(opts)
	},
}

func init() {
	// Generate command specific flags
	generateCmd.Flags().StringVar(&optionsPath, "options", "src/config_options.json", "Path to the config options document")
	generateCmd.Flags().StringVarP(&configOut, "config-out", "o", "src/Config.zig", "Output path for the default config source file")
	generateCmd.Flags().StringVar(&schemaOut, "schema-out", "schema.json", "Output path for the JSON schema")
	generateCmd.Flags().StringVar(&readmePath, "readme", "README.md", "Documentation file whose generated section is updated in place")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Load and validate the options without writing any artifact")
}
