package cli

import (
	"fmt"
	"os"

	"github.com/Livins1/confgen/internal/config"
	"github.com/Livins1/confgen/internal/generator"
)

// GenerateOptions holds configuration for the generate command
type GenerateOptions struct {
	OptionsPath string
	ConfigOut   string
	SchemaOut   string
	ReadmePath  string
	DryRun      bool
	Verbose     bool
}

// GenerateRun loads the options document once and runs the three
// generators sequentially, each against its own target. The first failure
// prints a diagnostic naming the stage and artifact and exits non-zero;
// artifacts that were already written stay in place, there is no
// cross-artifact rollback.
func GenerateRun(opts GenerateOptions) {
	set, err := config.LoadOptions(opts.OptionsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error loading options document %s: %v\n", opts.OptionsPath, err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d config options from %s\n", len(set.Options), opts.OptionsPath)

	if opts.Verbose {
		printOptionsSummary(set)
	}

	if opts.DryRun {
		fmt.Printf("🔍 Dry run - would generate %s and %s, and update %s\n",
			opts.ConfigOut, opts.SchemaOut, opts.ReadmePath)
		return
	}

	if err := generator.GenerateZigConfig(opts.ConfigOut, set.Options); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error generating default config %s: %v\n", opts.ConfigOut, err)
		os.Exit(1)
	}
	fmt.Printf("✅ Generated %s\n", opts.ConfigOut)

	if err := generator.GenerateSchema(opts.SchemaOut, set.Options); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error generating schema %s: %v\n", opts.SchemaOut, err)
		os.Exit(1)
	}
	fmt.Printf("✅ Generated %s\n", opts.SchemaOut)

	if err := generator.UpdateReadme(opts.ReadmePath, set.Options); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error updating documentation %s: %v\n", opts.ReadmePath, err)
		os.Exit(1)
	}
	fmt.Printf("✅ Updated %s\n", opts.ReadmePath)

	fmt.Println("🎉 All config artifacts are in sync!")
}

// printOptionsSummary prints one line per loaded option
func printOptionsSummary(set *config.OptionSet) {
	fmt.Printf("\nConfig options:\n")
	for _, opt := range set.Options {
		fmt.Printf("  %s: %s = %s\n", opt.CleanName(), opt.CleanType(), opt.CleanDefault())
		if opt.HasSetupQuestion() {
			fmt.Printf("    setup question: %s\n", opt.SetupQuestion)
		}
	}
	fmt.Println()
}
