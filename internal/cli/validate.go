package cli

import (
	"fmt"
	"os"

	"github.com/Livins1/confgen/internal/config"
	"github.com/Livins1/confgen/internal/generator"
)

// ValidateOptions holds configuration for the validate command
type ValidateOptions struct {
	OptionsPath string
	Verbose     bool
}

// ValidateRun loads and validates the options document without writing
// any artifact. Option types outside the schema vocabulary are reported
// as warnings here: the default config would still generate, but schema
// generation would fail.
func ValidateRun(opts ValidateOptions) {
	fmt.Printf("🔍 Validating options document: %s\n", opts.OptionsPath)

	set, err := config.LoadOptions(opts.OptionsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Validation failed: %v\n", err)
		os.Exit(1)
	}

	var warnings int
	for _, opt := range set.Options {
		if _, err := generator.MapType(opt.CleanType()); err != nil {
			warnings++
			fmt.Printf("⚠️  Warning: option %q has type %q with no schema equivalent; schema generation will fail\n",
				opt.CleanName(), opt.CleanType())
		}

		if opts.Verbose {
			fmt.Printf("  %s: %s = %s\n", opt.CleanName(), opt.CleanType(), opt.CleanDefault())
		}
	}

	fmt.Printf("✅ %d config options are valid", len(set.Options))
	if warnings > 0 {
		fmt.Printf(" (%d warnings)", warnings)
	}
	fmt.Println()
}
