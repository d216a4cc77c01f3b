// Package config provides functionality for loading, parsing, and validating
// the configuration option descriptor document that drives artifact
// generation. The document holds one ordered list of option records; that
// order is significant and is carried unchanged into every generated
// artifact.
//
// # Basic Usage
//
// The main entry point is [LoadOptions], which loads the descriptor document
// (JSON or YAML, chosen by extension) and returns a validated [OptionSet]:
//
//	set, err := config.LoadOptions("config_options.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, opt := range set.Options {
//	    fmt.Println(opt.CleanName(), opt.CleanType())
//	}
//
// # Whitespace Handling
//
// Whitespace surrounding the name, description, type and default fields is
// insignificant. The Clean* accessors return the trimmed forms, which are
// what the generators emit; the raw fields keep whatever the document
// contained.
//
// A loaded OptionSet is treated as immutable: generators only read it, and
// the set is replaced wholesale by re-running the pipeline against a new
// descriptor document.
package config
