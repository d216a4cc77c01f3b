package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOptions loads the descriptor document at the given path and returns
// the ordered option set. The document format is chosen by file extension:
// .json (the canonical format) or .yaml/.yml. The returned set has been
// validated; order of the options list is preserved exactly as written.
//
// A document that does not match the expected shape yields a *ParseError.
// Validation failures (empty fields, malformed or duplicate names) are
// reported through ValidateOptionSet's error formatting.
func LoadOptions(path string) (*OptionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options document %s: %w", path, err)
	}

	set, err := parseOptions(path, data)
	if err != nil {
		return nil, err
	}

	if err := ValidateOptionSet(set); err != nil {
		return nil, fmt.Errorf("invalid options in %s: %w", path, err)
	}

	return set, nil
}

// parseOptions decodes the raw document into an OptionSet without
// validating field contents.
func parseOptions(path string, data []byte) (*OptionSet, error) {
	var set OptionSet

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, &ParseError{Path: path, Reason: "not a valid YAML options document", Err: err}
		}
	default:
		if err := json.Unmarshal(data, &set); err != nil {
			return nil, &ParseError{Path: path, Reason: "not a valid JSON options document", Err: err}
		}
	}

	// A document without the "options" field decodes to a nil slice.
	// An explicitly empty list is also rejected: an empty option set
	// would silently blank out every generated artifact.
	if set.Options == nil {
		return nil, &ParseError{Path: path, Reason: `missing required "options" field`}
	}
	if len(set.Options) == 0 {
		return nil, &ParseError{Path: path, Reason: `"options" field holds no option records`}
	}

	return &set, nil
}
