package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/Livins1/confgen/internal/config"
)

// Schema metadata written ahead of the properties mapping.
const (
	schemaURI         = "http://json-schema.org/schema"
	schemaTitle       = "Config"
	schemaDescription = "Configuration file for the Zig language server"
)

// buildSchemaProperties builds the ordered option name → schema entry
// mapping. The first option whose type token falls outside the closed
// vocabulary aborts the whole build; schema generation is all or nothing,
// never a per-option skip.
func buildSchemaProperties(options []config.Option) (*orderedmap.OrderedMap[string, any], error) {
	properties := newOrderedMap()

	for _, opt := range options {
		schemaType, err := MapType(opt.CleanType())
		if err != nil {
			return nil, fmt.Errorf("option %q: %w", opt.CleanName(), err)
		}

		entry := newOrderedMap()
		entry.Set("description", opt.CleanDescription())
		entry.Set("type", schemaType)
		entry.Set("default", opt.CleanDefault())
		properties.Set(opt.CleanName(), entry)
	}

	return properties, nil
}

// WriteSchema renders the JSON schema document: the fixed metadata
// preamble, then the properties mapping serialized with option order
// preserved, then the closing brace.
func WriteSchema(w io.Writer, options []config.Option) error {
	properties, err := buildSchemaProperties(options)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	fmt.Fprintf(&buf, "%s%q: %q,\n", jsonIndent, "$schema", schemaURI)
	fmt.Fprintf(&buf, "%s%q: %q,\n", jsonIndent, "title", schemaTitle)
	fmt.Fprintf(&buf, "%s%q: %q,\n", jsonIndent, "description", schemaDescription)
	fmt.Fprintf(&buf, "%s%q: %q,\n", jsonIndent, "type", "object")
	fmt.Fprintf(&buf, "%s%q: ", jsonIndent, "properties")
	if err := writeOrderedJSON(&buf, properties, jsonIndent, 1); err != nil {
		return err
	}
	buf.WriteString("\n}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	return nil
}

// GenerateSchema writes the schema document at path, fully overwriting
// previous content. The document is rendered in memory first, so an
// unsupported option type fails before the old file is disturbed.
func GenerateSchema(path string, options []config.Option) error {
	var buf bytes.Buffer
	if err := WriteSchema(&buf, options); err != nil {
		return fmt.Errorf("failed to generate %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
