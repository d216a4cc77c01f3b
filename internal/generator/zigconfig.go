package generator

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Livins1/confgen/internal/config"
)

// Embed all templates at compile time
//
//go:embed templates/*.tmpl
var templates embed.FS

// WriteZigConfig renders the default configuration source file: a header
// comment block, then for each option (in document order) a doc comment
// built from the trimmed description followed by its field declaration,
// then a trailer comment. The type token is emitted verbatim; unknown
// tokens are deliberately not rejected here, only schema generation
// enforces the closed vocabulary.
func WriteZigConfig(w io.Writer, options []config.Option) error {
	content, err := templates.ReadFile("templates/config.zig.tmpl")
	if err != nil {
		return err
	}

	tmpl, err := template.New("config.zig").Funcs(template.FuncMap{
		"doccomment": docComment,
	}).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse config template: %w", err)
	}

	data := struct{ Options []config.Option }{Options: options}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render config template: %w", err)
	}

	return nil
}

// GenerateZigConfig writes the default configuration file at path, fully
// overwriting previous content. A failure while writing leaves a truncated
// file behind; re-running the generator is the recovery path.
func GenerateZigConfig(path string, options []config.Option) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file %s: %w", path, err)
	}
	defer out.Close()

	if err := WriteZigConfig(out, options); err != nil {
		return fmt.Errorf("failed to generate %s: %w", path, err)
	}

	return nil
}

// docComment renders a description as a Zig doc comment, prefixing every
// line with "///".
func docComment(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			b.WriteString("///\n")
		} else {
			b.WriteString("/// " + line + "\n")
		}
	}
	return b.String()
}
