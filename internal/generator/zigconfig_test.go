package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Livins1/confgen/internal/config"
)

func TestWriteZigConfig(t *testing.T) {
	t.Run("two options in document order", func(t *testing.T) {
		options := []config.Option{
			{Name: "a", Description: "desc a", Type: "bool", Default: "false"},
			{Name: "b", Description: "desc b", Type: "usize", Default: "0"},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteZigConfig(&buf, options))

		want := `//! DO NOT EDIT
//! Configuration options for the Zig language server.
//! Edit the options document and re-run confgen to regenerate.

/// desc a
a: bool = false,

/// desc b
b: usize = 0,

// DO NOT EDIT
`
		assert.Equal(t, want, buf.String())
	})

	t.Run("fields are trimmed before emission", func(t *testing.T) {
		options := []config.Option{
			{Name: " a ", Description: "\tdesc a ", Type: " bool\t", Default: " false "},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteZigConfig(&buf, options))

		assert.Contains(t, buf.String(), "/// desc a\na: bool = false,\n")
	})

	t.Run("unknown type token is accepted verbatim", func(t *testing.T) {
		// Only the schema generator enforces the closed vocabulary.
		options := []config.Option{
			{Name: "ratio", Description: "a ratio", Type: "f64", Default: "0.5"},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteZigConfig(&buf, options))
		assert.Contains(t, buf.String(), "ratio: f64 = 0.5,")
	})

	t.Run("multi-line description becomes multi-line doc comment", func(t *testing.T) {
		options := []config.Option{
			{Name: "style", Description: "first line\n\nthird line", Type: "bool", Default: "true"},
		}

		var buf bytes.Buffer
		require.NoError(t, WriteZigConfig(&buf, options))

		assert.Contains(t, buf.String(), "/// first line\n///\n/// third line\nstyle: bool = true,")
	})
}

func TestGenerateZigConfig(t *testing.T) {
	options := []config.Option{
		{Name: "a", Description: "desc a", Type: "bool", Default: "false"},
	}

	t.Run("fully overwrites previous content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Config.zig")
		stale := strings.Repeat("stale content that is much longer than the generated file\n", 50)
		require.NoError(t, os.WriteFile(path, []byte(stale), 0o644))

		require.NoError(t, GenerateZigConfig(path, options))

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		var want bytes.Buffer
		require.NoError(t, WriteZigConfig(&want, options))
		assert.Equal(t, want.String(), string(content))
	})

	t.Run("unwritable target directory", func(t *testing.T) {
		err := GenerateZigConfig(filepath.Join(t.TempDir(), "missing", "Config.zig"), options)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create config file")
	})
}
