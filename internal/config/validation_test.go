package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// option builds a minimal valid Option for validation tests.
func option(name string) Option {
	return Option{
		Name:        name,
		Description: "some description",
		Type:        "bool",
		Default:     "false",
	}
}

func TestValidateOptionSet(t *testing.T) {
	t.Run("valid set", func(t *testing.T) {
		set := &OptionSet{Options: []Option{option("enable_snippets"), option("zig_exe_path")}}
		assert.NoError(t, ValidateOptionSet(set))
	})

	t.Run("missing description", func(t *testing.T) {
		opt := option("enable_snippets")
		opt.Description = ""
		err := ValidateOptionSet(&OptionSet{Options: []Option{opt}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")
		assert.Contains(t, err.Error(), "enable_snippets")
	})

	t.Run("missing name labels record by index", func(t *testing.T) {
		opt := option("")
		err := ValidateOptionSet(&OptionSet{Options: []Option{option("ok"), opt}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 1")
	})

	t.Run("name must be an identifier", func(t *testing.T) {
		for _, bad := range []string{"1snippets", "enable-snippets", "enable snippets", "enable.snippets"} {
			err := ValidateOptionSet(&OptionSet{Options: []Option{option(bad)}})
			require.Error(t, err, "name %q should be rejected", bad)
			assert.Contains(t, err.Error(), "identifier")
		}
	})

	t.Run("identifier check ignores surrounding whitespace", func(t *testing.T) {
		set := &OptionSet{Options: []Option{option("  enable_snippets\t")}}
		assert.NoError(t, ValidateOptionSet(set))
	})

	t.Run("duplicate names after trimming", func(t *testing.T) {
		set := &OptionSet{Options: []Option{option("warn_style"), option("  warn_style ")}}
		err := ValidateOptionSet(set)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate option name "warn_style"`)
		assert.Contains(t, err.Error(), "records 0 and 1")
	})
}
