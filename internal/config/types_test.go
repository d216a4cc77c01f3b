package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionCleanAccessors(t *testing.T) {
	opt := Option{
		Name:        "\tenable_snippets ",
		Description: " Enables snippet completions \n",
		Type:        " bool ",
		Default:     "  false",
	}

	assert.Equal(t, "enable_snippets", opt.CleanName())
	assert.Equal(t, "Enables snippet completions", opt.CleanDescription())
	assert.Equal(t, "bool", opt.CleanType())
	assert.Equal(t, "false", opt.CleanDefault())
}

func TestOptionHasSetupQuestion(t *testing.T) {
	assert.False(t, Option{}.HasSetupQuestion())
	assert.False(t, Option{SetupQuestion: "   "}.HasSetupQuestion())
	assert.True(t, Option{SetupQuestion: "Enable snippets?"}.HasSetupQuestion())
}
