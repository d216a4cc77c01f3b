package config

import "strings"

// Option describes a single configuration option of the language server.
// The four required fields are emitted into every generated artifact;
// SetupQuestion is carried through for the setup wizard but not consumed
// by any generator.
type Option struct {
	Name          string `json:"name" yaml:"name" validate:"required,option_name"`
	Description   string `json:"description" yaml:"description" validate:"required"`
	Type          string `json:"type" yaml:"type" validate:"required"`
	Default       string `json:"default" yaml:"default" validate:"required"`
	SetupQuestion string `json:"setup_question,omitempty" yaml:"setup_question,omitempty"`
}

// OptionSet is the fixed shape of the descriptor document: a single
// "options" field holding the ordered list of option records. The order
// of the list is significant and is preserved into every artifact.
type OptionSet struct {
	Options []Option `json:"options" yaml:"options"`
}

// CleanName returns the option name with surrounding whitespace removed.
// Generators always emit the cleaned form; whitespace in the descriptor
// document is insignificant.
func (o Option) CleanName() string {
	return strings.TrimSpace(o.Name)
}

// CleanDescription returns the description with surrounding whitespace removed.
func (o Option) CleanDescription() string {
	return strings.TrimSpace(o.Description)
}

// CleanType returns the internal type token with surrounding whitespace removed.
func (o Option) CleanType() string {
	return strings.TrimSpace(o.Type)
}

// CleanDefault returns the default value expression with surrounding
// whitespace removed. The expression itself is emitted verbatim, it is
// never type-checked against the option type.
func (o Option) CleanDefault() string {
	return strings.TrimSpace(o.Default)
}

// HasSetupQuestion reports whether the descriptor carries a setup wizard
// question for this option.
func (o Option) HasSetupQuestion() bool {
	return strings.TrimSpace(o.SetupQuestion) != ""
}
