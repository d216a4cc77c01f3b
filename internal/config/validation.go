package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Package-level validator used by ValidateOptionSet.
var validate *validator.Validate

// optionNameRegex matches option identifiers: a letter or underscore
// followed by letters, digits or underscores. Surrounding whitespace is
// insignificant and stripped before matching.
var optionNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("option_name", validateOptionName); err != nil {
		panic(fmt.Errorf("register validator option_name: %w", err))
	}
}

// validateOptionName implements the "option_name" tag. Presence is
// enforced separately by the "required" tag; this only checks the shape
// of a non-empty name.
func validateOptionName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" {
		return false
	}
	return optionNameRegex.MatchString(name)
}

// ValidateOptionSet runs tag-based validation over every option record
// and then checks cross-record invariants: option names must be unique
// within the set (after trimming).
func ValidateOptionSet(set *OptionSet) error {
	for i := range set.Options {
		if err := validate.Struct(&set.Options[i]); err != nil {
			return formatValidationError(set.Options[i].CleanName(), i, err)
		}
	}

	seen := make(map[string]int, len(set.Options))
	for i := range set.Options {
		name := set.Options[i].CleanName()
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("duplicate option name %q (records %d and %d)", name, prev, i)
		}
		seen[name] = i
	}

	return nil
}

// formatValidationError renders go-playground/validator errors as concise,
// user-facing text naming the offending record.
func formatValidationError(name string, index int, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}

	label := name
	if label == "" {
		label = fmt.Sprintf("record %d", index)
	}

	return fmt.Errorf("option %s failed validation:\n  - %s",
		label, strings.Join(messages, "\n  - "))
}

// formatFieldError creates a user-friendly message for a single field
// validation failure.
func formatFieldError(fieldError validator.FieldError) string {
	field := strings.ToLower(fieldError.Field())

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "option_name":
		return fmt.Sprintf("%s must be an identifier (letters, digits, underscores, not starting with a digit)", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fieldError.Tag())
	}
}
