package application

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerCustomValidators registers domain-specific validation
// functions with the validator instance.
// registerCustomValidators returns an error if any registration fails.
func registerCustomValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("nodename", validateNodeName); err != nil {
		return fmt.Errorf("failed to register nodename validator: %w", err)
	}
	return nil
}

// validateNodeName accepts names usable as graph node identifiers:
// non-empty, no surrounding whitespace, and no newlines, so names stay
// printable in error messages, reports, and CSV headers.
func validateNodeName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return false
	}
	if strings.TrimSpace(name) != name {
		return false
	}
	return !strings.ContainsAny(name, "\n\r")
}
