package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// FormatMessage renders the errors as a single human-readable string for
// the response envelope.
func FormatMessage(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	case "len":
		return fmt.Sprintf("%s must contain exactly %s values", label, e.Param())

	case "min":
		if rules, ok := ValidationRules[e.Field()]; ok {
			if unit, hasUnit := rules["unit"]; hasUnit {
				return fmt.Sprintf("%s values must be at least %s %s", label, e.Param(), unit)
			}
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())

	case "max":
		if rules, ok := ValidationRules[e.Field()]; ok {
			if unit, hasUnit := rules["unit"]; hasUnit {
				return fmt.Sprintf("%s values must be at most %s %s", label, e.Param(), unit)
			}
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), "'", ""))

	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
