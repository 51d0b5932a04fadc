package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps JSON field names to user-friendly labels
var FieldLabels = map[string]string{
	"title":          "Title",
	"excerpt":        "Excerpt",
	"content":        "Content",
	"tags":           "Tags",
	"read_time":      "Read time",
	"image":          "Image",
	"is_published":   "Published",
	"name":           "Name",
	"email":          "Email",
	"subject":        "Subject",
	"message":        "Message",
	"company":        "Company",
	"phone":          "Phone",
	"status":         "Status",
	"limit":          "Limit",
	"skip":           "Skip",
	"published_only": "Published only",
}

// FormatValidationErrors converts binding and validator errors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, formatSingleError(e))
		}
		return messages
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []string{fmt.Sprintf("%s: must be of type %s", FieldLabel(typeErr.Field), typeErr.Type.String())}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []string{fmt.Sprintf("Malformed JSON at offset %d", syntaxErr.Offset)}
	}

	// Not a validation error, return generic message
	return []string{err.Error()}
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := FieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: field required", label)
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// FieldLabel returns the user-friendly label for a field
func FieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
