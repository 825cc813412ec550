package application

import (
	"fmt"
	"strings"

	"toolsforwork/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "targetPath" -> "target path")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"targetPath":  "target path",
		"scriptPath":  "script path",
		"interpreter": "interpreter",
		"root":        "extension root",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateTarget checks that a document path can be handed to a transformer.
// An unrecognized extension yields an UnsupportedFileError.
func ValidateTarget(path string) error {
	if err := ValidateRequired("targetPath", path); err != nil {
		return err
	}
	if !domain.IsSupportedSource(path) {
		return &UnsupportedFileError{Path: path}
	}
	return nil
}
