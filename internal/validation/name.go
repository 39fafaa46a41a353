package validation

import (
	"strings"
)

// ValidateName validates display name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return Error("name is required")
	}

	if len(trimmed) < 2 {
		return Error("name must be at least 2 characters")
	}

	if len(trimmed) > 50 {
		return Error("name is too long (max 50 characters)")
	}

	return nil
}
