package errors

import (
	"fmt"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *NavError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *NavError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// ConfigValidation creates a schema validation error listing every violation
func ConfigValidation(path string, violations []string) *NavError {
	msg := "configuration does not match schema"
	if len(violations) > 0 {
		msg += ":\n" + strings.Join(violations, "\n")
	}
	err := New(ErrCodeConfigValidation, msg).
		WithDetail("violations", violations)
	if path != "" {
		err = err.WithDetail("path", path)
	}
	return err
}

// UnsupportedFormat creates an error for a configuration file extension no decoder handles
func UnsupportedFormat(path, ext string) *NavError {
	return New(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported configuration format %q", ext)).
		WithDetail("path", path).
		WithDetail("extension", ext)
}

// InvalidInput creates an invalid input error for a named field
func InvalidInput(field, reason string) *NavError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetail("field", field)
}
