package validation

import (
	"fmt"
	"strings"
)

// ValidationError reports one rejected attribute of a resource payload.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Message)
}

// ValidationErrors collects every failure found in one pass over a payload.
// The aggregate checks report all rejected attributes at once instead of one
// per request.
type ValidationErrors []*ValidationError

// Add records a failure against the named attribute.
func (e *ValidationErrors) Add(field, value, message string) {
	*e = append(*e, &ValidationError{Field: field, Value: value, Message: message})
}

// HasErrors reports whether any attribute was rejected.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Error joins every failure into one message, one clause per attribute.
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
