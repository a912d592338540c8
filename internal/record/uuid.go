// Package record defines the internal persisted schema. It is deliberately
// separate from the external models in internal/domain: identifiers are
// wrapped in a value type, field sets diverge, and stores persist records,
// never external resources directly.
package record

import (
	guuid "github.com/google/uuid"
	"github.com/pkg/errors"

	"netbound/internal/domain"
)

// UUID is the identifier value type of the persisted schema. The zero value
// means "unset". Construction goes through ParseUUID so a malformed
// identifier string is a mapping failure, never a silently accepted value.
type UUID struct {
	value string
}

// ParseUUID validates and wraps an identifier string.
func ParseUUID(s string) (UUID, error) {
	id, err := guuid.Parse(s)
	if err != nil {
		return UUID{}, errors.Wrapf(domain.ErrInvalidInput, "malformed uuid %q: %v", s, err)
	}
	return UUID{value: id.String()}, nil
}

// String returns the canonical string form, or "" when unset.
func (u UUID) String() string {
	return u.value
}

// IsZero reports whether the UUID is unset.
func (u UUID) IsZero() bool {
	return u.value == ""
}
