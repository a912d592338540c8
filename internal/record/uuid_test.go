package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netbound/internal/domain"
)

func TestParseUUID(t *testing.T) {
	u, err := ParseUUID("11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", u.String())
	assert.False(t, u.IsZero())
}

func TestParseUUIDMalformed(t *testing.T) {
	_, err := ParseUUID("not-a-uuid")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), `malformed uuid "not-a-uuid"`)
	assert.Contains(t, err.Error(), "invalid UUID")
}

func TestUUIDZeroValueIsUnset(t *testing.T) {
	var u UUID
	assert.True(t, u.IsZero())
	assert.Equal(t, "", u.String())
}
