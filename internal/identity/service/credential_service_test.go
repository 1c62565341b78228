package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
)

func TestGenerate(t *testing.T) {
	svc := NewCredentialService()

	creds, err := svc.Generate()
	require.NoError(t, err)

	parsed, err := uuid.Parse(creds.UUID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	assert.Len(t, creds.Key, KeyLength)
	for _, c := range creds.Key {
		assert.Contains(t, alphanumericChars, string(c))
	}

	// successive calls produce distinct credentials
	other, err := svc.Generate()
	require.NoError(t, err)
	assert.NotEqual(t, creds.UUID, other.UUID)
	assert.NotEqual(t, creds.Key, other.Key)
}

func TestValidate(t *testing.T) {
	svc := NewCredentialService()
	validUUID := uuid.NewString()
	validKey := strings.Repeat("a", KeyLength)

	t.Run("valid pair is returned unchanged", func(t *testing.T) {
		creds, err := svc.Validate(validUUID + ":" + validKey)

		require.NoError(t, err)
		assert.Equal(t, validUUID, creds.UUID)
		assert.Equal(t, validKey, creds.Key)
		assert.Equal(t, validUUID+":"+validKey, creds.String())
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := svc.Validate(validUUID)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("malformed uuid", func(t *testing.T) {
		_, err := svc.Validate("not-a-uuid:" + validKey)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "not a valid UUID")
	})

	t.Run("short key", func(t *testing.T) {
		_, err := svc.Validate(validUUID + ":" + strings.Repeat("a", KeyLength-1))
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "at least 64 characters")
	})
}
