// Package service provides credential generation and validation for namespace
// bindings. Credentials are a UUIDv4 identifier paired with a 64-character
// alphanumeric secret key drawn from a cryptographically secure source.
package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
)

const (
	alphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// KeyLength is the length of generated secret keys and the minimum
	// accepted length for operator-supplied keys.
	KeyLength = 64
)

// Credentials is a credential identifier and secret key pair.
type Credentials struct {
	UUID string
	Key  string
}

// String renders the credentials in the "uuid:key" wire form.
func (c Credentials) String() string {
	return c.UUID + ":" + c.Key
}

// CredentialService generates fresh credentials and validates
// operator-supplied ones.
type CredentialService interface {
	// Generate returns a fresh random credential pair.
	Generate() (Credentials, error)

	// Validate parses an operator-supplied "uuid:key" pair, checking the
	// identifier parses as a UUID and the key meets the minimum length.
	Validate(authKey string) (Credentials, error)
}

type credentialService struct{}

// NewCredentialService creates a CredentialService backed by crypto/rand.
func NewCredentialService() CredentialService {
	return &credentialService{}
}

// Generate creates a fresh UUIDv4 identifier and a random alphanumeric key.
func (s *credentialService) Generate() (Credentials, error) {
	key, err := randomAlphanumeric(KeyLength)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{UUID: uuid.NewString(), Key: key}, nil
}

// Validate parses and checks an operator-supplied "uuid:key" pair. The values
// are returned unchanged apart from UUID string normalization.
func (s *credentialService) Validate(authKey string) (Credentials, error) {
	credentialUUID, key, found := strings.Cut(authKey, ":")
	if !found {
		return Credentials{}, apperrors.Wrap(apperrors.ErrInvalidInput, "credentials must be of the form uuid:key")
	}

	parsed, err := uuid.Parse(credentialUUID)
	if err != nil {
		return Credentials{}, apperrors.Wrap(apperrors.ErrInvalidInput, "credential id is not a valid UUID")
	}

	if len(key) < KeyLength {
		return Credentials{}, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			fmt.Sprintf("credential key must be at least %d characters long", KeyLength),
		)
	}

	return Credentials{UUID: parsed.String(), Key: key}, nil
}

// randomAlphanumeric creates a cryptographically secure random string of the
// given length drawn from [A-Za-z0-9].
func randomAlphanumeric(length int) (string, error) {
	key := make([]byte, length)
	charsLen := big.NewInt(int64(len(alphanumericChars)))

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, charsLen)
		if err != nil {
			return "", apperrors.Wrap(err, "failed to generate random character")
		}
		key[i] = alphanumericChars[n.Int64()]
	}

	return string(key), nil
}
