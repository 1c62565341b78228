// Package mocks provides mock implementations for testing command handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	identityDomain "github.com/allisson/tenantadmin/internal/identity/domain"
	identityService "github.com/allisson/tenantadmin/internal/identity/service"
	identityUseCase "github.com/allisson/tenantadmin/internal/identity/usecase"
)

// MockIdentityUseCase is a mock implementation of IdentityUseCase for testing.
type MockIdentityUseCase struct {
	mock.Mock
}

// Create mocks the Create method of IdentityUseCase.
func (m *MockIdentityUseCase) Create(
	ctx context.Context,
	input *identityUseCase.CreateIdentityInput,
) (identityService.Credentials, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(identityService.Credentials), args.Error(1)
}

// Get mocks the Get method of IdentityUseCase.
func (m *MockIdentityUseCase) Get(
	ctx context.Context,
	subject, namespace string,
	all bool,
) ([]identityDomain.Namespace, error) {
	args := m.Called(ctx, subject, namespace, all)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identityDomain.Namespace), args.Error(1)
}

// Delete mocks the Delete method of IdentityUseCase.
func (m *MockIdentityUseCase) Delete(ctx context.Context, subject, namespace string) error {
	args := m.Called(ctx, subject, namespace)
	return args.Error(0)
}

// Whois mocks the Whois method of IdentityUseCase.
func (m *MockIdentityUseCase) Whois(ctx context.Context, authKey string) ([]identityDomain.Identity, error) {
	args := m.Called(ctx, authKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identityDomain.Identity), args.Error(1)
}

// List mocks the List method of IdentityUseCase.
func (m *MockIdentityUseCase) List(
	ctx context.Context,
	namespace string,
	pick int,
	all bool,
) ([]identityDomain.Identity, error) {
	args := m.Called(ctx, namespace, pick, all)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identityDomain.Identity), args.Error(1)
}

// SetBlocked mocks the SetBlocked method of IdentityUseCase.
func (m *MockIdentityUseCase) SetBlocked(
	ctx context.Context,
	subjects []string,
	blocked bool,
) []identityUseCase.BlockResult {
	args := m.Called(ctx, subjects, blocked)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]identityUseCase.BlockResult)
}
