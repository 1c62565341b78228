// Package mocks provides mock implementations for testing command handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	limitsDomain "github.com/allisson/tenantadmin/internal/limits/domain"
)

// MockLimitsUseCase is a mock implementation of LimitsUseCase for testing.
type MockLimitsUseCase struct {
	mock.Mock
}

// Set mocks the Set method of LimitsUseCase.
func (m *MockLimitsUseCase) Set(ctx context.Context, namespace string, update *limitsDomain.Limits) error {
	args := m.Called(ctx, namespace, update)
	return args.Error(0)
}

// Get mocks the Get method of LimitsUseCase.
func (m *MockLimitsUseCase) Get(ctx context.Context, namespace string) (*limitsDomain.Limits, error) {
	args := m.Called(ctx, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*limitsDomain.Limits), args.Error(1)
}

// Delete mocks the Delete method of LimitsUseCase.
func (m *MockLimitsUseCase) Delete(ctx context.Context, namespace string) error {
	args := m.Called(ctx, namespace)
	return args.Error(0)
}
