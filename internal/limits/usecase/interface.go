// Package usecase implements business logic orchestration for per-namespace
// limits administration.
package usecase

import (
	"context"

	limitsDomain "github.com/allisson/tenantadmin/internal/limits/domain"
)

// LimitsRepository defines persistence operations for limits records.
type LimitsRepository interface {
	// Get retrieves the limits record for a namespace.
	// Returns ErrLimitsNotFound if no record exists.
	Get(ctx context.Context, namespace string) (*limitsDomain.Limits, error)

	// Save writes the limits record, creating it when it carries no revision.
	Save(ctx context.Context, limits *limitsDomain.Limits) (string, error)

	// Delete removes the limits record at the given revision.
	Delete(ctx context.Context, namespace, rev string) error
}

// LimitsUseCase defines the limits administration operations.
type LimitsUseCase interface {
	// Set merges the supplied fields over the stored record (starting from an
	// empty one when absent) and persists the result.
	Set(ctx context.Context, namespace string, update *limitsDomain.Limits) error

	// Get returns the stored limits record. An absent record is the valid
	// "system defaults apply" outcome and returns ErrLimitsNotFound for the
	// caller to report informationally.
	Get(ctx context.Context, namespace string) (*limitsDomain.Limits, error)

	// Delete removes the limits record, restoring system defaults.
	// Returns ErrLimitsNotFound if no record exists.
	Delete(ctx context.Context, namespace string) error
}
