package usecase

import (
	"context"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
	limitsDomain "github.com/allisson/tenantadmin/internal/limits/domain"
)

// limitsUseCase implements LimitsUseCase over a LimitsRepository.
type limitsUseCase struct {
	limitsRepo LimitsRepository
}

// NewLimitsUseCase creates a new LimitsUseCase with the provided dependencies.
func NewLimitsUseCase(limitsRepo LimitsRepository) LimitsUseCase {
	return &limitsUseCase{limitsRepo: limitsRepo}
}

// Set merges the update over the stored record and persists it. Absence of a
// stored record is tolerated: the merge starts from an empty record.
func (u *limitsUseCase) Set(ctx context.Context, namespace string, update *limitsDomain.Limits) error {
	stored, err := u.limitsRepo.Get(ctx, namespace)
	if apperrors.Is(err, apperrors.ErrNotFound) {
		stored = limitsDomain.NewLimits(namespace)
	} else if err != nil {
		return err
	}

	stored.Merge(update)
	_, err = u.limitsRepo.Save(ctx, stored)
	return err
}

// Get returns the stored limits record, or ErrLimitsNotFound when the
// namespace has no record and system defaults apply.
func (u *limitsUseCase) Get(ctx context.Context, namespace string) (*limitsDomain.Limits, error) {
	return u.limitsRepo.Get(ctx, namespace)
}

// Delete removes the limits record using the revision fetched with it.
func (u *limitsUseCase) Delete(ctx context.Context, namespace string) error {
	stored, err := u.limitsRepo.Get(ctx, namespace)
	if err != nil {
		return err
	}
	return u.limitsRepo.Delete(ctx, namespace, stored.Rev)
}
