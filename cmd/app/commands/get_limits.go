package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
	limitsUseCase "github.com/allisson/tenantadmin/internal/limits/usecase"
)

// RunGetLimits prints the limit fields set for a namespace, one "name = value"
// line per stored field. A namespace with no limits record falls back to the
// system defaults, which is a valid outcome rather than an error.
func RunGetLimits(
	ctx context.Context,
	limitsUC limitsUseCase.LimitsUseCase,
	logger *slog.Logger,
	namespace string,
	io IOTuple,
) error {
	logger.Debug("getting limits", slog.String("namespace", namespace))

	limits, err := limitsUC.Get(ctx, namespace)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			_, _ = fmt.Fprintln(io.Writer, "No limits found, default system limits apply")
			return nil
		}
		return fmt.Errorf("failed to get limits: %w", err)
	}

	if limits.InvocationsPerMinute != nil {
		_, _ = fmt.Fprintf(io.Writer, "invocationsPerMinute = %d\n", *limits.InvocationsPerMinute)
	}
	if limits.FiresPerMinute != nil {
		_, _ = fmt.Fprintf(io.Writer, "firesPerMinute = %d\n", *limits.FiresPerMinute)
	}
	if limits.ConcurrentInvocations != nil {
		_, _ = fmt.Fprintf(io.Writer, "concurrentInvocations = %d\n", *limits.ConcurrentInvocations)
	}
	if limits.AllowedKinds != nil {
		_, _ = fmt.Fprintf(io.Writer, "allowedKinds = %s\n", strings.Join(limits.AllowedKinds, ", "))
	}
	if limits.StoreActivations != nil {
		_, _ = fmt.Fprintf(io.Writer, "storeActivations = %t\n", *limits.StoreActivations)
	}
	return nil
}
