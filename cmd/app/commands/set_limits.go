package commands

import (
	"context"
	"fmt"
	"log/slog"

	limitsDomain "github.com/allisson/tenantadmin/internal/limits/domain"
	limitsUseCase "github.com/allisson/tenantadmin/internal/limits/usecase"
)

// RunSetLimits merges the supplied limit fields over the namespace's stored
// record and persists the result. Fields left nil retain their stored value.
func RunSetLimits(
	ctx context.Context,
	limitsUC limitsUseCase.LimitsUseCase,
	logger *slog.Logger,
	namespace string,
	update *limitsDomain.Limits,
	io IOTuple,
) error {
	logger.Debug("setting limits", slog.String("namespace", namespace))

	if err := limitsUC.Set(ctx, namespace, update); err != nil {
		return fmt.Errorf("failed to set limits: %w", err)
	}

	_, _ = fmt.Fprintf(io.Writer, "Limits successfully set for %q\n", namespace)
	return nil
}
