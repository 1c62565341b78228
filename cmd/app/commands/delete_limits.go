package commands

import (
	"context"
	"fmt"
	"log/slog"

	limitsUseCase "github.com/allisson/tenantadmin/internal/limits/usecase"
)

// RunDeleteLimits removes a namespace's limits record, restoring system
// defaults for it.
func RunDeleteLimits(
	ctx context.Context,
	limitsUC limitsUseCase.LimitsUseCase,
	logger *slog.Logger,
	namespace string,
	io IOTuple,
) error {
	logger.Debug("deleting limits", slog.String("namespace", namespace))

	if err := limitsUC.Delete(ctx, namespace); err != nil {
		return fmt.Errorf("failed to delete limits: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer, "Limits deleted")
	return nil
}
