package commands

import (
	"context"
	"fmt"
	"log/slog"

	identityUseCase "github.com/allisson/tenantadmin/internal/identity/usecase"
)

// RunDeleteIdentity removes a whole subject document, or one namespace
// binding when a namespace is given.
func RunDeleteIdentity(
	ctx context.Context,
	identityUC identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	subject string,
	namespace string,
	io IOTuple,
) error {
	logger.Debug("deleting identity", slog.String("subject", subject), slog.String("namespace", namespace))

	if err := identityUC.Delete(ctx, subject, namespace); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	if namespace == "" {
		_, _ = fmt.Fprintln(io.Writer, "Subject deleted")
	} else {
		_, _ = fmt.Fprintln(io.Writer, "Namespace deleted")
	}
	return nil
}
