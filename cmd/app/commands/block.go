package commands

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
	identityUseCase "github.com/allisson/tenantadmin/internal/identity/usecase"
)

// RunSetBlocked blocks or unblocks each of the given subjects, reporting the
// outcome per subject. Partial failure is tolerated per subject but surfaced
// as an overall error once every subject has been processed.
func RunSetBlocked(
	ctx context.Context,
	identityUC identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	subjects []string,
	blocked bool,
	io IOTuple,
) error {
	verb := "block"
	if !blocked {
		verb = "unblock"
	}
	logger.Debug("updating subject block state",
		slog.String("action", verb),
		slog.Int("subjects", len(subjects)),
	)

	results := identityUC.SetBlocked(ctx, subjects, blocked)

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
			_, _ = fmt.Fprintf(io.Writer, "Failed to %s %q (%v)\n", verb, result.Subject, result.Err)
			continue
		}
		_, _ = fmt.Fprintf(io.Writer, "%q %sed successfully\n", result.Subject, verb)
	}

	if failed > 0 {
		return apperrors.New(fmt.Sprintf("failed to %s %d of %d subjects", verb, failed, len(results)))
	}
	return nil
}
