package commands

import (
	"context"
	"fmt"
	"log/slog"

	identityUseCase "github.com/allisson/tenantadmin/internal/identity/usecase"
)

// RunWhois reverse-resolves a "uuid:key" credential pair to its owning
// subject and namespace. An unrecognized credential is a valid negative
// result, reported informationally.
func RunWhois(
	ctx context.Context,
	identityUC identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	authKey string,
	io IOTuple,
) error {
	logger.Debug("resolving credentials")

	identities, err := identityUC.Whois(ctx, authKey)
	if err != nil {
		return fmt.Errorf("failed to resolve credentials: %w", err)
	}

	if len(identities) == 0 {
		_, _ = fmt.Fprintln(io.Writer, "Subject id is not recognized")
		return nil
	}

	for _, identity := range identities {
		_, _ = fmt.Fprintf(io.Writer, "subject: %s\n", identity.Subject)
		_, _ = fmt.Fprintf(io.Writer, "namespace: %s\n", identity.Namespace)
	}
	return nil
}
