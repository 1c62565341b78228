package commands

import (
	"context"
	"fmt"
	"log/slog"

	identityUseCase "github.com/allisson/tenantadmin/internal/identity/usecase"
)

// RunCreateIdentity issues or rotates a namespace credential for a subject
// and prints the resulting "uuid:key" pair. With genOnly the credentials are
// generated or validated without touching storage; with silent the pair is
// not echoed.
func RunCreateIdentity(
	ctx context.Context,
	identityUC identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	subject string,
	namespace string,
	authKey string,
	revoke bool,
	genOnly bool,
	silent bool,
	io IOTuple,
) error {
	logger.Debug("creating identity",
		slog.String("subject", subject),
		slog.String("namespace", namespace),
		slog.Bool("revoke", revoke),
		slog.Bool("gen_only", genOnly),
	)

	creds, err := identityUC.Create(ctx, &identityUseCase.CreateIdentityInput{
		Subject:   subject,
		Namespace: namespace,
		AuthKey:   authKey,
		Revoke:    revoke,
		GenOnly:   genOnly,
	})
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}

	if !silent {
		_, _ = fmt.Fprintln(io.Writer, creds.String())
	}
	return nil
}
