package commands

import (
	"context"
	"fmt"
	"log/slog"

	identityUseCase "github.com/allisson/tenantadmin/internal/identity/usecase"
)

// RunGetIdentity prints a subject's namespace bindings: every binding as
// "name\tuuid:key" when all is set, otherwise one "uuid:key" for the
// requested namespace (defaulting to the subject identifier).
func RunGetIdentity(
	ctx context.Context,
	identityUC identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	subject string,
	namespace string,
	all bool,
	io IOTuple,
) error {
	logger.Debug("getting identity", slog.String("subject", subject), slog.Bool("all", all))

	namespaces, err := identityUC.Get(ctx, subject, namespace, all)
	if err != nil {
		return fmt.Errorf("failed to get identity: %w", err)
	}

	if all {
		for _, ns := range namespaces {
			_, _ = fmt.Fprintf(io.Writer, "%s\t%s:%s\n", ns.Name, ns.UUID, ns.Key)
		}
		return nil
	}

	_, _ = fmt.Fprintf(io.Writer, "%s:%s\n", namespaces[0].UUID, namespaces[0].Key)
	return nil
}
