package commands

import (
	"context"
	"fmt"
	"log/slog"

	identityUseCase "github.com/allisson/tenantadmin/internal/identity/usecase"
)

// RunListNamespace prints the identities bound to a namespace, at most pick
// entries unless all is set. With keysOnly the owning subjects are omitted.
func RunListNamespace(
	ctx context.Context,
	identityUC identityUseCase.IdentityUseCase,
	logger *slog.Logger,
	namespace string,
	pick int,
	all bool,
	keysOnly bool,
	io IOTuple,
) error {
	logger.Debug("listing namespace identities", slog.String("namespace", namespace))

	identities, err := identityUC.List(ctx, namespace, pick, all)
	if err != nil {
		return fmt.Errorf("failed to list namespace: %w", err)
	}

	if len(identities) == 0 {
		_, _ = fmt.Fprintf(io.Writer, "no identities found for namespace %q\n", namespace)
		return nil
	}

	for _, identity := range identities {
		if keysOnly {
			_, _ = fmt.Fprintf(io.Writer, "%s:%s\n", identity.UUID, identity.Key)
		} else {
			_, _ = fmt.Fprintf(io.Writer, "%s:%s\t%s\n", identity.UUID, identity.Key, identity.Subject)
		}
	}
	return nil
}
