package commands

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
	"github.com/allisson/tenantadmin/internal/syslog"
)

// defaultComponents are the platform components whose logs are retrieved when
// none are named explicitly.
var defaultComponents = []string{"controller0", "scheduler0", "invoker0"}

// RunGetLogs retrieves the named components' logs, filtered by transaction id
// or grep expression, merges them into one timestamp-ordered stream, and
// prints it. Components without a log file are skipped with a warning.
func RunGetLogs(
	ctx context.Context,
	reader *syslog.Reader,
	logger *slog.Logger,
	components []string,
	tid string,
	grepExpr string,
	io IOTuple,
) error {
	if len(components) == 0 {
		components = defaultComponents
	}
	logger.Debug("retrieving component logs",
		slog.Int("components", len(components)),
		slog.String("tid", tid),
	)

	var streams [][]string
	for _, component := range components {
		lines, err := reader.ComponentLogs(component, tid, grepExpr)
		if err != nil {
			if apperrors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("skipping component without logs", slog.String("component", component))
				continue
			}
			return fmt.Errorf("failed to read logs: %w", err)
		}
		streams = append(streams, lines)
	}

	merged := syslog.Merge(streams...)
	if merged != "" {
		_, _ = fmt.Fprintln(io.Writer, merged)
	}
	return nil
}
