package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allisson/tenantadmin/internal/dump"
)

// RunDumpDatabase prints the contents of a database as indented JSON, through
// the primary index or a "design/view" view. The database may be one of the
// well-known aliases (subjects, entities, activations) or a literal name.
func RunDumpDatabase(
	ctx context.Context,
	dumper *dump.Dumper,
	logger *slog.Logger,
	database string,
	view string,
	includeDocs bool,
	io IOTuple,
) error {
	resolved := dumper.ResolveDatabase(database)
	logger.Debug("dumping database", slog.String("database", resolved))

	source := view
	if source == "" {
		source = "primary index"
	}
	_, _ = fmt.Fprintf(io.Writer, "getting contents for %s (%s)\n", resolved, source)

	contents, err := dumper.Dump(ctx, database, view, includeDocs)
	if err != nil {
		return fmt.Errorf("failed to get database contents: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer, contents)
	return nil
}
