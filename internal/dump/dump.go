// Package dump retrieves raw database contents for inspection, through the
// primary index or a named design view.
package dump

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/allisson/tenantadmin/internal/config"
	apperrors "github.com/allisson/tenantadmin/internal/errors"
	"github.com/allisson/tenantadmin/internal/store"
)

// Dumper fetches database contents, resolving the well-known database
// aliases (subjects, entities, activations) to their configured names.
type Dumper struct {
	client *store.Client
	cfg    *config.Config
}

// NewDumper creates a Dumper over the given store client and configuration.
func NewDumper(client *store.Client, cfg *config.Config) *Dumper {
	return &Dumper{client: client, cfg: cfg}
}

// ResolveDatabase maps a database alias to its configured name; an unknown
// name passes through unchanged.
func (d *Dumper) ResolveDatabase(name string) string {
	switch name {
	case "subjects":
		return d.cfg.SubjectsDatabase
	case "entities":
		return d.cfg.EntitiesDatabase
	case "activations":
		return d.cfg.ActivationsDatabase
	default:
		return name
	}
}

// Dump fetches the contents of a database and returns them as indented JSON.
// view is either empty (primary index) or "design/view".
func (d *Dumper) Dump(ctx context.Context, database, view string, includeDocs bool) (string, error) {
	var designDoc, viewName string
	if view != "" {
		var found bool
		designDoc, viewName, found = strings.Cut(view, "/")
		if !found || designDoc == "" || viewName == "" {
			return "", apperrors.Wrap(
				apperrors.ErrInvalidInput,
				fmt.Sprintf("view name %q is not formatted correctly, should be design/view", view),
			)
		}
	}

	raw, err := d.client.Dump(ctx, d.ResolveDatabase(database), designDoc, viewName, includeDocs)
	if err != nil {
		return "", err
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "    "); err != nil {
		return "", apperrors.Wrap(apperrors.ErrStore, "failed to decode database contents")
	}
	return indented.String(), nil
}
