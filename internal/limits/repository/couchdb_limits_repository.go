// Package repository implements document store persistence for per-namespace
// limits records.
package repository

import (
	"context"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
	limitsDomain "github.com/allisson/tenantadmin/internal/limits/domain"
	"github.com/allisson/tenantadmin/internal/store"
)

// CouchDBLimitsRepository persists limits records in a CouchDB-compatible
// store. Limits share the subjects database, keyed "<namespace>/limits".
type CouchDBLimitsRepository struct {
	client   *store.Client
	database string
}

// NewCouchDBLimitsRepository creates a limits repository over the given store
// client and database.
func NewCouchDBLimitsRepository(client *store.Client, database string) *CouchDBLimitsRepository {
	return &CouchDBLimitsRepository{client: client, database: database}
}

// Get retrieves the limits record for a namespace.
func (r *CouchDBLimitsRepository) Get(ctx context.Context, namespace string) (*limitsDomain.Limits, error) {
	var limits limitsDomain.Limits
	if _, err := r.client.Get(ctx, r.database, limitsDomain.DocumentID(namespace), &limits); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, limitsDomain.ErrLimitsNotFound
		}
		return nil, err
	}
	return &limits, nil
}

// Save writes the limits record and returns the new revision.
func (r *CouchDBLimitsRepository) Save(ctx context.Context, limits *limitsDomain.Limits) (string, error) {
	rev, err := r.client.Put(ctx, r.database, limits)
	if err != nil {
		return "", err
	}
	limits.Rev = rev
	return rev, nil
}

// Delete removes the limits record at the given revision.
func (r *CouchDBLimitsRepository) Delete(ctx context.Context, namespace, rev string) error {
	return r.client.Delete(ctx, r.database, limitsDomain.DocumentID(namespace), rev)
}
