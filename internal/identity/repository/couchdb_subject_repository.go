// Package repository implements document store persistence for subject
// documents and identities-view lookups.
package repository

import (
	"context"
	"encoding/json"

	apperrors "github.com/allisson/tenantadmin/internal/errors"
	identityDomain "github.com/allisson/tenantadmin/internal/identity/domain"
	"github.com/allisson/tenantadmin/internal/store"
)

// identitiesView is the name of the view inside the subjects design document
// that indexes bindings both by namespace and by (uuid, key) pair.
const identitiesView = "identities"

// CouchDBSubjectRepository persists subjects in a CouchDB-compatible store.
// Writes carry the revision fetched with the document; a stale revision
// surfaces as ErrConflict from the store client, never retried here.
type CouchDBSubjectRepository struct {
	client    *store.Client
	database  string
	designDoc string
}

// NewCouchDBSubjectRepository creates a subject repository over the given
// store client, database, and design document.
func NewCouchDBSubjectRepository(client *store.Client, database, designDoc string) *CouchDBSubjectRepository {
	return &CouchDBSubjectRepository{
		client:    client,
		database:  database,
		designDoc: designDoc,
	}
}

// Get retrieves a subject document by identifier.
func (r *CouchDBSubjectRepository) Get(ctx context.Context, subjectID string) (*identityDomain.Subject, error) {
	var subject identityDomain.Subject
	if _, err := r.client.Get(ctx, r.database, subjectID, &subject); err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, identityDomain.ErrSubjectNotFound
		}
		return nil, err
	}
	return &subject, nil
}

// Save writes the subject document and returns the new revision. A document
// without a revision creates; one with a revision updates.
func (r *CouchDBSubjectRepository) Save(ctx context.Context, subject *identityDomain.Subject) (string, error) {
	rev, err := r.client.Put(ctx, r.database, subject)
	if err != nil {
		return "", err
	}
	subject.Rev = rev
	return rev, nil
}

// Delete removes the subject document at the given revision.
func (r *CouchDBSubjectRepository) Delete(ctx context.Context, subjectID, rev string) error {
	return r.client.Delete(ctx, r.database, subjectID, rev)
}

// identityValue is the view row value emitted by the identities view.
type identityValue struct {
	Namespace string `json:"namespace"`
	UUID      string `json:"uuid"`
	Key       string `json:"key"`
}

// Identities queries the identities view. The row id is the owning subject;
// the row value carries the binding's namespace and credential pair.
func (r *CouchDBSubjectRepository) Identities(ctx context.Context, key []string) ([]identityDomain.Identity, error) {
	rows, err := r.client.View(ctx, r.database, r.designDoc, identitiesView, key)
	if err != nil {
		return nil, err
	}

	identities := make([]identityDomain.Identity, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		var value identityValue
		if err := json.Unmarshal(row.Value, &value); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrStore, "failed to decode identities view row")
		}
		identities = append(identities, identityDomain.Identity{
			Subject:   row.ID,
			Namespace: value.Namespace,
			UUID:      value.UUID,
			Key:       value.Key,
		})
	}
	return identities, nil
}
