// Package usecase implements business logic orchestration for identity
// administration operations.
package usecase

import (
	"context"

	identityDomain "github.com/allisson/tenantadmin/internal/identity/domain"
	identityService "github.com/allisson/tenantadmin/internal/identity/service"
)

// SubjectRepository defines persistence operations for subject documents.
// Implementations resolve documents through the document store and surface
// its optimistic-concurrency semantics: Save and Delete carry the revision
// fetched by Get and fail with ErrConflict on a stale revision.
type SubjectRepository interface {
	// Get retrieves a subject document by identifier.
	// Returns ErrSubjectNotFound if the document doesn't exist.
	Get(ctx context.Context, subjectID string) (*identityDomain.Subject, error)

	// Save writes the subject document, creating it when it carries no
	// revision. Returns the new revision.
	Save(ctx context.Context, subject *identityDomain.Subject) (string, error)

	// Delete removes the subject document at the given revision.
	Delete(ctx context.Context, subjectID, rev string) error

	// Identities queries the identities view with the given key: a
	// [namespace] key lists the credentials bound to a namespace, a
	// [uuid, key] key reverse-resolves a credential pair.
	Identities(ctx context.Context, key []string) ([]identityDomain.Identity, error)
}

// CreateIdentityInput contains the parameters for issuing or rotating a
// namespace credential.
type CreateIdentityInput struct {
	Subject   string // Subject identifier (trimmed, at least 5 characters)
	Namespace string // Target namespace; empty defaults to the subject identifier
	AuthKey   string // Optional operator-supplied "uuid:key" pair; empty generates one
	Revoke    bool   // Rotate the credential of an existing namespace
	GenOnly   bool   // Generate/validate credentials without touching storage
}

// BlockResult is the outcome of blocking or unblocking one subject.
type BlockResult struct {
	Subject string
	Err     error
}

// IdentityUseCase defines the identity administration operations: issuing,
// rotating, inspecting, blocking, and retiring namespace credentials.
type IdentityUseCase interface {
	// Create issues a credential for a subject's namespace, creating the
	// subject document on first issuance. With Revoke it rotates an existing
	// namespace's credential in place; with GenOnly it returns the
	// generated or validated pair without any store access.
	//
	// Returns ErrInvalidInput for a short subject or blank namespace,
	// ErrSubjectBlocked when the subject is blocked, ErrNamespaceExists when
	// the namespace exists and Revoke is false, and ErrNamespaceNotUnique on
	// a duplicate-name anomaly in the stored document.
	Create(ctx context.Context, input *CreateIdentityInput) (identityService.Credentials, error)

	// Get returns the subject's namespace bindings: all of them, or exactly
	// the one named (defaulting to the subject identifier).
	Get(ctx context.Context, subject, namespace string, all bool) ([]identityDomain.Namespace, error)

	// Delete removes the whole subject document, or just one namespace
	// binding when a namespace is given.
	Delete(ctx context.Context, subject, namespace string) error

	// Whois reverse-resolves a "uuid:key" credential pair to its owning
	// subject and namespace. An empty result is a valid negative outcome,
	// not an error.
	Whois(ctx context.Context, authKey string) ([]identityDomain.Identity, error)

	// List returns the identities bound to a namespace, at most pick entries
	// unless all is set. pick must be at least 1.
	List(ctx context.Context, namespace string, pick int, all bool) ([]identityDomain.Identity, error)

	// SetBlocked blocks or unblocks each subject independently, tolerating
	// partial failure. Blank identifiers are skipped. One result is returned
	// per processed subject.
	SetBlocked(ctx context.Context, subjects []string, blocked bool) []BlockResult
}
