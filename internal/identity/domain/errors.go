package domain

import (
	"github.com/allisson/tenantadmin/internal/errors"
)

// Identity administration errors.
var (
	// ErrSubjectNotFound indicates the subject document does not exist.
	ErrSubjectNotFound = errors.Wrap(errors.ErrNotFound, "subject not found")

	// ErrNamespaceNotFound indicates the subject has no binding with the requested name.
	ErrNamespaceNotFound = errors.Wrap(errors.ErrNotFound, "namespace not found")

	// ErrNamespaceExists indicates the namespace already exists and rotation was not requested.
	ErrNamespaceExists = errors.Wrap(errors.ErrConflict, "namespace already exists")

	// ErrNamespaceNotUnique indicates the stored document carries the same namespace
	// name more than once, a data-integrity anomaly detected at read time.
	ErrNamespaceNotUnique = errors.Wrap(errors.ErrConflict, "namespace is not unique")

	// ErrSubjectBlocked indicates the subject is blocked and refuses credential changes.
	ErrSubjectBlocked = errors.Wrap(errors.ErrBlocked, "subject is blocked")
)
