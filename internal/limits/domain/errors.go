package domain

import (
	"github.com/allisson/tenantadmin/internal/errors"
)

// Limits administration errors.
var (
	// ErrLimitsNotFound indicates no limits record exists for the namespace.
	ErrLimitsNotFound = errors.Wrap(errors.ErrNotFound, "limits not found")
)
