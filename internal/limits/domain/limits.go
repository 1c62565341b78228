// Package domain defines the per-namespace resource limits model.
//
// A limits document is keyed "<namespace>/limits". Fields are pointers so an
// absent field is distinguishable from a zero value: updates merge over the
// stored record, never destructively overwriting unspecified fields. A
// namespace with no limits document falls back to system defaults.
package domain

// Limits is the stored per-namespace resource limits record.
type Limits struct {
	ID                    string   `json:"_id"`
	Rev                   string   `json:"_rev,omitempty"`
	InvocationsPerMinute  *int     `json:"invocationsPerMinute,omitempty"`
	FiresPerMinute        *int     `json:"firesPerMinute,omitempty"`
	ConcurrentInvocations *int     `json:"concurrentInvocations,omitempty"`
	AllowedKinds          []string `json:"allowedKinds,omitempty"`
	StoreActivations      *bool    `json:"storeActivations,omitempty"`
}

// DocumentID returns the limits document id for a namespace.
func DocumentID(namespace string) string {
	return namespace + "/limits"
}

// NewLimits creates an empty limits record for a namespace.
func NewLimits(namespace string) *Limits {
	return &Limits{ID: DocumentID(namespace)}
}

// Merge overlays the supplied fields onto the record. Nil fields in update
// retain the stored value.
func (l *Limits) Merge(update *Limits) {
	if update.InvocationsPerMinute != nil {
		l.InvocationsPerMinute = update.InvocationsPerMinute
	}
	if update.FiresPerMinute != nil {
		l.FiresPerMinute = update.FiresPerMinute
	}
	if update.ConcurrentInvocations != nil {
		l.ConcurrentInvocations = update.ConcurrentInvocations
	}
	if update.AllowedKinds != nil {
		l.AllowedKinds = update.AllowedKinds
	}
	if update.StoreActivations != nil {
		l.StoreActivations = update.StoreActivations
	}
}
