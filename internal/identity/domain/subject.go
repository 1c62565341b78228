// Package domain defines the subject and namespace-credential domain models
// and the invariant logic applied to them before any store write.
//
// A subject owns an ordered set of namespace-credential bindings. Namespace
// names must be unique within one subject; a blocked subject refuses any
// credential issuance or rotation until unblocked.
package domain

// Namespace is one namespace-credential binding embedded in a subject
// document. The (uuid, key) pair is the credential clients authenticate with.
type Namespace struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
	Key  string `json:"key"`
}

// Subject is the stored representation of an administrative principal and
// its namespace bindings. The document id equals the subject identifier.
type Subject struct {
	ID         string      `json:"_id"`
	Rev        string      `json:"_rev,omitempty"`
	Subject    string      `json:"subject"`
	Blocked    bool        `json:"blocked,omitempty"`
	Namespaces []Namespace `json:"namespaces"`
}

// Identity is one row of a reverse credential lookup: the subject and
// namespace a credential pair resolves to.
type Identity struct {
	Subject   string
	Namespace string
	UUID      string
	Key       string
}

// NewSubject creates an empty subject document for the given identifier.
func NewSubject(id string) *Subject {
	return &Subject{
		ID:         id,
		Subject:    id,
		Namespaces: []Namespace{},
	}
}

// AddOrRotateNamespace appends a new namespace binding, or overwrites the
// credential of an existing one when revoke is set.
//
// Returns ErrSubjectBlocked when the subject is blocked, ErrNamespaceExists
// when the namespace already exists and revoke is false, and
// ErrNamespaceNotUnique when the stored document anomalously carries the
// namespace name more than once. The subject is left unchanged on error.
func (s *Subject) AddOrRotateNamespace(name, credentialUUID, key string, revoke bool) error {
	if s.Blocked {
		return ErrSubjectBlocked
	}

	indexes := s.namespaceIndexes(name)
	switch {
	case len(indexes) == 0:
		s.Namespaces = append(s.Namespaces, Namespace{Name: name, UUID: credentialUUID, Key: key})
		return nil
	case len(indexes) > 1:
		return ErrNamespaceNotUnique
	case !revoke:
		return ErrNamespaceExists
	default:
		s.Namespaces[indexes[0]].UUID = credentialUUID
		s.Namespaces[indexes[0]].Key = key
		return nil
	}
}

// RemoveNamespace removes every binding with the given name. Returns
// ErrNamespaceNotFound when no binding matched; the document itself is kept
// even when the removal empties the namespace set.
func (s *Subject) RemoveNamespace(name string) error {
	kept := make([]Namespace, 0, len(s.Namespaces))
	for _, ns := range s.Namespaces {
		if ns.Name != name {
			kept = append(kept, ns)
		}
	}
	if len(kept) == len(s.Namespaces) {
		return ErrNamespaceNotFound
	}
	s.Namespaces = kept
	return nil
}

// SetBlocked sets the blocking state. Idempotent.
func (s *Subject) SetBlocked(blocked bool) {
	s.Blocked = blocked
}

// Namespace returns the single binding with the given name. Returns
// ErrNamespaceNotFound when the name matches zero bindings or, anomalously,
// more than one.
func (s *Subject) Namespace(name string) (Namespace, error) {
	indexes := s.namespaceIndexes(name)
	if len(indexes) != 1 {
		return Namespace{}, ErrNamespaceNotFound
	}
	return s.Namespaces[indexes[0]], nil
}

func (s *Subject) namespaceIndexes(name string) []int {
	var indexes []int
	for i, ns := range s.Namespaces {
		if ns.Name == name {
			indexes = append(indexes, i)
		}
	}
	return indexes
}
