// Package vocabulary provides IRI namespace definitions and builders.
package vocabulary

import (
	"fmt"
	"strings"

	"github.com/c360studio/semgather/errors"
)

// Namespace is the set of all possible IRIs that begin with a given base IRI.
// It is a convenience for building and checking IRIs without typing them out
// in full. Member names are joined by plain concatenation; an optional
// allow-list restricts which names may be built.
//
// The zero Namespace is not usable; construct with NewNamespace.
type Namespace struct {
	iri     string
	allowed map[string]struct{}
}

// NamespaceOption configures a Namespace at construction.
type NamespaceOption func(*Namespace)

// WithAllowedNames restricts the namespace to the given member names.
// Member calls for any other name fail with ErrNameNotAllowed.
func WithAllowedNames(names ...string) NamespaceOption {
	return func(ns *Namespace) {
		ns.allowed = make(map[string]struct{}, len(names))
		for _, name := range names {
			ns.allowed[name] = struct{}{}
		}
	}
}

// NewNamespace creates a Namespace rooted at the given base IRI.
// The IRI must contain a ":" separator; anything else is a configuration
// error raised immediately.
func NewNamespace(iri string, opts ...NamespaceOption) (Namespace, error) {
	if !strings.Contains(iri, ":") {
		return Namespace{}, errors.NewConfig(
			"invalid-namespace",
			fmt.Sprintf(`expected iri to have a ":" (got %q)`, iri),
			errors.ErrMalformedNamespace,
		)
	}
	ns := Namespace{iri: iri}
	for _, opt := range opts {
		opt(&ns)
	}
	return ns, nil
}

// MustNamespace is NewNamespace for namespaces known valid at compile time.
// Panics on error; intended for package-level vars only.
func MustNamespace(iri string, opts ...NamespaceOption) Namespace {
	ns, err := NewNamespace(iri, opts...)
	if err != nil {
		panic(err)
	}
	return ns
}

// Member builds the full IRI for a name within this namespace.
// Fails if the namespace carries an allow-list that excludes the name.
func (ns Namespace) Member(name string) (string, error) {
	if ns.allowed != nil {
		if _, ok := ns.allowed[name]; !ok {
			return "", errors.NewConfig(
				"name-not-allowed",
				fmt.Sprintf("name %q not in namespace %q", name, ns.iri),
				errors.ErrNameNotAllowed,
			)
		}
	}
	return ns.iri + name, nil
}

// MustMember is Member for names known valid at compile time.
// Panics on error; intended for package-level constants only.
func (ns Namespace) MustMember(name string) string {
	iri, err := ns.Member(name)
	if err != nil {
		panic(err)
	}
	return iri
}

// Name returns the remainder of an IRI after this namespace's base.
// Fails if the IRI does not start with the base.
func (ns Namespace) Name(iri string) (string, error) {
	if !strings.HasPrefix(iri, ns.iri) {
		return "", errors.NewConfig(
			"not-in-namespace",
			fmt.Sprintf("%q does not start with %q", iri, ns.iri),
			errors.ErrNotInNamespace,
		)
	}
	return iri[len(ns.iri):], nil
}

// Contains reports whether the given IRI (or namespace base) falls within
// this namespace.
func (ns Namespace) Contains(iri string) bool {
	return strings.HasPrefix(iri, ns.iri)
}

// String returns the namespace's base IRI.
func (ns Namespace) String() string {
	return ns.iri
}
