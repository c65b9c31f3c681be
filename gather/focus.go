package gather

import (
	"sort"
	"strings"

	"github.com/c360studio/semgather/rdf"
	"github.com/c360studio/semgather/vocabulary"
)

// Focus is the identity of a graph entity currently being described: a set
// of synonymous IRIs plus a set of type IRIs. Immutable once constructed.
//
// Two Focus values with the same IRI set and type set are the same focus;
// the engine memoizes on structural equality via Key, never on pointer
// identity. Synonym sets are taken as given — chained owl:sameAs links are
// not closed transitively.
type Focus struct {
	iris  []string // sorted, deduplicated
	types []string // sorted, deduplicated
	key   string
}

// NewFocus builds a Focus from synonym IRIs and type IRIs. Empty strings
// and duplicates are dropped. An empty IRI set is permitted but the focus
// is usable for nothing until identifiers exist.
func NewFocus(iris []string, typeIRIs []string) Focus {
	f := Focus{
		iris:  normalizeIRIs(iris),
		types: normalizeIRIs(typeIRIs),
	}
	f.key = focusKey(f.iris, f.types)
	return f
}

func focusKey(iris, types []string) string {
	var sb strings.Builder
	sb.WriteString("focus(")
	sb.WriteString(strings.Join(iris, ","))
	sb.WriteByte('|')
	sb.WriteString(strings.Join(types, ","))
	sb.WriteByte(')')
	return sb.String()
}

// IRIs returns the synonym set in sorted order.
func (f Focus) IRIs() []string {
	out := make([]string, len(f.iris))
	copy(out, f.iris)
	return out
}

// Types returns the type IRI set in sorted order.
func (f Focus) Types() []string {
	out := make([]string, len(f.types))
	copy(out, f.types)
	return out
}

// CanonicalIRI deterministically selects one IRI from the synonym set:
// shortest first, ties broken lexicographically. Pure function of the set.
func (f Focus) CanonicalIRI() string {
	return rdf.ChooseIRI(f.iris)
}

// HasType reports whether the focus carries the given type IRI.
func (f Focus) HasType(typeIRI string) bool {
	for _, t := range f.types {
		if t == typeIRI {
			return true
		}
	}
	return false
}

// IsZero reports whether the focus has no identifiers at all.
func (f Focus) IsZero() bool {
	return len(f.iris) == 0 && len(f.types) == 0
}

// Key is the focus's structural identity, used as the memo key.
func (f Focus) Key() string {
	if f.key == "" {
		return focusKey(nil, nil)
	}
	return f.key
}

// IdentityFacts yields the facts a focus contributes purely by existing:
// (canonical, rdf:type, t) for each type and (canonical, owl:sameAs, other)
// for each non-canonical synonym.
func (f Focus) IdentityFacts() []rdf.Triple {
	canonical := f.CanonicalIRI()
	if canonical == "" {
		return nil
	}
	out := make([]rdf.Triple, 0, len(f.types)+len(f.iris)-1)
	for _, t := range f.types {
		out = append(out, rdf.Triple{
			Subject:   canonical,
			Predicate: vocabulary.RDFType,
			Object:    rdf.IRI(t),
		})
	}
	for _, iri := range f.iris {
		if iri == canonical {
			continue
		}
		out = append(out, rdf.Triple{
			Subject:   canonical,
			Predicate: vocabulary.OWLSameAs,
			Object:    rdf.IRI(iri),
		})
	}
	return out
}

func normalizeIRIs(iris []string) []string {
	seen := make(map[string]struct{}, len(iris))
	out := make([]string, 0, len(iris))
	for _, iri := range iris {
		if iri == "" {
			continue
		}
		if _, dup := seen[iri]; dup {
			continue
		}
		seen[iri] = struct{}{}
		out = append(out, iri)
	}
	// insertion-order independent identity
	sort.Strings(out)
	return out
}
