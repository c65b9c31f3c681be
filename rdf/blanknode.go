package rdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/semgather/errors"
	"github.com/c360studio/semgather/vocabulary"
)

// Twople is a triple without a subject: a (predicate, object) pair inside a
// blank record.
type Twople struct {
	Predicate string
	Object    Term
}

// TwopleMap groups a record's pairs by predicate: predicate → set of values.
type TwopleMap map[string][]Term

// Blanknode is an anonymous record: an unordered, duplicate-free set of
// (predicate, value) pairs with no subject identifier. Immutable once
// constructed and required to be acyclic; the traversal engine enforces
// acyclicity when walking through records.
type Blanknode struct {
	twoples []Twople // sorted by (predicate, object key)
	key     string
}

// NewBlanknode flattens a predicate→values mapping into a blank record.
// Nil values and empty predicates are dropped; duplicate pairs collapse.
func NewBlanknode(twopleMap TwopleMap) Blanknode {
	var twoples []Twople
	for predicate, objects := range twopleMap {
		for _, object := range objects {
			twoples = append(twoples, Twople{Predicate: predicate, Object: object})
		}
	}
	return newBlanknodeFromTwoples(twoples)
}

func newBlanknodeFromTwoples(twoples []Twople) Blanknode {
	seen := make(map[string]struct{}, len(twoples))
	kept := make([]Twople, 0, len(twoples))
	for _, tw := range twoples {
		if tw.Predicate == "" || tw.Object == nil {
			continue
		}
		pairKey := tw.Predicate + "\x1f" + tw.Object.Key()
		if _, dup := seen[pairKey]; dup {
			continue
		}
		seen[pairKey] = struct{}{}
		kept = append(kept, tw)
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Predicate != kept[j].Predicate {
			return kept[i].Predicate < kept[j].Predicate
		}
		return kept[i].Object.Key() < kept[j].Object.Key()
	})
	return Blanknode{twoples: kept, key: blanknodeKey(kept)}
}

func blanknodeKey(twoples []Twople) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, tw := range twoples {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(tw.Predicate)
		sb.WriteByte(' ')
		sb.WriteString(tw.Object.Key())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Twoples returns the record's pairs in canonical order.
func (b Blanknode) Twoples() []Twople {
	out := make([]Twople, len(b.twoples))
	copy(out, b.twoples)
	return out
}

// TwopleMap groups the record's pairs back into predicate → set of values,
// the inverse of NewBlanknode.
func (b Blanknode) TwopleMap() TwopleMap {
	out := make(TwopleMap)
	for _, tw := range b.twoples {
		out[tw.Predicate] = append(out[tw.Predicate], tw.Object)
	}
	return out
}

// Objects returns the record's values for one predicate.
func (b Blanknode) Objects(predicate string) []Term {
	var out []Term
	for _, tw := range b.twoples {
		if tw.Predicate == predicate {
			out = append(out, tw.Object)
		}
	}
	return out
}

// Len returns the number of (predicate, value) pairs.
func (b Blanknode) Len() int { return len(b.twoples) }

// Key implements Term.
func (b Blanknode) Key() string {
	if b.key == "" && len(b.twoples) == 0 {
		return "[]"
	}
	return b.key
}

func (Blanknode) isTerm() {}

// containerMarkers are the reserved type IRIs that make a record a container.
var containerMarkers = []string{
	vocabulary.RDFSeq,
	vocabulary.RDFBag,
	vocabulary.RDFAlt,
	vocabulary.RDFContainer,
}

// NewContainer encodes items as a blank record carrying the given container
// type marker plus positional predicates rdf:_1..n.
func NewContainer(containerType string, items []Term) Blanknode {
	twoples := make([]Twople, 0, len(items)+1)
	twoples = append(twoples, Twople{
		Predicate: vocabulary.RDFType,
		Object:    IRI(containerType),
	})
	for i, item := range items {
		twoples = append(twoples, Twople{
			Predicate: vocabulary.ContainerMembershipIRI(i + 1),
			Object:    item,
		})
	}
	return newBlanknodeFromTwoples(twoples)
}

// NewSequence encodes an ordered list as an rdf:Seq record. Order is
// preserved exactly, including duplicates.
func NewSequence(items []Term) Blanknode {
	return NewContainer(vocabulary.RDFSeq, items)
}

// NewBag encodes an unordered collection as an rdf:Bag record.
func NewBag(items []Term) Blanknode {
	return NewContainer(vocabulary.RDFBag, items)
}

// IsContainer reports whether the record carries any of the reserved
// container type markers (Seq, Bag, Alt, or generic Container).
func IsContainer(b Blanknode) bool {
	for _, tw := range b.twoples {
		if tw.Predicate != vocabulary.RDFType {
			continue
		}
		iri, ok := tw.Object.(IRI)
		if !ok {
			continue
		}
		for _, marker := range containerMarkers {
			if string(iri) == marker {
				return true
			}
		}
	}
	return false
}

// ContainerItems returns all positionally-indexed values of a container
// record, ordered by position.
func ContainerItems(b Blanknode) []Term {
	indexed := indexedItems(b)
	out := make([]Term, 0, len(indexed))
	for _, it := range indexed {
		out = append(out, it.term)
	}
	return out
}

// SequenceItems decodes an rdf:Seq record back into its ordered items.
// Fails if the record does not carry the sequence marker.
func SequenceItems(b Blanknode) ([]Term, error) {
	if !b.hasTypeMarker(vocabulary.RDFSeq) {
		return nil, errors.NewConfig(
			"expected-sequence",
			fmt.Sprintf("record %s lacks the rdf:Seq marker", b.Key()),
			errors.ErrNotASequence,
		)
	}
	return ContainerItems(b), nil
}

func (b Blanknode) hasTypeMarker(marker string) bool {
	for _, tw := range b.twoples {
		if tw.Predicate == vocabulary.RDFType && tw.Object == IRI(marker) {
			return true
		}
	}
	return false
}

type indexedItem struct {
	position int
	term     Term
}

func indexedItems(b Blanknode) []indexedItem {
	var items []indexedItem
	for _, tw := range b.twoples {
		if position, ok := vocabulary.ParseContainerMembership(tw.Predicate); ok {
			items = append(items, indexedItem{position: position, term: tw.Object})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].position < items[j].position
	})
	return items
}
