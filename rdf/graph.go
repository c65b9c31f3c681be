package rdf

import (
	"iter"
	"sort"

	"github.com/google/uuid"

	"github.com/c360studio/semgather/errors"
)

// Triple is one unit of information: subject and predicate IRIs plus any
// graph value as object.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// Graph is the sole mutable aggregate of the value model: a mapping from
// entity IRI to predicate IRI to a deduplicated set of values. Entries are
// created on first insert and never left empty; inserting is the only way
// the graph grows.
//
// Graph is not safe for concurrent use; each instance is owned by a single
// goroutine (the gathering engine is single-threaded by design).
type Graph struct {
	subjects map[string]map[string]map[string]Term
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{subjects: make(map[string]map[string]map[string]Term)}
}

// Add inserts a triple. Triples with an empty subject or predicate or a nil
// object are ignored, preserving the no-empty-entries invariant.
func (g *Graph) Add(t Triple) {
	if t.Subject == "" || t.Predicate == "" || t.Object == nil {
		return
	}
	twopledict, ok := g.subjects[t.Subject]
	if !ok {
		twopledict = make(map[string]map[string]Term)
		g.subjects[t.Subject] = twopledict
	}
	objectset, ok := twopledict[t.Predicate]
	if !ok {
		objectset = make(map[string]Term)
		twopledict[t.Predicate] = objectset
	}
	objectset[t.Object.Key()] = t.Object
}

// AddTriple is Add with unpacked arguments.
func (g *Graph) AddTriple(subject, predicate string, object Term) {
	g.Add(Triple{Subject: subject, Predicate: predicate, Object: object})
}

// AddTwopleMap records every (predicate, value) pair of a twople map as a
// triple of the given subject.
func (g *Graph) AddTwopleMap(subject string, twopleMap TwopleMap) {
	for predicate, objects := range twopleMap {
		for _, object := range objects {
			g.AddTriple(subject, predicate, object)
		}
	}
}

// Remove deletes a triple, pruning any entries left empty. Fails with
// ErrTripleNotFound if the triple is not in the graph.
func (g *Graph) Remove(t Triple) error {
	twopledict, ok := g.subjects[t.Subject]
	if ok {
		objectset, ok := twopledict[t.Predicate]
		if ok && t.Object != nil {
			if _, ok := objectset[t.Object.Key()]; ok {
				delete(objectset, t.Object.Key())
				if len(objectset) == 0 {
					delete(twopledict, t.Predicate)
					if len(twopledict) == 0 {
						delete(g.subjects, t.Subject)
					}
				}
				return nil
			}
		}
	}
	return errors.NewTraversal(
		"triple-not-found",
		"cannot remove a triple that is not in the graph",
		errors.ErrTripleNotFound,
	)
}

// Discard is Remove but does nothing if the triple is not found.
func (g *Graph) Discard(t Triple) {
	_ = g.Remove(t)
}

// Contains reports whether the graph holds the given triple.
func (g *Graph) Contains(t Triple) bool {
	if t.Object == nil {
		return false
	}
	objectset, ok := g.subjects[t.Subject][t.Predicate]
	if !ok {
		return false
	}
	_, found := objectset[t.Object.Key()]
	return found
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	count := 0
	for _, twopledict := range g.subjects {
		for _, objectset := range twopledict {
			count += len(objectset)
		}
	}
	return count
}

// Subjects returns every entity IRI with at least one recorded fact, sorted.
func (g *Graph) Subjects() []string {
	out := make([]string, 0, len(g.subjects))
	for subject := range g.subjects {
		out = append(out, subject)
	}
	sort.Strings(out)
	return out
}

// HasSubject reports whether any facts are recorded for the given IRI.
func (g *Graph) HasSubject(subject string) bool {
	_, ok := g.subjects[subject]
	return ok
}

// Predicates returns the predicates recorded for a subject, sorted.
func (g *Graph) Predicates(subject string) []string {
	twopledict := g.subjects[subject]
	out := make([]string, 0, len(twopledict))
	for predicate := range twopledict {
		out = append(out, predicate)
	}
	sort.Strings(out)
	return out
}

// Objects iterates the values recorded for (subject, predicate).
func (g *Graph) Objects(subject, predicate string) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for _, object := range g.subjects[subject][predicate] {
			if !yield(object) {
				return
			}
		}
	}
}

// ObjectSlice collects Objects into a slice.
func (g *Graph) ObjectSlice(subject, predicate string) []Term {
	var out []Term
	for object := range g.Objects(subject, predicate) {
		out = append(out, object)
	}
	return out
}

// Triples iterates every triple in the graph.
func (g *Graph) Triples() iter.Seq[Triple] {
	return func(yield func(Triple) bool) {
		for subject, twopledict := range g.subjects {
			for predicate, objectset := range twopledict {
				for _, object := range objectset {
					if !yield(Triple{subject, predicate, object}) {
						return
					}
				}
			}
		}
	}
}

// Query yields the values the given path set leads to from the given
// subject, reading only what the graph already holds. Traversal descends
// through entity references and blank records and passes transparently
// through containers whenever a non-empty nested path remains; an empty
// nested path is always terminal. Records currently being expanded are
// tracked so a self-containing record stops descent rather than looping.
func (g *Graph) Query(subject string, pathset PathSet) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		expanding := make(map[string]struct{})
		g.queryEntry(subject, pathset, expanding, yield)
	}
}

func (g *Graph) queryEntry(
	subject string,
	pathset PathSet,
	expanding map[string]struct{},
	yield func(Term) bool,
) bool {
	for predicate, nested := range pathset {
		for _, object := range g.subjects[subject][predicate] {
			if len(nested) == 0 {
				if !yield(object) {
					return false
				}
			} else if !g.queryThruObject(object, nested, expanding, yield) {
				return false
			}
		}
	}
	return true
}

func (g *Graph) queryThruObject(
	object Term,
	pathset PathSet,
	expanding map[string]struct{},
	yield func(Term) bool,
) bool {
	switch o := object.(type) {
	case IRI:
		return g.queryEntry(string(o), pathset, expanding, yield)
	case Blanknode:
		if IsContainer(o) {
			for _, item := range ContainerItems(o) {
				if !g.queryThruObject(item, pathset, expanding, yield) {
					return false
				}
			}
			return true
		}
		if _, open := expanding[o.Key()]; open {
			return true // self-containing record; stop descent
		}
		expanding[o.Key()] = struct{}{}
		defer delete(expanding, o.Key())
		for predicate, nested := range pathset {
			for _, item := range o.Objects(predicate) {
				if len(nested) == 0 {
					if !yield(item) {
						return false
					}
				} else if !g.queryThruObject(item, nested, expanding, yield) {
					return false
				}
			}
		}
		return true
	default:
		return true // numbers, text, dates are terminal
	}
}

// Clone returns a deep copy of the graph. Terms are immutable, so only the
// index maps are copied.
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	for subject, twopledict := range g.subjects {
		outTwopledict := make(map[string]map[string]Term, len(twopledict))
		for predicate, objectset := range twopledict {
			outObjectset := make(map[string]Term, len(objectset))
			for key, object := range objectset {
				outObjectset[key] = object
			}
			outTwopledict[predicate] = outObjectset
		}
		out.subjects[subject] = outTwopledict
	}
	return out
}

// View returns a read-only view of this graph. The view reflects later
// mutations of the underlying graph; use Clone for an isolated snapshot.
func (g *Graph) View() ReadOnly {
	return ReadOnly{g: g}
}

// ReadOnly exposes the non-mutating surface of a Graph.
type ReadOnly struct {
	g *Graph
}

// Contains reports whether the graph holds the given triple.
func (r ReadOnly) Contains(t Triple) bool { return r.g.Contains(t) }

// Len returns the number of triples.
func (r ReadOnly) Len() int { return r.g.Len() }

// Subjects returns every entity IRI with at least one recorded fact, sorted.
func (r ReadOnly) Subjects() []string { return r.g.Subjects() }

// HasSubject reports whether any facts are recorded for the given IRI.
func (r ReadOnly) HasSubject(subject string) bool { return r.g.HasSubject(subject) }

// Predicates returns the predicates recorded for a subject, sorted.
func (r ReadOnly) Predicates(subject string) []string { return r.g.Predicates(subject) }

// Objects iterates the values recorded for (subject, predicate).
func (r ReadOnly) Objects(subject, predicate string) iter.Seq[Term] {
	return r.g.Objects(subject, predicate)
}

// ObjectSlice collects Objects into a slice.
func (r ReadOnly) ObjectSlice(subject, predicate string) []Term {
	return r.g.ObjectSlice(subject, predicate)
}

// Triples iterates every triple in the graph.
func (r ReadOnly) Triples() iter.Seq[Triple] { return r.g.Triples() }

// Query yields the values a path set leads to from a subject.
func (r ReadOnly) Query(subject string, pathset PathSet) iter.Seq[Term] {
	return r.g.Query(subject, pathset)
}

// skolemBase is where minted blank-record IRIs live, following the RDF 1.1
// well-known genid convention.
const skolemBase = "https://semgather.c360.io/.well-known/genid/"

// NewSkolemIRI mints a globally unique IRI for naming a blank record.
func NewSkolemIRI() IRI {
	return IRI(skolemBase + uuid.NewString())
}

// Skolemize returns a copy of the graph with every blank-record value
// replaced by a freshly minted skolem IRI whose twoples become ordinary
// triples of that IRI. Structurally equal records share one skolem IRI.
// Useful for export formats that cannot express nested anonymous records.
func (g *Graph) Skolemize() *Graph {
	out := NewGraph()
	minted := make(map[string]IRI)

	var skolemizeTerm func(object Term) Term
	skolemizeTerm = func(object Term) Term {
		bnode, ok := object.(Blanknode)
		if !ok {
			return object
		}
		if iri, done := minted[bnode.Key()]; done {
			return iri
		}
		iri := NewSkolemIRI()
		minted[bnode.Key()] = iri
		for _, tw := range bnode.Twoples() {
			out.AddTriple(string(iri), tw.Predicate, skolemizeTerm(tw.Object))
		}
		return iri
	}

	for triple := range g.Triples() {
		out.AddTriple(triple.Subject, triple.Predicate, skolemizeTerm(triple.Object))
	}
	return out
}
