// Package crawl walks a finished rdf.Graph from a starting entity, feeding
// a Visitor everything reachable: entities breadth-first, predicates in a
// stable order, values recursing through records and entity references.
//
// Entity cycles are expected and bounded by a visited set; record cycles
// violate the value model and abort the crawl with a traversal error.
package crawl

import (
	"sort"

	"github.com/c360studio/semgather/errors"
	"github.com/c360studio/semgather/rdf"
	"github.com/c360studio/semgather/vocabulary"
)

// Visitor receives crawl events. Any method returning an error aborts the
// crawl and surfaces the error unchanged. Embed BaseVisitor to implement
// only the events of interest.
type Visitor interface {
	// BeginEntity and EndEntity bracket each visited entity.
	BeginEntity(iri string) error
	EndEntity(iri string) error

	// BeginProperty and EndProperty bracket each predicate of the current
	// entity or record.
	BeginProperty(predicate string) error
	EndProperty(predicate string) error

	// VisitLiteral receives a terminal value: text, number, or date.
	VisitLiteral(value rdf.Term) error

	// VisitReference receives an IRI value. If the IRI has facts of its own
	// in the graph, the crawler also enqueues it as an entity.
	VisitReference(iri rdf.IRI) error

	// BeginRecord and EndRecord bracket each blank record; the record's own
	// properties are visited in between.
	BeginRecord(record rdf.Blanknode) error
	EndRecord(record rdf.Blanknode) error
}

// BaseVisitor is a no-op Visitor for embedding.
type BaseVisitor struct{}

// BeginEntity implements Visitor.
func (BaseVisitor) BeginEntity(string) error { return nil }

// EndEntity implements Visitor.
func (BaseVisitor) EndEntity(string) error { return nil }

// BeginProperty implements Visitor.
func (BaseVisitor) BeginProperty(string) error { return nil }

// EndProperty implements Visitor.
func (BaseVisitor) EndProperty(string) error { return nil }

// VisitLiteral implements Visitor.
func (BaseVisitor) VisitLiteral(rdf.Term) error { return nil }

// VisitReference implements Visitor.
func (BaseVisitor) VisitReference(rdf.IRI) error { return nil }

// BeginRecord implements Visitor.
func (BaseVisitor) BeginRecord(rdf.Blanknode) error { return nil }

// EndRecord implements Visitor.
func (BaseVisitor) EndRecord(rdf.Blanknode) error { return nil }

// Crawler walks a read-only graph. Safe to reuse across crawls.
type Crawler struct {
	graph        rdf.ReadOnly
	lessFunc     func(a, b string) bool
	visitOrphans bool
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithPredicateOrder replaces the default lexicographic predicate order.
// Container membership predicates always sort by position regardless.
func WithPredicateOrder(less func(a, b string) bool) Option {
	return func(c *Crawler) { c.lessFunc = less }
}

// WithOrphanReferences makes the crawler visit referenced IRIs as entities
// even when the graph holds no facts for them (an empty Begin/EndEntity
// pair). By default such references are visited as values only.
func WithOrphanReferences() Option {
	return func(c *Crawler) { c.visitOrphans = true }
}

// NewCrawler creates a crawler over the given graph view.
func NewCrawler(graph rdf.ReadOnly, opts ...Option) *Crawler {
	c := &Crawler{
		graph:    graph,
		lessFunc: func(a, b string) bool { return a < b },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Crawl walks breadth-first from the starting entity IRI, visiting each
// reachable entity exactly once.
func (c *Crawler) Crawl(start string, visitor Visitor) error {
	visited := make(map[string]struct{})
	queue := []string{start}
	for len(queue) > 0 {
		entity := queue[0]
		queue = queue[1:]
		if _, seen := visited[entity]; seen {
			continue
		}
		visited[entity] = struct{}{}

		discovered, err := c.visitEntity(entity, visitor)
		if err != nil {
			return err
		}
		queue = append(queue, discovered...)
	}
	return nil
}

func (c *Crawler) visitEntity(entity string, visitor Visitor) ([]string, error) {
	if err := visitor.BeginEntity(entity); err != nil {
		return nil, err
	}
	var discovered []string
	for _, predicate := range c.sortedPredicates(c.graph.Predicates(entity)) {
		if err := visitor.BeginProperty(predicate); err != nil {
			return nil, err
		}
		for _, value := range sortedValues(c.graph.ObjectSlice(entity, predicate)) {
			more, err := c.visitValue(value, visitor, make(map[string]struct{}))
			if err != nil {
				return nil, err
			}
			discovered = append(discovered, more...)
		}
		if err := visitor.EndProperty(predicate); err != nil {
			return nil, err
		}
	}
	if err := visitor.EndEntity(entity); err != nil {
		return nil, err
	}
	return discovered, nil
}

func (c *Crawler) visitValue(
	value rdf.Term,
	visitor Visitor,
	expanding map[string]struct{},
) ([]string, error) {
	switch v := value.(type) {
	case rdf.IRI:
		if err := visitor.VisitReference(v); err != nil {
			return nil, err
		}
		if c.visitOrphans || c.graph.HasSubject(string(v)) {
			return []string{string(v)}, nil
		}
		return nil, nil
	case rdf.Blanknode:
		return c.visitRecord(v, visitor, expanding)
	default:
		return nil, visitor.VisitLiteral(value)
	}
}

func (c *Crawler) visitRecord(
	record rdf.Blanknode,
	visitor Visitor,
	expanding map[string]struct{},
) ([]string, error) {
	if _, open := expanding[record.Key()]; open {
		return nil, errors.NewTraversal(
			"record-cycle",
			"blank record contains itself",
			errors.ErrRecordCycle,
		)
	}
	expanding[record.Key()] = struct{}{}
	defer delete(expanding, record.Key())

	if err := visitor.BeginRecord(record); err != nil {
		return nil, err
	}
	twopleMap := record.TwopleMap()
	predicates := make([]string, 0, len(twopleMap))
	for predicate := range twopleMap {
		predicates = append(predicates, predicate)
	}
	var discovered []string
	for _, predicate := range c.sortedPredicates(predicates) {
		if err := visitor.BeginProperty(predicate); err != nil {
			return nil, err
		}
		for _, value := range sortedValues(twopleMap[predicate]) {
			more, err := c.visitValue(value, visitor, expanding)
			if err != nil {
				return nil, err
			}
			discovered = append(discovered, more...)
		}
		if err := visitor.EndProperty(predicate); err != nil {
			return nil, err
		}
	}
	if err := visitor.EndRecord(record); err != nil {
		return nil, err
	}
	return discovered, nil
}

// sortedPredicates orders predicates with the crawler's order function,
// except container membership predicates, which always order by position so
// sequence items come out in sequence order.
func (c *Crawler) sortedPredicates(predicates []string) []string {
	out := append([]string(nil), predicates...)
	sort.Slice(out, func(i, j int) bool {
		posI, okI := vocabulary.ParseContainerMembership(out[i])
		posJ, okJ := vocabulary.ParseContainerMembership(out[j])
		switch {
		case okI && okJ:
			return posI < posJ
		case okI != okJ:
			return okJ // non-membership predicates first
		default:
			return c.lessFunc(out[i], out[j])
		}
	})
	return out
}

func sortedValues(values []rdf.Term) []rdf.Term {
	out := append([]rdf.Term(nil), values...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key() < out[j].Key()
	})
	return out
}
