package gather

import (
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/c360studio/semgather/errors"
	"github.com/c360studio/semgather/metric"
	"github.com/c360studio/semgather/rdf"
	"github.com/c360studio/semgather/vocabulary"
)

// Gathering is the demand-driven cache: a graph of gathered facts plus the
// memo state guaranteeing each (gatherer, focus) pair executes at most once
// for the lifetime of the instance.
//
// Single-threaded by design: Pull, Peek, and Ask are ordinary recursive
// calls with no I/O and no suspension points. One goroutine owns each
// instance; share the Organizer instead.
type Gathering struct {
	organizer *Organizer
	params    Params

	graph       *rdf.Graph
	gathersDone map[string]struct{} // gatherer name + focus key
	focusSeen   map[string]struct{}

	logger  *slog.Logger
	metrics *metric.Metrics
}

// GatheringOption configures a Gathering at construction.
type GatheringOption func(*Gathering)

// WithLogger attaches a logger; gatherer dispatch traces at debug level.
func WithLogger(logger *slog.Logger) GatheringOption {
	return func(g *Gathering) { g.logger = logger }
}

// WithMetrics attaches engine metrics.
func WithMetrics(m *metric.Metrics) GatheringOption {
	return func(g *Gathering) { g.metrics = m }
}

func newGathering(organizer *Organizer, params Params, opts ...GatheringOption) *Gathering {
	g := &Gathering{
		organizer:   organizer,
		params:      params,
		graph:       rdf.NewGraph(),
		gathersDone: make(map[string]struct{}),
		focusSeen:   make(map[string]struct{}),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Pull ensures the graph contains all facts reachable from focus along the
// given path shape, invoking gatherers for anything not yet gathered. The
// shape is normalized with rdf.NormalizePathSet. Pull is idempotent: a
// second identical call re-invokes nothing and inserts nothing.
//
// A record cycle aborts the whole pull; triples already committed remain.
// Gatherer errors propagate unchanged.
func (g *Gathering) Pull(shape any, focus Focus) error {
	pathset, err := rdf.NormalizePathSet(shape)
	if err != nil {
		return err
	}
	start := time.Now()
	err = g.pull(pathset, focus, make(map[string]struct{}))
	if g.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		g.metrics.RecordPullDuration(status, time.Since(start))
		g.metrics.RecordGraphSize(g.graph.Len())
	}
	return err
}

// Peek returns the lazily-produced sequence of values already reachable
// along the path shape from focus, without invoking any gatherer.
// Unresolvable IRIs and unknown predicates simply yield nothing.
func (g *Gathering) Peek(shape any, focus Focus) (iter.Seq[rdf.Term], error) {
	pathset, err := rdf.NormalizePathSet(shape)
	if err != nil {
		return nil, err
	}
	return g.graph.Query(focus.CanonicalIRI(), pathset), nil
}

// Ask is the primary query entry point: Pull then Peek with the same
// arguments.
func (g *Gathering) Ask(shape any, focus Focus) (iter.Seq[rdf.Term], error) {
	if err := g.Pull(shape, focus); err != nil {
		return nil, err
	}
	return g.Peek(shape, focus)
}

// AskAllAbout pulls every registered predicate for the focus and,
// breadth-first, for every further focus discovered among the gathered
// values. Bounded by a visited set keyed on focus identity.
func (g *Gathering) AskAllAbout(focus Focus) error {
	allPredicates := g.organizer.AllPredicates()
	pathset := make(rdf.PathSet, len(allPredicates))
	for _, predicate := range allPredicates {
		pathset[predicate] = rdf.PathSet{}
	}

	visited := make(map[string]struct{})
	queue := []Focus{focus}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if _, seen := visited[next.Key()]; seen {
			continue
		}
		visited[next.Key()] = struct{}{}

		if err := g.Pull(pathset, next); err != nil {
			return err
		}
		for _, predicate := range allPredicates {
			for _, object := range g.graph.ObjectSlice(next.CanonicalIRI(), predicate) {
				iri, ok := object.(rdf.IRI)
				if !ok {
					continue
				}
				discovered, err := g.ResolveFocus(string(iri))
				if err != nil {
					continue // not a usable focus
				}
				queue = append(queue, discovered)
			}
		}
	}
	return nil
}

// ResolveFocus rebuilds a Focus for an IRI from facts already in the graph:
// its recorded rdf:type values plus one hop of owl:sameAs synonyms. An IRI
// with no recorded type is not a usable focus and fails with
// ErrCannotResolveFocus; during recursive pulls the engine treats that as a
// soft miss and skips the branch.
func (g *Gathering) ResolveFocus(iri string) (Focus, error) {
	var types []string
	for _, object := range g.graph.ObjectSlice(iri, vocabulary.RDFType) {
		if typeIRI, ok := object.(rdf.IRI); ok {
			types = append(types, string(typeIRI))
		}
	}
	if len(types) == 0 {
		return Focus{}, errors.NewTraversal(
			"cannot-resolve-focus",
			fmt.Sprintf("no rdf:type recorded for <%s>", iri),
			errors.ErrCannotResolveFocus,
		)
	}
	iris := []string{iri}
	for _, object := range g.graph.ObjectSlice(iri, vocabulary.OWLSameAs) {
		if sameAs, ok := object.(rdf.IRI); ok {
			iris = append(iris, string(sameAs))
		}
	}
	return NewFocus(iris, types), nil
}

// Snapshot returns a deep copy of the gathered graph, safe for the caller
// to mutate, unaffected by later pulls.
func (g *Gathering) Snapshot() *rdf.Graph {
	return g.graph.Clone()
}

// View returns a zero-copy read-only view of the live graph.
func (g *Gathering) View() rdf.ReadOnly {
	return g.graph.View()
}

// pull is the recursive engine step, threading the set of record keys
// currently being expanded for cycle detection.
func (g *Gathering) pull(pathset rdf.PathSet, focus Focus, expanding map[string]struct{}) error {
	g.recordFocus(focus)

	canonical := focus.CanonicalIRI()
	if canonical == "" {
		return nil
	}

	predicates := pathset.Predicates()
	for _, gatherer := range g.organizer.Lookup(focus, predicates) {
		if err := g.invoke(gatherer, focus); err != nil {
			return err
		}
	}

	for _, predicate := range predicates {
		nested := pathset[predicate]
		if len(nested) == 0 {
			continue // terminal; direct values only
		}
		// snapshot: recursion below mutates the graph
		for _, object := range g.graph.ObjectSlice(canonical, predicate) {
			if err := g.gatherThruObject(object, nested, expanding); err != nil {
				return err
			}
		}
	}
	return nil
}

// invoke runs one gatherer for one focus unless memoized. Absence of
// yielded facts is itself a cached result.
func (g *Gathering) invoke(gatherer Gatherer, focus Focus) error {
	memoKey := gatherer.Name + "\x1f" + focus.Key()
	if _, done := g.gathersDone[memoKey]; done {
		if g.metrics != nil {
			g.metrics.RecordMemoHit()
		}
		return nil
	}
	g.gathersDone[memoKey] = struct{}{}

	g.logger.Debug("invoking gatherer",
		"gatherer", gatherer.Name,
		"focus", focus.CanonicalIRI(),
	)
	if g.metrics != nil {
		g.metrics.RecordGathererRun(gatherer.Name)
	}

	facts, err := gatherer.Gather(focus, g.params)
	if err != nil {
		if g.metrics != nil {
			g.metrics.RecordGathererFailure(gatherer.Name)
		}
		return err // gatherer errors are never wrapped
	}

	for _, fact := range facts {
		triple, ok, err := fact.tidy(focus, g.recordFocus)
		if err != nil {
			return err
		}
		if !ok {
			if g.metrics != nil {
				g.metrics.RecordDroppedFact()
			}
			continue
		}
		g.graph.Add(triple)
		if g.metrics != nil {
			g.metrics.RecordFact()
		}
	}
	return nil
}

// gatherThruObject recurses pull through one already-gathered value under a
// non-empty nested path. IRIs resolve to focuses (silently skipped when no
// type is recorded), containers pass items through with the same path, and
// plain records descend into their matching keys. A record already being
// expanded higher in the recursion is a cycle and aborts the pull.
func (g *Gathering) gatherThruObject(
	object rdf.Term,
	pathset rdf.PathSet,
	expanding map[string]struct{},
) error {
	switch o := object.(type) {
	case rdf.IRI:
		focus, err := g.ResolveFocus(string(o))
		if err != nil {
			return nil // soft miss
		}
		return g.pull(pathset, focus, expanding)
	case rdf.Blanknode:
		if rdf.IsContainer(o) {
			for _, item := range rdf.ContainerItems(o) {
				if err := g.gatherThruObject(item, pathset, expanding); err != nil {
					return err
				}
			}
			return nil
		}
		if _, open := expanding[o.Key()]; open {
			return errors.NewTraversal(
				"record-cycle",
				"blank record contains itself",
				errors.ErrRecordCycle,
			)
		}
		expanding[o.Key()] = struct{}{}
		defer delete(expanding, o.Key())
		for predicate, nested := range pathset {
			if len(nested) == 0 {
				continue
			}
			for _, item := range o.Objects(predicate) {
				if err := g.gatherThruObject(item, nested, expanding); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return nil // numbers, text, dates are terminal
	}
}

// recordFocus merges a focus's identity facts into the graph exactly once
// per focus identity.
func (g *Gathering) recordFocus(focus Focus) {
	if _, seen := g.focusSeen[focus.Key()]; seen {
		return
	}
	g.focusSeen[focus.Key()] = struct{}{}
	for _, triple := range focus.IdentityFacts() {
		g.graph.Add(triple)
		if g.metrics != nil {
			g.metrics.RecordFact()
		}
	}
}
