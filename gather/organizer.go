package gather

import (
	"fmt"
	"sort"

	"github.com/c360studio/semgather/errors"
	"github.com/c360studio/semgather/rdf"
)

// Params carries auxiliary arguments into gatherer invocations. The
// organizer declares the expected parameter names up front; NewGathering
// validates the provided set against that declaration exactly.
type Params map[string]any

// GathererFunc produces facts about a focus. Errors are not caught by the
// engine; they surface to the caller of Pull/Ask unchanged.
type GathererFunc func(focus Focus, params Params) ([]Fact, error)

// Gatherer is a named fact producer. The name is the memo identity, so it
// must be unique within an organizer and stable across runs.
type Gatherer struct {
	Name   string
	Gather GathererFunc
}

// Norms describes the shared vocabulary a family of gatherers serves: a
// namestory of labels for the gathering as a whole, a static vocabulary
// graph, and the focus types the organizer is primarily about.
type Norms struct {
	Namestory  []rdf.Term
	Vocabulary *rdf.Graph
	FocusTypes []string
}

// Organizer is an explicit gatherer registry: read-only after setup, safe
// to share across many Gathering instances. Gatherers index under predicate
// IRIs and type IRIs; an empty axis places the gatherer in that axis's
// wildcard bucket.
type Organizer struct {
	name       string
	norms      Norms
	paramNames []string // sorted

	gatherers    map[string]Gatherer
	byPredicate  map[string]map[string]struct{}
	anyPredicate map[string]struct{}
	byType       map[string]map[string]struct{}
	anyType      map[string]struct{}
}

// OrganizerOption configures an Organizer at construction.
type OrganizerOption func(*Organizer)

// WithParamNames declares the parameter names every Gathering built from
// this organizer must provide, no more and no fewer.
func WithParamNames(names ...string) OrganizerOption {
	return func(o *Organizer) {
		o.paramNames = append([]string(nil), names...)
		sort.Strings(o.paramNames)
	}
}

// NewOrganizer creates an empty registry.
func NewOrganizer(name string, norms Norms, opts ...OrganizerOption) *Organizer {
	o := &Organizer{
		name:         name,
		norms:        norms,
		gatherers:    make(map[string]Gatherer),
		byPredicate:  make(map[string]map[string]struct{}),
		anyPredicate: make(map[string]struct{}),
		byType:       make(map[string]map[string]struct{}),
		anyType:      make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Name returns the organizer's name.
func (o *Organizer) Name() string { return o.name }

// Norms returns the organizer's shared vocabulary description.
func (o *Organizer) Norms() Norms { return o.norms }

// Register indexes a gatherer under every given predicate IRI and every
// given type IRI; an empty axis indexes under that axis's wildcard instead.
// Registering with both axes empty is a configuration error, as is a
// duplicate name or a nil gatherer function.
func (o *Organizer) Register(g Gatherer, predicateIRIs, typeIRIs []string) error {
	if g.Name == "" || g.Gather == nil {
		return errors.NewConfig(
			"invalid-gatherer",
			"gatherer needs a name and a function",
			errors.ErrNoCriteria,
		)
	}
	predicateIRIs = normalizeIRIs(predicateIRIs)
	typeIRIs = normalizeIRIs(typeIRIs)
	if len(predicateIRIs) == 0 && len(typeIRIs) == 0 {
		return errors.NewConfig(
			"no-criteria",
			fmt.Sprintf("gatherer %q declares no predicates and no focus types", g.Name),
			errors.ErrNoCriteria,
		)
	}
	if _, dup := o.gatherers[g.Name]; dup {
		return errors.NewConfig(
			"duplicate-gatherer",
			fmt.Sprintf("gatherer %q already registered", g.Name),
			errors.ErrDuplicateGatherer,
		)
	}
	o.gatherers[g.Name] = g

	if len(predicateIRIs) == 0 {
		o.anyPredicate[g.Name] = struct{}{}
	}
	for _, predicate := range predicateIRIs {
		bucket, ok := o.byPredicate[predicate]
		if !ok {
			bucket = make(map[string]struct{})
			o.byPredicate[predicate] = bucket
		}
		bucket[g.Name] = struct{}{}
	}

	if len(typeIRIs) == 0 {
		o.anyType[g.Name] = struct{}{}
	}
	for _, typeIRI := range typeIRIs {
		bucket, ok := o.byType[typeIRI]
		if !ok {
			bucket = make(map[string]struct{})
			o.byType[typeIRI] = bucket
		}
		bucket[g.Name] = struct{}{}
	}
	return nil
}

// MustRegister is Register but panics on error. For static setup blocks.
func (o *Organizer) MustRegister(g Gatherer, predicateIRIs, typeIRIs []string) {
	if err := o.Register(g, predicateIRIs, typeIRIs); err != nil {
		panic(err)
	}
}

// Lookup returns the gatherers to invoke for a focus and a set of requested
// predicates: per axis, the union of gatherers indexed under any requested
// predicate (or any focus type) plus that axis's wildcard bucket; then the
// intersection across the two axes. Sorted by name for deterministic
// invocation order.
func (o *Organizer) Lookup(focus Focus, predicates []string) []Gatherer {
	predicateAxis := make(map[string]struct{}, len(o.anyPredicate))
	for name := range o.anyPredicate {
		predicateAxis[name] = struct{}{}
	}
	for _, predicate := range predicates {
		for name := range o.byPredicate[predicate] {
			predicateAxis[name] = struct{}{}
		}
	}

	typeAxis := make(map[string]struct{}, len(o.anyType))
	for name := range o.anyType {
		typeAxis[name] = struct{}{}
	}
	for _, typeIRI := range focus.Types() {
		for name := range o.byType[typeIRI] {
			typeAxis[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(predicateAxis))
	for name := range predicateAxis {
		if _, inBoth := typeAxis[name]; inBoth {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out := make([]Gatherer, 0, len(names))
	for _, name := range names {
		out = append(out, o.gatherers[name])
	}
	return out
}

// AllPredicates returns every predicate IRI any gatherer is indexed under,
// sorted.
func (o *Organizer) AllPredicates() []string {
	out := make([]string, 0, len(o.byPredicate))
	for predicate := range o.byPredicate {
		out = append(out, predicate)
	}
	sort.Strings(out)
	return out
}

// GathererNames returns every registered name, sorted.
func (o *Organizer) GathererNames() []string {
	out := make([]string, 0, len(o.gatherers))
	for name := range o.gatherers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NewGathering creates a fresh cache over this organizer's gatherers. The
// provided params must match the organizer's declared parameter names
// exactly; a mismatch is a configuration error.
func (o *Organizer) NewGathering(params Params, opts ...GatheringOption) (*Gathering, error) {
	provided := make([]string, 0, len(params))
	for name := range params {
		provided = append(provided, name)
	}
	sort.Strings(provided)
	if !equalStrings(provided, o.paramNames) {
		return nil, errors.NewConfig(
			"invalid-gatherer-kwargs",
			fmt.Sprintf("organizer %q expects params %v, got %v", o.name, o.paramNames, provided),
			errors.ErrParamMismatch,
		)
	}
	return newGathering(o, params, opts...), nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
