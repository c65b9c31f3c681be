// Package gather implements the demand-driven gathering engine: focuses,
// the gatherer registry, and the memoizing cache that pulls facts into an
// rdf.Graph only as queries need them.
//
// # Concepts
//
// A Focus names the entity being described: a set of synonymous IRIs plus a
// set of type IRIs. A Gatherer is a registered function producing facts
// about a focus; it declares the predicate IRIs and/or focus type IRIs it
// serves. An Organizer indexes gatherers on those two axes and dispatches
// by per-axis union (including the wildcard buckets) intersected across
// axes: a gatherer registered for predicate P and type T runs only when P
// is requested and the focus has type T, while leaving an axis empty at
// registration satisfies that axis for every query.
//
// A Gathering owns the graph and the memo state. Pull walks a path set and
// invokes matching gatherers at most once per (gatherer, focus) pair —
// structural focus equality, so independently constructed equal focuses
// share one memo entry, and yielding nothing is itself a cached result.
// Peek reads what is already gathered without invoking anything; Ask is
// Pull then Peek.
//
// # Setup
//
//	organizer := gather.NewOrganizer("greetings", gather.Norms{
//	    FocusTypes: []string{myType},
//	})
//	organizer.MustRegister(gather.Gatherer{
//	    Name: "greeting",
//	    Gather: func(focus gather.Focus, _ gather.Params) ([]gather.Fact, error) {
//	        return []gather.Fact{
//	            gather.Twople(greetingIRI, rdf.NewLangLiteral("hello", "en")),
//	        }, nil
//	    },
//	}, []string{greetingIRI}, nil)
//
//	gathering, err := organizer.NewGathering(nil)
//	values, err := gathering.Ask(greetingIRI, focus)
//
// Organizers are read-only after setup and safe to share; each Gathering is
// single-threaded and owned by one goroutine.
//
// Soft misses (an absent predicate, an IRI with no recorded type, a request
// no gatherer serves) are empty results, not errors. Record cycles abort
// the pull with a traversal error; gatherer errors propagate unchanged.
package gather
