// Package semgather is an in-memory, demand-driven knowledge-graph cache.
//
// Facts live in a graph of (subject, predicate, value) triples over a small
// closed value model: IRIs, tagged text literals, integers, floats,
// calendar dates, and anonymous blank records. Queries describe what they
// want as a path set — a nested tree of predicates — and the engine pulls
// only the facts needed to answer, invoking registered gatherer functions
// at most once per (gatherer, focus) pair and memoizing even empty results.
//
// The packages:
//
//   - rdf: the value model, the graph container, and path sets.
//   - vocabulary: IRI namespaces, standard RDF/RDFS/OWL/XSD terms, language
//     tag IRIs, and prefix shorthand.
//   - gather: focuses, the gatherer registry (organizer), and the
//     memoizing gathering cache — the core engine.
//   - crawl: a breadth-first visitor walk over a finished graph for export.
//   - metric: Prometheus instrumentation for the engine.
//   - config: YAML setup for organizers, params, and prefixes.
//   - errors: the two-class error taxonomy (configuration and traversal
//     integrity); soft misses are empty results, never errors.
//
// Everything is synchronous and in-memory: no network protocols, no
// persistence, no background goroutines. An Organizer is read-only after
// setup and shareable; each Gathering instance is owned by one goroutine.
package semgather
