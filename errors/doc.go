// Package errors provides standardized error handling patterns for SemGather.
//
// # Overview
//
// The errors package implements a two-class error classification system for
// the gathering engine: Config (setup-time validation failures, never
// retried) and Traversal (graph-integrity failures that abort a pull).
//
// Soft misses are deliberately not part of the taxonomy. A predicate with no
// recorded values, an IRI that does not resolve to a typed focus, or a
// request no gatherer serves all yield empty result sequences rather than
// errors; callers distinguish success-with-no-data from failure strictly by
// whether an error was returned.
//
// # Label/Comment Pairs
//
// Every GatherError carries a machine-checkable Label and a human-readable
// Comment. Labels are stable identifiers suitable for programmatic checks;
// comments explain the specific occurrence:
//
//	if err := organizer.Register(g, nil, nil); err != nil {
//	    if errors.Is(err, errors.ErrNoCriteria) {
//	        // registration gave neither predicates nor focus types
//	    }
//	    log.Error("registration failed", "label", errors.Label(err))
//	}
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
//
// # Propagation Policy
//
// The gathering engine never wraps or translates errors returned by gatherer
// functions; they surface to the caller of Pull/Ask unchanged. Only errors
// originating inside the engine carry GatherError classification.
package errors
