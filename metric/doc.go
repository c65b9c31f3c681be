// Package metric provides Prometheus-based metrics for the gathering engine.
//
// A Registry owns a private Prometheus registry holding the core engine
// metrics (gatherer runs and failures, memoization hits, fact counts, pull
// durations, graph size) plus Go runtime collectors. Callers expose it
// however they like; the package does not start an HTTP server.
//
// Core metrics use the namespace "semgather":
//   - semgather_gatherer_runs_total{gatherer="..."}
//   - semgather_gatherer_failures_total{gatherer="..."}
//   - semgather_gatherer_memo_hits_total
//   - semgather_facts_recorded_total
//   - semgather_facts_dropped_total
//   - semgather_pull_duration_seconds{status="..."}
//   - semgather_graph_triples
//
// Custom gatherer instrumentation registers through Registry.Register with a
// scope name; duplicate registrations fail with a configuration error.
//
// All registry operations are thread-safe and metric recording is lock-free.
package metric
