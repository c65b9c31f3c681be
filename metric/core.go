package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all gathering-engine metrics
type Metrics struct {
	GathererRuns     *prometheus.CounterVec
	GathererFailures *prometheus.CounterVec
	MemoHits         prometheus.Counter
	FactsRecorded    prometheus.Counter
	FactsDropped     prometheus.Counter
	PullDuration     *prometheus.HistogramVec
	GraphTriples     prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all engine metrics
func NewMetrics() *Metrics {
	return &Metrics{
		GathererRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semgather",
				Subsystem: "gatherer",
				Name:      "runs_total",
				Help:      "Total number of gatherer invocations (memo misses)",
			},
			[]string{"gatherer"},
		),

		GathererFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "semgather",
				Subsystem: "gatherer",
				Name:      "failures_total",
				Help:      "Total number of gatherer invocations that returned an error",
			},
			[]string{"gatherer"},
		),

		MemoHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semgather",
				Subsystem: "gatherer",
				Name:      "memo_hits_total",
				Help:      "Total number of gatherer invocations skipped by memoization",
			},
		),

		FactsRecorded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semgather",
				Subsystem: "facts",
				Name:      "recorded_total",
				Help:      "Total number of facts committed to the gathering graph",
			},
		),

		FactsDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "semgather",
				Subsystem: "facts",
				Name:      "dropped_total",
				Help:      "Total number of yielded facts dropped for empty positions",
			},
		),

		PullDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "semgather",
				Subsystem: "pull",
				Name:      "duration_seconds",
				Help:      "Pull duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"status"},
		),

		GraphTriples: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "semgather",
				Subsystem: "graph",
				Name:      "triples",
				Help:      "Current number of triples in the gathering graph",
			},
		),
	}
}

// RecordGathererRun increments the run counter for a gatherer
func (c *Metrics) RecordGathererRun(gatherer string) {
	c.GathererRuns.WithLabelValues(gatherer).Inc()
}

// RecordGathererFailure increments the failure counter for a gatherer
func (c *Metrics) RecordGathererFailure(gatherer string) {
	c.GathererFailures.WithLabelValues(gatherer).Inc()
}

// RecordMemoHit increments the memoization-hit counter
func (c *Metrics) RecordMemoHit() {
	c.MemoHits.Inc()
}

// RecordFact increments the committed-fact counter
func (c *Metrics) RecordFact() {
	c.FactsRecorded.Inc()
}

// RecordDroppedFact increments the dropped-fact counter
func (c *Metrics) RecordDroppedFact() {
	c.FactsDropped.Inc()
}

// RecordPullDuration records how long a pull took and whether it succeeded
func (c *Metrics) RecordPullDuration(status string, duration time.Duration) {
	c.PullDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordGraphSize updates the gathering graph size gauge
func (c *Metrics) RecordGraphSize(triples int) {
	c.GraphTriples.Set(float64(triples))
}
