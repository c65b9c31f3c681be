package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semgather/errors"
)

func gatheredNames(t *testing.T, registry *Registry) map[string]bool {
	t.Helper()
	families, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	return names
}

func TestNewRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.PrometheusRegistry())
	assert.NotNil(t, registry.CoreMetrics())
}

func TestRegistry_CoreMetricsGathered(t *testing.T) {
	registry := NewRegistry()
	core := registry.CoreMetrics()

	core.RecordGathererRun("greetings")
	core.RecordGathererFailure("greetings")
	core.RecordMemoHit()
	core.RecordFact()
	core.RecordDroppedFact()
	core.RecordPullDuration("ok", 50*time.Millisecond)
	core.RecordGraphSize(12)

	names := gatheredNames(t, registry)
	for _, expected := range []string{
		"semgather_gatherer_runs_total",
		"semgather_gatherer_failures_total",
		"semgather_gatherer_memo_hits_total",
		"semgather_facts_recorded_total",
		"semgather_facts_dropped_total",
		"semgather_pull_duration_seconds",
		"semgather_graph_triples",
	} {
		assert.True(t, names[expected], "expected %s to be gathered", expected)
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_counter",
		Help: "A test counter",
	})

	err := registry.Register("test-gatherer", "test_counter", counter)
	require.NoError(t, err)
	counter.Inc()

	assert.True(t, gatheredNames(t, registry)["test_counter"])
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	registry := NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dup_counter",
		Help: "A test counter",
	})
	require.NoError(t, registry.Register("test-gatherer", "dup_counter", counter))

	err := registry.Register("test-gatherer", "dup_counter", counter)
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
	assert.Equal(t, "duplicate-metric", errors.Label(err))
}

func TestRegistry_Unregister(t *testing.T) {
	registry := NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "test_gauge",
		Help: "A test gauge",
	})
	require.NoError(t, registry.Register("test-gatherer", "test_gauge", gauge))

	assert.True(t, registry.Unregister("test-gatherer", "test_gauge"))
	assert.False(t, registry.Unregister("test-gatherer", "test_gauge"))
	assert.False(t, registry.Unregister("test-gatherer", "never_registered"))
}
