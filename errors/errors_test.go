package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	tests := []struct {
		name     string
		class    ErrorClass
		expected string
	}{
		{"config", ErrorConfig, "config"},
		{"traversal", ErrorTraversal, "traversal"},
		{"unknown", ErrorClass(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.class.String())
		})
	}
}

func TestGatherErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *GatherError
		expected string
	}{
		{
			name:     "label and comment",
			err:      NewConfig("invalid-gatherer-kwargs", "expected {depth}, got {}", ErrParamMismatch),
			expected: "invalid-gatherer-kwargs: expected {depth}, got {}",
		},
		{
			name:     "label only falls back to wrapped error",
			err:      NewTraversal("record-cycle", "", ErrRecordCycle),
			expected: "record-cycle: blank record contains itself",
		},
		{
			name:     "bare label",
			err:      NewConfig("cannot-get-focus", "", nil),
			expected: "cannot-get-focus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestClassificationPredicates(t *testing.T) {
	configErr := NewConfig("no-criteria", "neither predicates nor types", ErrNoCriteria)
	traversalErr := NewTraversal("record-cycle", "revisited a blank record", ErrRecordCycle)

	assert.True(t, IsConfig(configErr))
	assert.False(t, IsTraversal(configErr))
	assert.True(t, IsTraversal(traversalErr))
	assert.False(t, IsConfig(traversalErr))

	// plain errors carry no classification
	assert.False(t, IsConfig(stderrors.New("plain")))
	assert.False(t, IsTraversal(stderrors.New("plain")))
	assert.False(t, IsConfig(nil))
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	inner := NewTraversal("record-cycle", "cycle at depth 3", ErrRecordCycle)
	wrapped := fmt.Errorf("pull aborted: %w", inner)

	assert.True(t, IsTraversal(wrapped))
	assert.True(t, stderrors.Is(wrapped, ErrRecordCycle))
	assert.Equal(t, "record-cycle", Label(wrapped))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "", Label(nil))
	assert.Equal(t, "", Label(stderrors.New("unlabeled")))
	assert.Equal(t, "cannot-get-focus", Label(NewConfig("cannot-get-focus", "", nil)))
}

func TestUnwrapChain(t *testing.T) {
	err := NewConfig("invalid-namespace", `expected iri to have a ":"`, ErrMalformedNamespace)
	require.ErrorIs(t, err, ErrMalformedNamespace)

	var ge *GatherError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ErrorConfig, ge.Class)
	assert.Equal(t, "invalid-namespace", ge.Label)
}

func TestWrap(t *testing.T) {
	base := stderrors.New("boom")
	wrapped := Wrap(base, "Gathering", "Pull", "gatherer dispatch")
	require.Error(t, wrapped)
	assert.Equal(t, "Gathering.Pull: gatherer dispatch failed: boom", wrapped.Error())
	assert.ErrorIs(t, wrapped, base)

	assert.NoError(t, Wrap(nil, "Gathering", "Pull", "anything"))
}
