package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semgather/errors"
)

func TestNewNamespace(t *testing.T) {
	ns, err := NewNamespace("https://blarg.example/vocab/")
	require.NoError(t, err)
	assert.Equal(t, "https://blarg.example/vocab/", ns.String())
}

func TestNewNamespaceRejectsMissingSeparator(t *testing.T) {
	_, err := NewNamespace("no-separator-here")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMalformedNamespace)
	assert.True(t, errors.IsConfig(err))
	assert.Equal(t, "invalid-namespace", errors.Label(err))
}

func TestMember(t *testing.T) {
	ns := MustNamespace("https://blarg.example/vocab/")

	iri, err := ns.Member("greeting")
	require.NoError(t, err)
	assert.Equal(t, "https://blarg.example/vocab/greeting", iri)

	// empty names are permitted and yield the base
	iri, err = ns.Member("")
	require.NoError(t, err)
	assert.Equal(t, ns.String(), iri)
}

func TestMemberAllowList(t *testing.T) {
	ns := MustNamespace("https://blarg.example/",
		WithAllowedNames("foo", "bar"))

	iri, err := ns.Member("foo")
	require.NoError(t, err)
	assert.Equal(t, "https://blarg.example/foo", iri)

	_, err = ns.Member("baz")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNameNotAllowed)
	assert.True(t, errors.IsConfig(err))
}

func TestName(t *testing.T) {
	ns := MustNamespace("https://blarg.example/vocab/")

	name, err := ns.Name("https://blarg.example/vocab/greeting")
	require.NoError(t, err)
	assert.Equal(t, "greeting", name)

	_, err = ns.Name("https://florb.example/other")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNotInNamespace)
}

func TestContains(t *testing.T) {
	ns := MustNamespace("https://blarg.example/vocab/")
	sub := MustNamespace(ns.MustMember("subvocab#"))

	assert.True(t, ns.Contains("https://blarg.example/vocab/foo"))
	assert.False(t, ns.Contains("https://florb.example"))
	assert.True(t, ns.Contains(sub.String()))
	assert.False(t, sub.Contains(ns.String()))
}

func TestContainerMembership(t *testing.T) {
	assert.Equal(t,
		"http://www.w3.org/1999/02/22-rdf-syntax-ns#_1",
		ContainerMembershipIRI(1))
	assert.Equal(t,
		"http://www.w3.org/1999/02/22-rdf-syntax-ns#_12",
		ContainerMembershipIRI(12))

	tests := []struct {
		name     string
		iri      string
		position int
		ok       bool
	}{
		{"first", ContainerMembershipIRI(1), 1, true},
		{"double digit", ContainerMembershipIRI(42), 42, true},
		{"not positional", RDFType, 0, false},
		{"zero position", containerMembershipBase + "0", 0, false},
		{"non-numeric", containerMembershipBase + "x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			position, ok := ParseContainerMembership(tt.iri)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.position, position)
			}
		})
	}
}

func TestLanguageIRIRoundTrip(t *testing.T) {
	iri := LanguageIRI("en-US")
	assert.True(t, IANALanguage.Contains(iri))

	tag, ok := LanguageTag(iri)
	require.True(t, ok)
	assert.Equal(t, "en-US", tag)

	_, ok = LanguageTag(XSDDate)
	assert.False(t, ok)
}
