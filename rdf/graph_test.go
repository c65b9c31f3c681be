package rdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semgather/errors"
)

const (
	testSubject = "http://example.com/one"
	testOther   = "http://example.com/two"
)

func collect(seq func(func(Term) bool)) []Term {
	var out []Term
	seq(func(t Term) bool {
		out = append(out, t)
		return true
	})
	return out
}

func keysOf(terms []Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Key()
	}
	return out
}

func TestGraphAddAndContains(t *testing.T) {
	g := NewGraph()
	g.AddTriple(testSubject, testPredA, Integer(1))
	g.AddTriple(testSubject, testPredA, Integer(1)) // duplicate is a no-op
	g.AddTriple(testSubject, testPredB, NewLiteral("x"))

	assert.Equal(t, 2, g.Len())
	assert.True(t, g.Contains(Triple{testSubject, testPredA, Integer(1)}))
	assert.False(t, g.Contains(Triple{testSubject, testPredA, Integer(2)}))
	assert.False(t, g.Contains(Triple{testOther, testPredA, Integer(1)}))
	assert.Equal(t, []string{testSubject}, g.Subjects())
	assert.Equal(t, []string{testPredA, testPredB}, g.Predicates(testSubject))
}

func TestGraphIgnoresEmptyPositions(t *testing.T) {
	g := NewGraph()
	g.AddTriple("", testPredA, Integer(1))
	g.AddTriple(testSubject, "", Integer(1))
	g.AddTriple(testSubject, testPredA, nil)

	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Subjects())
}

func TestGraphRemove(t *testing.T) {
	g := NewGraph()
	g.AddTriple(testSubject, testPredA, Integer(1))

	t.Run("missing triple fails", func(t *testing.T) {
		err := g.Remove(Triple{testSubject, testPredA, Integer(2)})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrTripleNotFound))
		assert.True(t, errors.IsTraversal(err))
	})

	t.Run("discard never fails", func(t *testing.T) {
		g.Discard(Triple{testSubject, testPredA, Integer(2)})
		assert.Equal(t, 1, g.Len())
	})

	t.Run("removal prunes empty entries", func(t *testing.T) {
		require.NoError(t, g.Remove(Triple{testSubject, testPredA, Integer(1)}))
		assert.Equal(t, 0, g.Len())
		assert.False(t, g.HasSubject(testSubject))
	})
}

func TestGraphAddTwopleMap(t *testing.T) {
	g := NewGraph()
	g.AddTwopleMap(testSubject, TwopleMap{
		testPredA: {Integer(1), Integer(2)},
		testPredB: {NewLiteral("x")},
	})
	assert.Equal(t, 3, g.Len())
	assert.ElementsMatch(t,
		[]string{Integer(1).Key(), Integer(2).Key()},
		keysOf(g.ObjectSlice(testSubject, testPredA)),
	)
}

func TestGraphQuery(t *testing.T) {
	g := NewGraph()
	g.AddTriple(testSubject, testPredA, NewLiteral("direct"))
	g.AddTriple(testSubject, testPredB, IRI(testOther))
	g.AddTriple(testOther, testPredA, NewLiteral("via-reference"))

	t.Run("empty nested path yields direct values", func(t *testing.T) {
		got := collect(g.Query(testSubject, PathSet{testPredA: {}}))
		assert.Equal(t, []string{NewLiteral("direct").Key()}, keysOf(got))
	})

	t.Run("descends through entity references", func(t *testing.T) {
		got := collect(g.Query(testSubject, PathSet{testPredB: {testPredA: {}}}))
		assert.Equal(t, []string{NewLiteral("via-reference").Key()}, keysOf(got))
	})

	t.Run("empty nested path never unwraps the reference", func(t *testing.T) {
		got := collect(g.Query(testSubject, PathSet{testPredB: {}}))
		assert.Equal(t, []string{IRI(testOther).Key()}, keysOf(got))
	})

	t.Run("absent predicate is a soft miss", func(t *testing.T) {
		got := collect(g.Query(testSubject, PathSet{"http://example.com/vocab/nope": {}}))
		assert.Empty(t, got)
	})

	t.Run("absent subject is a soft miss", func(t *testing.T) {
		got := collect(g.Query("http://example.com/nope", PathSet{testPredA: {}}))
		assert.Empty(t, got)
	})
}

func TestGraphQueryThroughRecords(t *testing.T) {
	inner := NewBlanknode(TwopleMap{testPredA: {NewLiteral("inside")}})
	g := NewGraph()
	g.AddTriple(testSubject, testPredB, inner)

	t.Run("descends into record keys", func(t *testing.T) {
		got := collect(g.Query(testSubject, PathSet{testPredB: {testPredA: {}}}))
		assert.Equal(t, []string{NewLiteral("inside").Key()}, keysOf(got))
	})

	t.Run("terminal path yields the record itself", func(t *testing.T) {
		got := collect(g.Query(testSubject, PathSet{testPredB: {}}))
		require.Len(t, got, 1)
		assert.Equal(t, inner.Key(), got[0].Key())
	})
}

func TestGraphQueryContainerPassThrough(t *testing.T) {
	seq := NewSequence([]Term{
		NewBlanknode(TwopleMap{testPredA: {NewLiteral("first")}}),
		NewBlanknode(TwopleMap{testPredA: {NewLiteral("second")}}),
	})
	g := NewGraph()
	g.AddTriple(testSubject, testPredB, seq)

	t.Run("non-empty nested path applies to each item", func(t *testing.T) {
		got := collect(g.Query(testSubject, PathSet{testPredB: {testPredA: {}}}))
		assert.Equal(t,
			[]string{NewLiteral("first").Key(), NewLiteral("second").Key()},
			keysOf(got),
		)
	})

	t.Run("empty nested path yields the container unopened", func(t *testing.T) {
		got := collect(g.Query(testSubject, PathSet{testPredB: {}}))
		require.Len(t, got, 1)
		assert.Equal(t, seq.Key(), got[0].Key())
	})
}

func TestGraphQuerySelfContainingRecordStops(t *testing.T) {
	// a record cannot literally contain itself, but two structurally equal
	// records nested in each other hit the same expanding guard
	inner := NewBlanknode(TwopleMap{testPredA: {NewLiteral("leaf")}})
	outer := NewBlanknode(TwopleMap{testPredA: {inner}})

	g := NewGraph()
	g.AddTriple(testSubject, testPredB, outer)

	got := collect(g.Query(testSubject, PathSet{testPredB: {testPredA: {testPredA: {}}}}))
	assert.Equal(t, []string{NewLiteral("leaf").Key()}, keysOf(got))
}

func TestGraphCloneIsolation(t *testing.T) {
	g := NewGraph()
	g.AddTriple(testSubject, testPredA, Integer(1))

	snapshot := g.Clone()
	g.AddTriple(testSubject, testPredA, Integer(2))

	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, 2, g.Len())
}

func TestGraphViewTracksMutations(t *testing.T) {
	g := NewGraph()
	view := g.View()

	g.AddTriple(testSubject, testPredA, Integer(1))
	assert.Equal(t, 1, view.Len())
	assert.True(t, view.Contains(Triple{testSubject, testPredA, Integer(1)}))
	assert.Equal(t, []string{testSubject}, view.Subjects())
}

func TestSkolemize(t *testing.T) {
	record := NewBlanknode(TwopleMap{
		testPredA: {NewLiteral("inside")},
	})
	g := NewGraph()
	g.AddTriple(testSubject, testPredB, record)
	g.AddTriple(testOther, testPredB, record) // same record, shared skolem iri

	skolemized := g.Skolemize()

	var fromOne, fromTwo Term
	for _, term := range skolemized.ObjectSlice(testSubject, testPredB) {
		fromOne = term
	}
	for _, term := range skolemized.ObjectSlice(testOther, testPredB) {
		fromTwo = term
	}
	require.NotNil(t, fromOne)
	iri, ok := fromOne.(IRI)
	require.True(t, ok, "record should be replaced by an iri")
	assert.True(t, strings.HasPrefix(string(iri), skolemBase))
	assert.Equal(t, fromOne, fromTwo)

	// the record's pairs became triples of the minted iri
	assert.True(t, skolemized.Contains(Triple{string(iri), testPredA, NewLiteral("inside")}))

	// original graph untouched
	assert.True(t, g.Contains(Triple{testSubject, testPredB, record}))
}

func TestNewSkolemIRIUnique(t *testing.T) {
	a := NewSkolemIRI()
	b := NewSkolemIRI()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(string(a), "https://"))
}
