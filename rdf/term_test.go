package rdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semgather/errors"
	"github.com/c360studio/semgather/vocabulary"
)

func TestIRIKey(t *testing.T) {
	assert.Equal(t, "<http://example.com/thing>", IRI("http://example.com/thing").Key())
	assert.Equal(t, "http://example.com/thing", IRI("http://example.com/thing").String())
}

func TestNewLiteral(t *testing.T) {
	t.Run("empty text means no value", func(t *testing.T) {
		assert.Nil(t, NewLiteral(""))
		assert.Nil(t, NewLiteral("", vocabulary.LanguageIRI("en")))
	})

	t.Run("tags are deduplicated and sorted", func(t *testing.T) {
		a := NewLiteral("hello", "http://z.example/tag", "http://a.example/tag", "http://z.example/tag")
		b := NewLiteral("hello", "http://a.example/tag", "http://z.example/tag")
		require.NotNil(t, a)
		assert.Equal(t, a.Key(), b.Key())
		assert.Equal(t,
			[]string{"http://a.example/tag", "http://z.example/tag"},
			a.(Literal).TagIRIs(),
		)
	})

	t.Run("empty tag iris are dropped", func(t *testing.T) {
		lit := NewLiteral("hello", "")
		require.NotNil(t, lit)
		assert.Empty(t, lit.(Literal).TagIRIs())
	})

	t.Run("same text different tags differ", func(t *testing.T) {
		assert.NotEqual(t,
			NewLangLiteral("hello", "en").Key(),
			NewLangLiteral("hello", "fr").Key(),
		)
	})
}

func TestLiteralLanguageTag(t *testing.T) {
	lit, ok := NewLangLiteral("bonjour", "fr").(Literal)
	require.True(t, ok)

	tag, found := lit.LanguageTag()
	assert.True(t, found)
	assert.Equal(t, "fr", tag)
	assert.Equal(t, vocabulary.RDFLangString, lit.Datatype())

	plain := NewLiteral("hello").(Literal)
	_, found = plain.LanguageTag()
	assert.False(t, found)
	assert.Equal(t, vocabulary.RDFString, plain.Datatype())

	typed := NewLiteral("2023", vocabulary.XSDInteger).(Literal)
	assert.Equal(t, vocabulary.XSDInteger, typed.Datatype())
}

func TestNumericKeys(t *testing.T) {
	assert.Equal(t, "7^^integer", Integer(7).Key())
	assert.Equal(t, "-7^^integer", Integer(-7).Key())
	assert.Equal(t, "1.5^^float", Float(1.5).Key())
	assert.NotEqual(t, Integer(1).Key(), Float(1).Key())
}

func TestDate(t *testing.T) {
	stamp := time.Date(2023, time.March, 14, 15, 9, 26, 0, time.UTC)
	d := NewDate(stamp)

	assert.Equal(t, "2023-03-14^^date", d.Key())
	assert.Equal(t, DateOf(2023, time.March, 14), d)
	assert.Equal(t, time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC), d.Time())

	// time-of-day is truncated, so two stamps on the same day are one value
	later := time.Date(2023, time.March, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, d.Key(), NewDate(later).Key())
}

func TestNewObject(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Term
	}{
		{"nil stays nil", nil, nil},
		{"string becomes iri", "http://example.com/x", IRI("http://example.com/x")},
		{"int", 3, Integer(3)},
		{"int64", int64(3), Integer(3)},
		{"float64", 2.5, Float(2.5)},
		{"term passes through", Integer(9), Integer(9)},
		{
			"time truncates to date",
			time.Date(2020, time.June, 1, 12, 0, 0, 0, time.UTC),
			DateOf(2020, time.June, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewObject(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unsupported type fails", func(t *testing.T) {
		_, err := NewObject(struct{ x int }{1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnsupportedValue))
		assert.True(t, errors.IsConfig(err))
		assert.Equal(t, "unsupported-value", errors.Label(err))
	})
}

func TestChooseIRI(t *testing.T) {
	tests := []struct {
		name string
		iris []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"http://a.example/x"}, "http://a.example/x"},
		{"shortest wins", []string{"http://long.example/xyz", "http://a.example/x"}, "http://a.example/x"},
		{"tie broken alphabetically", []string{"http://b.example/", "http://a.example/"}, "http://a.example/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChooseIRI(tt.iris))
		})
	}
}
