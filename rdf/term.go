// Package rdf provides the primitive value model, graph container, and path
// sets for the gathering system.
package rdf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/semgather/errors"
	"github.com/c360studio/semgather/vocabulary"
)

// Term is the closed set of permissible graph values: an IRI naming another
// entity or vocabulary term, a tagged literal, an integer, a float, a
// calendar date, or an anonymous blank record. All Terms are immutable once
// constructed.
//
// Every Term has a deterministic canonical Key; two Terms are the same value
// iff their keys are equal. Keys are how object sets deduplicate and how the
// engine memoizes, so they must be stable across processes.
type Term interface {
	// Key returns the canonical identity of this value.
	Key() string

	isTerm()
}

// IRI is an opaque identifier naming another entity or a vocabulary term.
type IRI string

// Key implements Term.
func (i IRI) Key() string { return "<" + string(i) + ">" }

func (IRI) isTerm() {}

// String returns the raw IRI string.
func (i IRI) String() string { return string(i) }

// Literal is a unicode string plus a set of language/datatype IRIs. If any
// tag IRI falls in the IANA language namespace the text is natural-language
// text in that language; otherwise the tag set names a datatype or is an
// opaque hint.
type Literal struct {
	text string
	tags []string // sorted, deduplicated
}

// NewLiteral builds a tagged-text literal. Empty text normalizes to "no
// value": the returned Term is nil and should be dropped by the caller
// (the fact-tidying step does this automatically).
func NewLiteral(text string, tagIRIs ...string) Term {
	if text == "" {
		return nil
	}
	return Literal{text: text, tags: normalizeIRISet(tagIRIs)}
}

// NewLangLiteral builds a literal tagged with an IETF language tag.
func NewLangLiteral(text, languageTag string) Term {
	return NewLiteral(text, vocabulary.LanguageIRI(languageTag))
}

// Text returns the literal's unicode value.
func (l Literal) Text() string { return l.text }

// TagIRIs returns the literal's language/datatype IRIs in sorted order.
func (l Literal) TagIRIs() []string {
	out := make([]string, len(l.tags))
	copy(out, l.tags)
	return out
}

// LanguageTag returns the first recognized IETF language tag among the
// literal's tag IRIs, if any.
func (l Literal) LanguageTag() (string, bool) {
	for _, iri := range l.tags {
		if tag, ok := vocabulary.LanguageTag(iri); ok {
			return tag, true
		}
	}
	return "", false
}

// Datatype returns the single datatype IRI that best describes this literal:
// rdf:langString for language-tagged text, rdf:string for untagged text,
// otherwise the shortest tag IRI.
func (l Literal) Datatype() string {
	if _, ok := l.LanguageTag(); ok {
		return vocabulary.RDFLangString
	}
	if len(l.tags) == 0 {
		return vocabulary.RDFString
	}
	return ChooseIRI(l.tags)
}

// Key implements Term.
func (l Literal) Key() string {
	return strconv.Quote(l.text) + "@" + strings.Join(l.tags, ",")
}

func (Literal) isTerm() {}

// Integer is a whole-number graph value.
type Integer int64

// Key implements Term.
func (n Integer) Key() string { return strconv.FormatInt(int64(n), 10) + "^^integer" }

func (Integer) isTerm() {}

// Float is a floating-point graph value.
type Float float64

// Key implements Term.
func (f Float) Key() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64) + "^^float"
}

func (Float) isTerm() {}

// Date is a calendar date graph value. Datetimes truncate to dates on entry
// to the value model.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date from a time.Time, truncating any time-of-day part.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// DateOf builds a Date from calendar components.
func DateOf(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Key implements Term. The key is the ISO 8601 date.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d^^date", d.year, int(d.month), d.day)
}

func (Date) isTerm() {}

// NewObject converts a host value into a Term. Strings become IRIs (use
// NewLiteral for text values), integer and float kinds become Integer and
// Float, time.Time truncates to Date, Terms pass through, and nil stays nil.
// Any other host type fails with ErrUnsupportedValue.
func NewObject(value any) (Term, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Term:
		return v, nil
	case string:
		return IRI(v), nil
	case int:
		return Integer(v), nil
	case int32:
		return Integer(v), nil
	case int64:
		return Integer(v), nil
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	case time.Time:
		return NewDate(v), nil
	default:
		return nil, errors.NewConfig(
			"unsupported-value",
			fmt.Sprintf("expected a graph value, got %T", value),
			errors.ErrUnsupportedValue,
		)
	}
}

// ChooseIRI deterministically selects one IRI from a set: shortest first,
// ties broken lexicographically. Returns "" for an empty set.
func ChooseIRI(iris []string) string {
	chosen := ""
	for _, iri := range iris {
		if chosen == "" ||
			len(iri) < len(chosen) ||
			(len(iri) == len(chosen) && iri < chosen) {
			chosen = iri
		}
	}
	return chosen
}

// normalizeIRISet deduplicates and sorts, dropping empty strings.
func normalizeIRISet(iris []string) []string {
	seen := make(map[string]struct{}, len(iris))
	out := make([]string, 0, len(iris))
	for _, iri := range iris {
		if iri == "" {
			continue
		}
		if _, dup := seen[iri]; dup {
			continue
		}
		seen[iri] = struct{}{}
		out = append(out, iri)
	}
	sort.Strings(out)
	return out
}
