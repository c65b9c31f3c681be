package gather

import (
	"fmt"

	"github.com/c360studio/semgather/errors"
	"github.com/c360studio/semgather/rdf"
)

// Fact is one unit of information yielded by a gatherer. A fact either
// names its own subject (Triple) or leaves it implicit (Twople), in which
// case the focus the gatherer was invoked for supplies it.
//
// Subject may be an IRI string or a Focus; object may be any value
// rdf.NewObject accepts, or a Focus. A fact with an explicit nothing in any
// position is silently dropped by the tidy step — that is the documented
// mechanism for a gatherer to conditionally omit a fact.
type Fact struct {
	subject    any
	predicate  string
	object     any
	hasSubject bool
}

// Triple builds a fact with an explicit subject.
func Triple(subject any, predicate string, object any) Fact {
	return Fact{subject: subject, predicate: predicate, object: object, hasSubject: true}
}

// Twople builds a fact about the focus itself; the engine fills in the
// focus's canonical IRI as subject.
func Twople(predicate string, object any) Fact {
	return Fact{predicate: predicate, object: object}
}

// Predicate returns the fact's predicate IRI.
func (f Fact) Predicate() string { return f.predicate }

// tidy resolves a fact into a concrete triple for the given focus.
// Facts with any empty position are dropped (ok=false); subjects or objects
// of an unusable host type fail with ErrMalformedFact. Focus-valued
// endpoints resolve to their canonical IRI; the caller records their
// identity facts via the recordFocus callback.
func (f Fact) tidy(focus Focus, recordFocus func(Focus)) (rdf.Triple, bool, error) {
	subject := focus.CanonicalIRI()
	if f.hasSubject {
		switch s := f.subject.(type) {
		case nil:
			return rdf.Triple{}, false, nil
		case string:
			subject = s
		case rdf.IRI:
			subject = string(s)
		case Focus:
			recordFocus(s)
			subject = s.CanonicalIRI()
		default:
			return rdf.Triple{}, false, errors.NewTraversal(
				"malformed-fact",
				fmt.Sprintf("fact subject must be an iri or focus, got %T", f.subject),
				errors.ErrMalformedFact,
			)
		}
	}
	if subject == "" || f.predicate == "" {
		return rdf.Triple{}, false, nil
	}

	var object rdf.Term
	if objectFocus, ok := f.object.(Focus); ok {
		recordFocus(objectFocus)
		canonical := objectFocus.CanonicalIRI()
		if canonical == "" {
			return rdf.Triple{}, false, nil
		}
		object = rdf.IRI(canonical)
	} else {
		converted, err := rdf.NewObject(f.object)
		if err != nil {
			return rdf.Triple{}, false, errors.NewTraversal(
				"malformed-fact",
				fmt.Sprintf("fact object for %s is not a graph value", f.predicate),
				errors.ErrMalformedFact,
			)
		}
		object = converted
	}
	if object == nil {
		return rdf.Triple{}, false, nil
	}

	return rdf.Triple{Subject: subject, Predicate: f.predicate, Object: object}, true, nil
}
