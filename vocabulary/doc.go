// Package vocabulary provides IRI namespace definitions and builders for the
// gathering system.
//
// # Namespaces
//
// A Namespace is the set of all IRIs beginning with a base IRI. Members are
// built explicitly rather than through reflection:
//
//	blarg := vocabulary.MustNamespace("https://blarg.example/vocab/")
//	greeting, err := blarg.Member("greeting")
//	// "https://blarg.example/vocab/greeting"
//
// A namespace may carry an allow-list; building a name outside it is a
// configuration error:
//
//	restricted := vocabulary.MustNamespace("https://blarg.example/",
//	    vocabulary.WithAllowedNames("foo", "bar"))
//	_, err := restricted.Member("baz") // errors.ErrNameNotAllowed
//
// # Standard Vocabularies
//
// The RDF, RDFS, OWL, and XSD namespaces are predefined, along with constants
// for the terms the engine itself depends on: rdf:type, owl:sameAs, the
// container markers (rdf:Seq, rdf:Bag, rdf:Alt, rdf:Container), positional
// membership predicates (rdf:_1, rdf:_2, ...), and the XSD datatypes implied
// by host primitives.
//
// # Language Tags
//
// IETF BCP 47 language tags are expressed as IRIs within the IANA Language
// Subtag Registry namespace, so a literal's tag set can mix language tags and
// datatype IRIs uniformly. LanguageIRI and LanguageTag convert between forms.
//
// # Shorthand
//
// Shorthand maps prefixes to namespace bases for compacting IRIs in logs and
// display output, and expanding them on input. It is read-only after
// construction and never performs network lookups.
package vocabulary
