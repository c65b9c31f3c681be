package vocabulary

import (
	"fmt"
	"strconv"
	"strings"
)

// Standard W3C namespaces used throughout the gathering system.
//
// References:
// - RDF: https://www.w3.org/TR/rdf11-concepts/
// - RDFS: https://www.w3.org/TR/rdf-schema/
// - OWL: https://www.w3.org/TR/owl2-overview/
// - XSD: https://www.w3.org/TR/xmlschema11-2/
var (
	RDF  = MustNamespace("http://www.w3.org/1999/02/22-rdf-syntax-ns#")
	RDFS = MustNamespace("http://www.w3.org/2000/01/rdf-schema#")
	OWL  = MustNamespace("http://www.w3.org/2002/07/owl#")
	XSD  = MustNamespace("http://www.w3.org/2001/XMLSchema#")
)

// Core RDF/OWL term IRIs
const (
	// RDFType relates an entity to one of its type IRIs
	RDFType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"

	// OWLSameAs relates two IRIs that identify the same entity.
	// Focus synonym sets are recorded with this predicate.
	OWLSameAs = "http://www.w3.org/2002/07/owl#sameAs"

	// RDFSLabel is a human-readable name for an entity
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"

	// RDFSComment is a human-readable description of an entity
	RDFSComment = "http://www.w3.org/2000/01/rdf-schema#comment"

	// RDFSProperty marks an IRI as a predicate in a vocabulary graph
	RDFSProperty = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Property"
)

// Container type markers. A blank record carrying any of these as an
// rdf:type is treated as a container and unwrapped transparently during
// traversal.
const (
	RDFSeq       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Seq"
	RDFBag       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Bag"
	RDFAlt       = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Alt"
	RDFContainer = "http://www.w3.org/1999/02/22-rdf-syntax-ns#Container"
)

// XSD datatype IRIs used when literals are built from host primitives
const (
	XSDInteger  = "http://www.w3.org/2001/XMLSchema#integer"
	XSDFloat    = "http://www.w3.org/2001/XMLSchema#float"
	XSDDate     = "http://www.w3.org/2001/XMLSchema#date"
	XSDDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"
	XSDString   = "http://www.w3.org/2001/XMLSchema#string"
)

// RDF string datatypes
const (
	RDFString     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#string"
	RDFLangString = "http://www.w3.org/1999/02/22-rdf-syntax-ns#langString"
)

// containerMembershipBase is the prefix of rdf:_1, rdf:_2, ... predicates
// used to encode ordered positions inside container records.
const containerMembershipBase = "http://www.w3.org/1999/02/22-rdf-syntax-ns#_"

// ContainerMembershipIRI returns the positional predicate rdf:_n for a
// 1-based position n.
func ContainerMembershipIRI(position int) string {
	return fmt.Sprintf("%s%d", containerMembershipBase, position)
}

// ParseContainerMembership extracts the 1-based position from an rdf:_n
// predicate IRI. Returns false for any other IRI.
func ParseContainerMembership(iri string) (int, bool) {
	rest, found := strings.CutPrefix(iri, containerMembershipBase)
	if !found {
		return 0, false
	}
	position, err := strconv.Atoi(rest)
	if err != nil || position < 1 {
		return 0, false
	}
	return position, true
}
