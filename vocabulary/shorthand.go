package vocabulary

import "strings"

// defaultPrefixes are always available unless the shorthand is built with
// WithoutStandardPrefixes.
var defaultPrefixes = map[string]string{
	"rdf":  "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
	"owl":  "http://www.w3.org/2002/07/owl#",
	"xsd":  "http://www.w3.org/2001/XMLSchema#",
}

// Shorthand maps short prefixes to long IRIs (or namespace bases) so IRIs
// can be compacted for display and expanded on input. Read-only after
// construction.
type Shorthand struct {
	prefixes  map[string]string
	delimiter string
}

// ShorthandOption configures a Shorthand at construction.
type ShorthandOption func(*Shorthand)

// WithDelimiter overrides the default ":" between prefix and name.
func WithDelimiter(delimiter string) ShorthandOption {
	return func(s *Shorthand) {
		s.delimiter = delimiter
	}
}

// WithoutStandardPrefixes omits the built-in rdf/rdfs/owl/xsd prefixes.
func WithoutStandardPrefixes() ShorthandOption {
	return func(s *Shorthand) {
		for short := range defaultPrefixes {
			if s.prefixes[short] == defaultPrefixes[short] {
				delete(s.prefixes, short)
			}
		}
	}
}

// NewShorthand builds a Shorthand from a prefix map. The standard
// rdf/rdfs/owl/xsd prefixes are included unless opted out; caller-supplied
// entries win on collision.
func NewShorthand(prefixes map[string]string, opts ...ShorthandOption) *Shorthand {
	merged := make(map[string]string, len(prefixes)+len(defaultPrefixes))
	for short, long := range defaultPrefixes {
		merged[short] = long
	}
	for short, long := range prefixes {
		merged[short] = long
	}
	s := &Shorthand{prefixes: merged, delimiter: ":"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compact returns the shortest compacted form of the given IRI, or the IRI
// unchanged if no registered prefix matches.
func (s *Shorthand) Compact(iri string) string {
	best := iri
	for short, long := range s.prefixes {
		if !strings.HasPrefix(iri, long) {
			continue
		}
		var candidate string
		if name := iri[len(long):]; name != "" {
			candidate = short + s.delimiter + name
		} else {
			candidate = short
		}
		if len(candidate) < len(best) || (len(candidate) == len(best) && candidate < best) {
			best = candidate
		}
	}
	return best
}

// Expand returns the expanded form of a compacted IRI, or the input
// unchanged if it is not a recognized shorthand. Inputs whose remainder
// begins with "//" (scheme-relative, e.g. "http://...") are never expanded.
func (s *Shorthand) Expand(compacted string) string {
	if long, ok := s.prefixes[compacted]; ok {
		return long
	}
	short, rest, found := strings.Cut(compacted, s.delimiter)
	if !found || strings.HasPrefix(rest, "//") {
		return compacted
	}
	if long, ok := s.prefixes[short]; ok {
		return long + rest
	}
	return compacted
}

// Prefixes returns a copy of the registered prefix map.
func (s *Shorthand) Prefixes() map[string]string {
	out := make(map[string]string, len(s.prefixes))
	for short, long := range s.prefixes {
		out[short] = long
	}
	return out
}
