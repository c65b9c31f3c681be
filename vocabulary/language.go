package vocabulary

// IANALanguage expresses IETF BCP 47 language tags in IRI form. A literal
// tagged with any IRI in this namespace is natural-language text in that
// language; any other tag IRI names a datatype or is an opaque hint.
//
// The URL of the IANA Language Subtag Registry (with appended "#") serves as
// the namespace base, even though a full tag may combine several registered
// subtags.
var IANALanguage = MustNamespace(
	"https://www.iana.org/assignments/language-subtag-registry#",
)

// LanguageIRI converts an IETF language tag ("en", "es-MX") to its IRI form.
func LanguageIRI(tag string) string {
	return IANALanguage.String() + tag
}

// LanguageTag extracts the language tag from an IRI in the IANALanguage
// namespace. Returns false for IRIs outside it.
func LanguageTag(iri string) (string, bool) {
	if !IANALanguage.Contains(iri) {
		return "", false
	}
	tag, err := IANALanguage.Name(iri)
	if err != nil {
		return "", false
	}
	return tag, true
}
