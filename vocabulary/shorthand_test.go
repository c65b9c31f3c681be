package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const blargBase = "https://blarg.example/vocab/"

func TestShorthandCompact(t *testing.T) {
	s := NewShorthand(map[string]string{"blarg": blargBase})

	assert.Equal(t, "blarg:haha", s.Compact(blargBase+"haha"))
	assert.Equal(t, "rdf:type", s.Compact(RDFType))
	assert.Equal(t, "https://florb.example/x", s.Compact("https://florb.example/x"))
}

func TestShorthandCompactPrefersShortest(t *testing.T) {
	s := NewShorthand(map[string]string{
		"blarg": blargBase,
		"lol":   blargBase + "haha",
	})
	assert.Equal(t, "lol", s.Compact(blargBase+"haha"))
	assert.Equal(t, "blarg:blah", s.Compact(blargBase+"blah"))
}

func TestShorthandExpand(t *testing.T) {
	s := NewShorthand(map[string]string{
		"blarg":  blargBase,
		"blargl": blargBase + "l",
	})

	assert.Equal(t, blargBase, s.Expand("blarg"))
	assert.Equal(t, blargBase+"l", s.Expand("blargl"))
	assert.Equal(t, blargBase+"foo", s.Expand("blarg:foo"))
	assert.Equal(t, "flarg:boo", s.Expand("flarg:boo"))
	assert.Equal(t, "http://something.example/else",
		s.Expand("http://something.example/else"))
}

func TestShorthandExpandNeverMangles(t *testing.T) {
	// a prefix that collides with a URL scheme must not expand
	s := NewShorthand(map[string]string{"http": blargBase})
	assert.Equal(t, "http://foo.example", s.Expand("http://foo.example"))
}

func TestShorthandDelimiter(t *testing.T) {
	s := NewShorthand(map[string]string{"blarg": blargBase}, WithDelimiter("--"))
	assert.Equal(t, "blarg--blah", s.Compact(blargBase+"blah"))
	assert.Equal(t, blargBase+"blah", s.Expand("blarg--blah"))
}

func TestShorthandWithoutStandardPrefixes(t *testing.T) {
	s := NewShorthand(nil, WithoutStandardPrefixes())
	assert.Equal(t, RDFType, s.Compact(RDFType))
	assert.Empty(t, s.Prefixes())
}
