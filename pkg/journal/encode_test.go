package journal

import (
	"errors"
	"testing"

	"github.com/aleksaelezovic/trijournal/pkg/rdf"
)

func TestEncodePoint(t *testing.T) {
	tests := []struct {
		name     string
		term     rdf.Term
		expected string
	}{
		{
			name:     "named node",
			term:     rdf.NewNamedNode("http://example.org/alice"),
			expected: "<http://example.org/alice>",
		},
		{
			name:     "blank node",
			term:     rdf.NewBlankNode("b1"),
			expected: "_:b1",
		},
		{
			name:     "literal passes through raw",
			term:     rdf.NewLiteral("raw-value"),
			expected: "raw-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodePoint(tt.term); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestEncodeObject(t *testing.T) {
	tests := []struct {
		name     string
		term     rdf.Term
		expected string
	}{
		{
			name:     "named node",
			term:     rdf.NewNamedNode("http://example.org/bob"),
			expected: "<http://example.org/bob>",
		},
		{
			name:     "time literal zero-padded",
			term:     rdf.NewTimeLiteral(13, 5, 9),
			expected: `"13:05:09"^^<http://www.w3.org/2001/XMLSchema#time>`,
		},
		{
			name:     "date literal zero-padded",
			term:     rdf.NewDateLiteral(2024, 1, 9),
			expected: `"2024-01-09"^^<http://www.w3.org/2001/XMLSchema#date>`,
		},
		{
			name:     "datetime without offset forces +00:00",
			term:     rdf.NewDateTimeLiteral(2024, 1, 9, 13, 5, 9),
			expected: `"2024-01-09T13:05:09+00:00"^^<http://www.w3.org/2001/XMLSchema#dateTime>`,
		},
		{
			name:     "datetime with explicit offset",
			term:     rdf.NewDateTimeLiteralWithOffset(2024, 1, 9, 13, 5, 9, 2*3600),
			expected: `"2024-01-09T13:05:09+02:00"^^<http://www.w3.org/2001/XMLSchema#dateTime>`,
		},
		{
			name:     "datetime with negative offset",
			term:     rdf.NewDateTimeLiteralWithOffset(2024, 1, 9, 13, 5, 9, -(5*3600 + 30*60)),
			expected: `"2024-01-09T13:05:09-05:30"^^<http://www.w3.org/2001/XMLSchema#dateTime>`,
		},
		{
			name:     "xsd:string absolute spelling",
			term:     rdf.NewLiteralWithDatatype("hello", rdf.XSDString),
			expected: `"hello"^^<http://www.w3.org/2001/XMLSchema#string>`,
		},
		{
			name:     "xsd:string abbreviated spelling normalizes",
			term:     rdf.NewLiteralWithDatatype("hello", rdf.XSDStringAbbrev),
			expected: `"hello"^^<http://www.w3.org/2001/XMLSchema#string>`,
		},
		{
			name:     "other datatype",
			term:     rdf.NewIntegerLiteral(30),
			expected: `"30"^^<http://www.w3.org/2001/XMLSchema#integer>`,
		},
		{
			name:     "language-tagged literal",
			term:     rdf.NewLiteralWithLanguage("bonjour", "fr"),
			expected: `"bonjour"@fr`,
		},
		{
			name:     "plain literal",
			term:     rdf.NewLiteral("plain"),
			expected: `"plain"`,
		},
		{
			name:     "embedded quotes and control characters escaped",
			term:     rdf.NewLiteral("say \"hi\"\n\x01"),
			expected: `"say \"hi\"\n"`,
		},
		{
			name:     "blank node",
			term:     rdf.NewBlankNode("b2"),
			expected: "_:b2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeObject(tt.term)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestEncodeObject_BothStringSpellingsIdentical(t *testing.T) {
	full, err := EncodeObject(rdf.NewLiteralWithDatatype("hello", rdf.XSDString))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	abbrev, err := EncodeObject(rdf.NewLiteralWithDatatype("hello", rdf.XSDStringAbbrev))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if full != abbrev {
		t.Errorf("spellings diverged: %q vs %q", full, abbrev)
	}
}

// unrecognizedTerm is a term shape the encoder does not know
type unrecognizedTerm struct{}

func (u *unrecognizedTerm) Type() rdf.TermType     { return rdf.TermType(200) }
func (u *unrecognizedTerm) String() string         { return "opaque" }
func (u *unrecognizedTerm) Equals(o rdf.Term) bool { return false }

func TestEncodeObject_UnrecognizedShape(t *testing.T) {
	_, err := EncodeObject(&unrecognizedTerm{})
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}

	// Opaque passthrough renders the raw point form on explicit request
	if got := EncodeObjectOpaque(&unrecognizedTerm{}); got != "opaque" {
		t.Errorf("expected raw passthrough %q, got %q", "opaque", got)
	}
}

func TestEncodeTriple(t *testing.T) {
	line, err := EncodeTriple(
		rdf.NewNamedNode("http://example.org/alice"),
		rdf.NewNamedNode("http://xmlns.com/foaf/0.1/name"),
		rdf.NewLiteralWithLanguage("Alice", "en"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "<http://example.org/alice> <http://xmlns.com/foaf/0.1/name> \"Alice\"@en .\n"
	if line != expected {
		t.Errorf("expected %q, got %q", expected, line)
	}
}

func TestEncodeTriple_PropagatesEncodingError(t *testing.T) {
	_, err := EncodeTriple(
		rdf.NewNamedNode("http://example.org/s"),
		rdf.NewNamedNode("http://example.org/p"),
		&unrecognizedTerm{},
	)
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}
