package journal

import (
	"fmt"
	"strings"

	"github.com/aleksaelezovic/trijournal/pkg/rdf"
)

// EncodePoint serializes a term for the subject or predicate position.
// Named nodes render wrapped in angle brackets; everything else renders as
// its raw text (blank nodes as _:label, literal values verbatim).
func EncodePoint(term rdf.Term) string {
	switch t := term.(type) {
	case *rdf.NamedNode:
		return fmt.Sprintf("<%s>", t.IRI)
	case *rdf.BlankNode:
		return fmt.Sprintf("_:%s", t.ID)
	case *rdf.Literal:
		return t.Value
	default:
		return term.String()
	}
}

// EncodeObject serializes a term for the object position. Literal shapes are
// dispatched in a fixed precedence order: structured temporal values first,
// then typed literals (both spellings of xsd:string normalize to the
// absolute one), then language-tagged, then plain. A term matching no
// recognized shape fails with ErrEncoding; use EncodeObjectOpaque for the
// deliberate raw passthrough.
func EncodeObject(term rdf.Term) (string, error) {
	switch t := term.(type) {
	case *rdf.NamedNode:
		return fmt.Sprintf("<%s>", t.IRI), nil

	case *rdf.BlankNode:
		return fmt.Sprintf("_:%s", t.ID), nil

	case *rdf.TimeLiteral:
		return fmt.Sprintf(`"%s"^^<%s>`, t.Lexical(), t.Datatype.IRI), nil

	case *rdf.DateLiteral:
		return fmt.Sprintf(`"%s"^^<%s>`, t.Lexical(), t.Datatype.IRI), nil

	case *rdf.DateTimeLiteral:
		return fmt.Sprintf(`"%s"^^<%s>`, t.Lexical(), t.Datatype.IRI), nil

	case *rdf.Literal:
		escaped := escapeString(t.Value)
		if t.Datatype != nil {
			if rdf.IsXSDString(t.Datatype) {
				// Both spellings denote xsd:string; output always uses
				// the absolute one
				return fmt.Sprintf(`"%s"^^<%s>`, escaped, rdf.XSDString.IRI), nil
			}
			return fmt.Sprintf(`"%s"^^<%s>`, escaped, t.Datatype.IRI), nil
		}
		if t.Language != "" {
			return fmt.Sprintf(`"%s"@%s`, escaped, t.Language), nil
		}
		return fmt.Sprintf(`"%s"`, escaped), nil

	default:
		return "", fmt.Errorf("%w: %T", ErrEncoding, term)
	}
}

// EncodeObjectOpaque is EncodeObject with the unrecognized-shape failure
// replaced by raw point rendering. Callers opt into this explicitly; the
// default write path reports ErrEncoding instead.
func EncodeObjectOpaque(term rdf.Term) string {
	encoded, err := EncodeObject(term)
	if err != nil {
		return EncodePoint(term)
	}
	return encoded
}

// EncodeTriple serializes a full statement as a single contiguous string:
// subject, predicate and object separated by single spaces, terminated by
// " .\n". The line is built whole so the write path can append it in one
// call.
func EncodeTriple(subject, predicate, object rdf.Term) (string, error) {
	encodedObject, err := EncodeObject(object)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(EncodePoint(subject))
	builder.WriteString(" ")
	builder.WriteString(EncodePoint(predicate))
	builder.WriteString(" ")
	builder.WriteString(encodedObject)
	builder.WriteString(" .\n")
	return builder.String(), nil
}

// encodeTripleOpaque is EncodeTriple with opaque object fallback
func encodeTripleOpaque(subject, predicate, object rdf.Term) string {
	var builder strings.Builder
	builder.WriteString(EncodePoint(subject))
	builder.WriteString(" ")
	builder.WriteString(EncodePoint(predicate))
	builder.WriteString(" ")
	builder.WriteString(EncodeObjectOpaque(object))
	builder.WriteString(" .\n")
	return builder.String()
}

// escapeString escapes a string value for double-quoted literal output:
// named escapes for \t \b \n \r \f \" \\ and \uXXXX for remaining control
// characters
func escapeString(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\t':
			builder.WriteString(`\t`)
		case '\b':
			builder.WriteString(`\b`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\f':
			builder.WriteString(`\f`)
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		default:
			if r < 0x20 || r == 0x7F {
				builder.WriteString(fmt.Sprintf(`\u%04X`, r))
			} else {
				builder.WriteRune(r)
			}
		}
	}

	return builder.String()
}
