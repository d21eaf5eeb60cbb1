package rdf

import (
	"fmt"
	"strconv"
)

// NTriplesParser is a strict N-Triples parser.
// N-Triples format: <subject> <predicate> <object> .
// One statement per line; no prefix directives, no relative IRIs.
type NTriplesParser struct {
	input  string
	pos    int
	length int
}

// NewNTriplesParser creates a new N-Triples parser
func NewNTriplesParser(input string) *NTriplesParser {
	return &NTriplesParser{
		input:  input,
		pos:    0,
		length: len(input),
	}
}

// Parse parses the N-Triples document and returns triples
func (p *NTriplesParser) Parse() ([]*Triple, error) {
	var triples []*Triple

	for p.pos < p.length {
		p.skipWhitespaceAndComments()
		if p.pos >= p.length {
			break
		}

		triple, err := p.parseTriple()
		if err != nil {
			return nil, err
		}
		triples = append(triples, triple)
	}

	return triples, nil
}

// skipWhitespaceAndComments skips whitespace and comments
func (p *NTriplesParser) skipWhitespaceAndComments() {
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			p.pos++
			continue
		}
		if ch == '#' {
			// Skip comment until end of line
			for p.pos < p.length && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		break
	}
}

// parseTriple parses a statement: subject predicate object .
func (p *NTriplesParser) parseTriple() (*Triple, error) {
	subject, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("error parsing subject: %w", err)
	}
	if _, ok := subject.(*Literal); ok {
		return nil, fmt.Errorf("literals cannot be used as subjects in N-Triples")
	}

	p.skipWhitespaceAndComments()

	predicate, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("error parsing predicate: %w", err)
	}
	if _, ok := predicate.(*NamedNode); !ok {
		return nil, fmt.Errorf("predicate must be an IRI, got %T", predicate)
	}

	p.skipWhitespaceAndComments()

	object, err := p.parseTerm()
	if err != nil {
		return nil, fmt.Errorf("error parsing object: %w", err)
	}

	p.skipWhitespaceAndComments()

	// Expect '.' at end
	if p.pos >= p.length || p.input[p.pos] != '.' {
		return nil, fmt.Errorf("expected '.' at end of triple")
	}
	p.pos++ // skip '.'

	return NewTriple(subject, predicate, object), nil
}

// parseTerm parses an RDF term (IRI, blank node, or literal)
func (p *NTriplesParser) parseTerm() (Term, error) {
	ch := p.input[p.pos]

	switch ch {
	case '<':
		iri, err := p.parseIRI()
		if err != nil {
			return nil, err
		}
		return NewNamedNode(iri), nil

	case '_':
		return p.parseBlankNode()

	case '"':
		return p.parseLiteral()

	default:
		return nil, fmt.Errorf("unexpected character at position %d: %c", p.pos, ch)
	}
}

// parseIRI parses an IRI enclosed in < >
func (p *NTriplesParser) parseIRI() (string, error) {
	if p.pos >= p.length || p.input[p.pos] != '<' {
		return "", fmt.Errorf("expected '<' at start of IRI")
	}
	p.pos++ // skip '<'

	start := p.pos
	for p.pos < p.length && p.input[p.pos] != '>' {
		ch := p.input[p.pos]

		// N-Triples IRI validation: no whitespace, quotes, braces,
		// pipes, carets, backticks, or control characters
		if ch == ' ' || ch == '<' || ch == '"' || ch == '{' || ch == '}' ||
			ch == '|' || ch == '^' || ch == '`' || ch <= 0x1F {
			return "", fmt.Errorf("invalid character in IRI: %q at position %d", ch, p.pos)
		}

		p.pos++
	}

	if p.pos >= p.length {
		return "", fmt.Errorf("unclosed IRI")
	}

	iri := p.input[start:p.pos]
	p.pos++ // skip '>'

	return iri, nil
}

// parseBlankNode parses a blank node label
func (p *NTriplesParser) parseBlankNode() (Term, error) {
	if p.pos+1 >= p.length || p.input[p.pos] != '_' || p.input[p.pos+1] != ':' {
		return nil, fmt.Errorf("expected '_:' at start of blank node")
	}
	p.pos += 2 // skip '_:'

	start := p.pos
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '.' || ch == '<' {
			break
		}
		p.pos++
	}

	if p.pos == start {
		return nil, fmt.Errorf("empty blank node label")
	}

	return NewBlankNode(p.input[start:p.pos]), nil
}

// parseLiteral parses a literal value with optional language tag or datatype
func (p *NTriplesParser) parseLiteral() (Term, error) {
	value, err := p.parseQuotedString()
	if err != nil {
		return nil, err
	}

	// Check for language tag or datatype
	if p.pos < p.length {
		if p.input[p.pos] == '@' {
			p.pos++ // skip '@'
			start := p.pos
			if p.pos >= p.length {
				return nil, fmt.Errorf("empty language tag")
			}
			// Language tags must start with a letter (BCP 47)
			firstChar := p.input[p.pos]
			if !((firstChar >= 'a' && firstChar <= 'z') || (firstChar >= 'A' && firstChar <= 'Z')) {
				return nil, fmt.Errorf("invalid language tag: must start with a letter, got %q", firstChar)
			}
			for p.pos < p.length {
				ch := p.input[p.pos]
				if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '.' || ch == '<' {
					break
				}
				p.pos++
			}
			return NewLiteralWithLanguage(value, p.input[start:p.pos]), nil
		}
		if p.input[p.pos] == '^' && p.pos+1 < p.length && p.input[p.pos+1] == '^' {
			p.pos += 2 // skip '^^'
			datatypeIRI, err := p.parseIRI()
			if err != nil {
				return nil, fmt.Errorf("error parsing datatype: %w", err)
			}
			return NewLiteralWithDatatype(value, NewNamedNode(datatypeIRI)), nil
		}
	}

	// Plain literal
	return NewLiteral(value), nil
}

// parseQuotedString parses a double-quoted string with escape sequences
func (p *NTriplesParser) parseQuotedString() (string, error) {
	if p.pos >= p.length || p.input[p.pos] != '"' {
		return "", fmt.Errorf("expected '\"' at start of literal")
	}
	p.pos++ // skip opening '"'

	var value []byte
	for p.pos < p.length {
		ch := p.input[p.pos]
		if ch == '"' {
			p.pos++ // skip closing '"'
			return string(value), nil
		}
		if ch == '\\' {
			p.pos++
			if p.pos >= p.length {
				return "", fmt.Errorf("unexpected end of input in escape sequence")
			}
			escCh := p.input[p.pos]
			switch escCh {
			case 'n':
				value = append(value, '\n')
			case 't':
				value = append(value, '\t')
			case 'r':
				value = append(value, '\r')
			case 'b':
				value = append(value, '\b')
			case 'f':
				value = append(value, '\f')
			case '"':
				value = append(value, '"')
			case '\\':
				value = append(value, '\\')
			case 'u', 'U':
				r, err := p.parseUnicodeEscape(escCh)
				if err != nil {
					return "", err
				}
				value = append(value, string(r)...)
				continue
			default:
				return "", fmt.Errorf("invalid escape sequence \\%c at position %d", escCh, p.pos)
			}
			p.pos++
		} else {
			value = append(value, ch)
			p.pos++
		}
	}

	return "", fmt.Errorf("unclosed string literal")
}

// parseUnicodeEscape parses the hex digits of a \uXXXX or \UXXXXXXXX
// escape. The position is on the 'u'/'U' when called.
func (p *NTriplesParser) parseUnicodeEscape(escapeType byte) (rune, error) {
	p.pos++ // skip 'u' or 'U'

	hexDigits := 4
	if escapeType == 'U' {
		hexDigits = 8
	}

	if p.pos+hexDigits > p.length {
		return 0, fmt.Errorf("incomplete Unicode escape sequence")
	}

	hexStr := p.input[p.pos : p.pos+hexDigits]
	p.pos += hexDigits

	codePoint, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex digits in Unicode escape: %s", hexStr)
	}

	return rune(codePoint), nil
}
