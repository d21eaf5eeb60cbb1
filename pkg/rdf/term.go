package rdf

import (
	"fmt"
	"time"
)

// TermType represents the type of an RDF term
type TermType byte

const (
	// Core RDF types
	TermTypeNamedNode TermType = iota + 1
	TermTypeBlankNode
	TermTypeLiteral

	// Structured literal subtypes
	TermTypeTimeLiteral
	TermTypeDateLiteral
	TermTypeDateTimeLiteral
)

// Term represents an RDF term (IRI, blank node, or literal)
type Term interface {
	Type() TermType
	String() string
	Equals(other Term) bool
}

// NamedNode represents an IRI
type NamedNode struct {
	IRI string
}

func NewNamedNode(iri string) *NamedNode {
	return &NamedNode{IRI: iri}
}

func (n *NamedNode) Type() TermType {
	return TermTypeNamedNode
}

func (n *NamedNode) String() string {
	return fmt.Sprintf("<%s>", n.IRI)
}

func (n *NamedNode) Equals(other Term) bool {
	if on, ok := other.(*NamedNode); ok {
		return n.IRI == on.IRI
	}
	return false
}

// BlankNode represents a blank node
type BlankNode struct {
	ID string
}

func NewBlankNode(id string) *BlankNode {
	return &BlankNode{ID: id}
}

func (b *BlankNode) Type() TermType {
	return TermTypeBlankNode
}

func (b *BlankNode) String() string {
	return fmt.Sprintf("_:%s", b.ID)
}

func (b *BlankNode) Equals(other Term) bool {
	if ob, ok := other.(*BlankNode); ok {
		return b.ID == ob.ID
	}
	return false
}

// Literal represents an RDF literal carrying its value as text
type Literal struct {
	Value    string
	Language string     // for language-tagged strings
	Datatype *NamedNode // for typed literals
}

func NewLiteral(value string) *Literal {
	return &Literal{Value: value}
}

func NewLiteralWithLanguage(value, language string) *Literal {
	return &Literal{Value: value, Language: language}
}

func NewLiteralWithDatatype(value string, datatype *NamedNode) *Literal {
	return &Literal{Value: value, Datatype: datatype}
}

func (l *Literal) Type() TermType {
	return TermTypeLiteral
}

func (l *Literal) String() string {
	result := fmt.Sprintf(`"%s"`, l.Value)
	if l.Language != "" {
		result += "@" + l.Language
	} else if l.Datatype != nil {
		result += "^^" + l.Datatype.String()
	}
	return result
}

func (l *Literal) Equals(other Term) bool {
	if ol, ok := other.(*Literal); ok {
		if l.Value != ol.Value {
			return false
		}
		if l.Language != ol.Language {
			return false
		}
		if l.Datatype == nil && ol.Datatype == nil {
			return true
		}
		if l.Datatype != nil && ol.Datatype != nil {
			return l.Datatype.Equals(ol.Datatype)
		}
		return false
	}
	return false
}

// TimeLiteral represents a time-of-day value with second precision.
// Rendered as "HH:MM:SS" in 24-hour form, zero-padded, without fractional
// seconds or a timezone.
type TimeLiteral struct {
	Hour, Minute, Second int
	Datatype             *NamedNode
}

func NewTimeLiteral(hour, minute, second int) *TimeLiteral {
	return &TimeLiteral{Hour: hour, Minute: minute, Second: second, Datatype: XSDTime}
}

func (l *TimeLiteral) Type() TermType {
	return TermTypeTimeLiteral
}

// Lexical returns the bare lexical form without quotes or datatype suffix
func (l *TimeLiteral) Lexical() string {
	return fmt.Sprintf("%02d:%02d:%02d", l.Hour, l.Minute, l.Second)
}

func (l *TimeLiteral) String() string {
	return fmt.Sprintf(`"%s"^^%s`, l.Lexical(), l.Datatype)
}

func (l *TimeLiteral) Equals(other Term) bool {
	if ol, ok := other.(*TimeLiteral); ok {
		return l.Hour == ol.Hour && l.Minute == ol.Minute && l.Second == ol.Second &&
			l.Datatype.Equals(ol.Datatype)
	}
	return false
}

// DateLiteral represents a calendar date, rendered as "YYYY-MM-DD"
type DateLiteral struct {
	Year, Month, Day int
	Datatype         *NamedNode
}

func NewDateLiteral(year, month, day int) *DateLiteral {
	return &DateLiteral{Year: year, Month: month, Day: day, Datatype: XSDDate}
}

func (l *DateLiteral) Type() TermType {
	return TermTypeDateLiteral
}

// Lexical returns the bare lexical form without quotes or datatype suffix
func (l *DateLiteral) Lexical() string {
	return fmt.Sprintf("%04d-%02d-%02d", l.Year, l.Month, l.Day)
}

func (l *DateLiteral) String() string {
	return fmt.Sprintf(`"%s"^^%s`, l.Lexical(), l.Datatype)
}

func (l *DateLiteral) Equals(other Term) bool {
	if ol, ok := other.(*DateLiteral); ok {
		return l.Year == ol.Year && l.Month == ol.Month && l.Day == ol.Day &&
			l.Datatype.Equals(ol.Datatype)
	}
	return false
}

// DateTimeLiteral represents a date-time value with second precision.
// Rendered as "YYYY-MM-DDTHH:MM:SS±HH:MM". When HasOffset is false the
// offset renders as +00:00 regardless of how the value was obtained.
type DateTimeLiteral struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	OffsetSeconds        int
	HasOffset            bool
	Datatype             *NamedNode
}

func NewDateTimeLiteral(year, month, day, hour, minute, second int) *DateTimeLiteral {
	return &DateTimeLiteral{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		Datatype: XSDDateTime,
	}
}

func NewDateTimeLiteralWithOffset(year, month, day, hour, minute, second, offsetSeconds int) *DateTimeLiteral {
	lit := NewDateTimeLiteral(year, month, day, hour, minute, second)
	lit.OffsetSeconds = offsetSeconds
	lit.HasOffset = true
	return lit
}

// NewDateTimeLiteralFromTime builds a DateTimeLiteral from the wall-clock
// fields of t. The zone offset of t is discarded and the literal renders
// with a forced +00:00 offset.
func NewDateTimeLiteralFromTime(t time.Time) *DateTimeLiteral {
	return NewDateTimeLiteral(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

func (l *DateTimeLiteral) Type() TermType {
	return TermTypeDateTimeLiteral
}

// Lexical returns the bare lexical form without quotes or datatype suffix
func (l *DateTimeLiteral) Lexical() string {
	offset := "+00:00"
	if l.HasOffset {
		sign := "+"
		secs := l.OffsetSeconds
		if secs < 0 {
			sign = "-"
			secs = -secs
		}
		offset = fmt.Sprintf("%s%02d:%02d", sign, secs/3600, (secs%3600)/60)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		l.Year, l.Month, l.Day, l.Hour, l.Minute, l.Second, offset)
}

func (l *DateTimeLiteral) String() string {
	return fmt.Sprintf(`"%s"^^%s`, l.Lexical(), l.Datatype)
}

func (l *DateTimeLiteral) Equals(other Term) bool {
	if ol, ok := other.(*DateTimeLiteral); ok {
		return l.Year == ol.Year && l.Month == ol.Month && l.Day == ol.Day &&
			l.Hour == ol.Hour && l.Minute == ol.Minute && l.Second == ol.Second &&
			l.OffsetSeconds == ol.OffsetSeconds && l.HasOffset == ol.HasOffset &&
			l.Datatype.Equals(ol.Datatype)
	}
	return false
}

// Triple represents an RDF triple (subject, predicate, object)
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

func NewTriple(subject, predicate, object Term) *Triple {
	return &Triple{
		Subject:   subject,
		Predicate: predicate,
		Object:    object,
	}
}

func (t *Triple) String() string {
	return fmt.Sprintf("%s %s %s .", t.Subject, t.Predicate, t.Object)
}

// Helper functions for common XSD datatypes
var (
	XSDString   = NewNamedNode("http://www.w3.org/2001/XMLSchema#string")
	XSDInteger  = NewNamedNode("http://www.w3.org/2001/XMLSchema#integer")
	XSDDecimal  = NewNamedNode("http://www.w3.org/2001/XMLSchema#decimal")
	XSDDouble   = NewNamedNode("http://www.w3.org/2001/XMLSchema#double")
	XSDBoolean  = NewNamedNode("http://www.w3.org/2001/XMLSchema#boolean")
	XSDDateTime = NewNamedNode("http://www.w3.org/2001/XMLSchema#dateTime")
	XSDDate     = NewNamedNode("http://www.w3.org/2001/XMLSchema#date")
	XSDTime     = NewNamedNode("http://www.w3.org/2001/XMLSchema#time")
	XSDDuration = NewNamedNode("http://www.w3.org/2001/XMLSchema#duration")

	// XSDStringAbbrev is the compact spelling some producers emit for
	// xsd:string. It denotes the same datatype as XSDString; output always
	// uses the absolute spelling.
	XSDStringAbbrev = NewNamedNode("xsd:string")
)

// IsXSDString reports whether datatype denotes xsd:string under either of
// its recognized spellings
func IsXSDString(datatype *NamedNode) bool {
	if datatype == nil {
		return false
	}
	return datatype.IRI == XSDString.IRI || datatype.IRI == XSDStringAbbrev.IRI
}

func NewIntegerLiteral(value int64) *Literal {
	return NewLiteralWithDatatype(fmt.Sprintf("%d", value), XSDInteger)
}

func NewDoubleLiteral(value float64) *Literal {
	return NewLiteralWithDatatype(fmt.Sprintf("%g", value), XSDDouble)
}

func NewBooleanLiteral(value bool) *Literal {
	return NewLiteralWithDatatype(fmt.Sprintf("%t", value), XSDBoolean)
}
