package journal

import "fmt"

// Format identifies the serialization family of a graph's journal
type Format byte

const (
	// FormatTurtle is the functional text serialization: one triple per
	// line, turtle-like, terminated by " .\n"
	FormatTurtle Format = iota + 1

	// FormatNTriples is a recognized placeholder; operations against it
	// fail with ErrUnimplementedFormat
	FormatNTriples

	// FormatBinary is a recognized placeholder; operations against it
	// fail with ErrUnimplementedFormat
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatTurtle:
		return "turtle"
	case FormatNTriples:
		return "ntriples"
	case FormatBinary:
		return "binary"
	default:
		return fmt.Sprintf("unknown(%d)", byte(f))
	}
}

// FormatInfo provides metadata about a journal format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Implemented reports whether the format has a functional encoder.
	Implemented bool
}

// FormatRegistry contains metadata for all recognized formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Implemented: true,
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Implemented: false,
	},
	FormatBinary: {
		Name:        FormatBinary,
		MIMEType:    "application/octet-stream",
		Extension:   ".bin",
		Implemented: false,
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}
