// Package journal provides write-ahead journaling for a triple store: it
// durably appends triples to a per-graph output stream in a textual
// serialization, with byte-exact literal encoding and single-writer
// discipline per graph.
//
// A caller registers an open Sink for a (collection, graph) pair, brackets
// the writing session with Initialise and Finalise, and appends triples with
// WriteTriple in between. Each triple is encoded whole before any shared
// state is touched and appended in exactly one sink write under a per-graph
// lock, so concurrent writers on the same graph produce intact lines.
package journal

import (
	"fmt"

	"github.com/aleksaelezovic/trijournal/pkg/rdf"
)

// Journal is the journaling subsystem facade. The zero OpaqueFallback
// rejects objects with no recognized literal shape (ErrEncoding); setting
// it renders them as raw points instead.
type Journal struct {
	registry *Registry

	// OpaqueFallback, when set, renders unrecognized object shapes as raw
	// points instead of failing with ErrEncoding. Set it before writers
	// start; it is not synchronized.
	OpaqueFallback bool
}

// NewJournal creates a journaling subsystem with an empty stream registry
func NewJournal() *Journal {
	return &Journal{
		registry: NewRegistry(),
	}
}

// Registry exposes the underlying stream registry
func (j *Journal) Registry() *Registry {
	return j.registry
}

// Register binds an open sink to (collection, graph) for a writing session.
// Fails with ErrAlreadyRegistered while a previous session is still live.
func (j *Journal) Register(collection, graph string, sink Sink, format Format, extension string) error {
	return j.registry.Register(collection, graph, sink, format, extension)
}

// Initialise begins a writing session for a registered graph. The turtle
// format needs no stream prelude; placeholder formats fail with
// ErrUnimplementedFormat.
func (j *Journal) Initialise(collection, graph string) error {
	entry, err := j.registry.Lookup(collection, graph)
	if err != nil {
		return err
	}

	switch entry.format {
	case FormatTurtle:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnimplementedFormat, entry.format)
	}
}

// WriteTriple appends one triple to the graph's journal. The full line is
// encoded into a private buffer first, then appended to the sink in exactly
// one write call under the entry's lock.
func (j *Journal) WriteTriple(collection, graph string, subject, predicate, object rdf.Term) error {
	entry, err := j.registry.Lookup(collection, graph)
	if err != nil {
		return err
	}

	if entry.format != FormatTurtle {
		return fmt.Errorf("%w: %s", ErrUnimplementedFormat, entry.format)
	}

	var line string
	if j.OpaqueFallback {
		line = encodeTripleOpaque(subject, predicate, object)
	} else {
		line, err = EncodeTriple(subject, predicate, object)
		if err != nil {
			return err
		}
	}

	entry.writeMu.Lock()
	_, err = entry.sink.Write([]byte(line))
	entry.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("appending to journal for %s/%s: %w", collection, graph, err)
	}
	return nil
}

// Finalise ends the writing session for a registered graph, flushing and
// closing its sink and removing the registry entry.
func (j *Journal) Finalise(collection, graph string) error {
	entry, err := j.registry.Lookup(collection, graph)
	if err != nil {
		return err
	}

	switch entry.format {
	case FormatTurtle:
		return j.registry.Unregister(collection, graph, entry.sink, entry.format, entry.extension)
	default:
		return fmt.Errorf("%w: %s", ErrUnimplementedFormat, entry.format)
	}
}

// CloseAll tears down every live stream, best-effort; used at shutdown
func (j *Journal) CloseAll() error {
	return j.registry.CloseAll()
}
