package journal

import (
	"fmt"
	"sync"
)

// streamKey identifies a graph's journal within a collection
type streamKey struct {
	collection string
	graph      string
}

// StreamEntry holds the live output state for one graph. The entry
// exclusively owns its sink; writeMu serializes appends so concurrent
// writers on the same graph cannot interleave partial lines.
type StreamEntry struct {
	sink      Sink
	format    Format
	extension string

	writeMu sync.Mutex
}

// Sink returns the entry's destination
func (e *StreamEntry) Sink() Sink {
	return e.sink
}

// Format returns the entry's declared format kind
func (e *StreamEntry) Format() Format {
	return e.format
}

// Extension returns the entry's declared format extension
func (e *StreamEntry) Extension() string {
	return e.extension
}

// Registry maps (collection, graph) keys to their active journal streams.
// At most one live entry exists per key; registering over a live entry is
// an error, never a silent replace.
type Registry struct {
	mu      sync.Mutex
	streams map[streamKey]*StreamEntry
}

// NewRegistry creates an empty stream registry
func NewRegistry() *Registry {
	return &Registry{
		streams: make(map[streamKey]*StreamEntry),
	}
}

// Register inserts a new entry for (collection, graph). The check and the
// insert happen under one lock, so concurrent registrations for the same
// key cannot both succeed.
func (r *Registry) Register(collection, graph string, sink Sink, format Format, extension string) error {
	key := streamKey{collection: collection, graph: graph}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.streams[key]; exists {
		return fmt.Errorf("%w: %s/%s", ErrAlreadyRegistered, collection, graph)
	}

	r.streams[key] = &StreamEntry{
		sink:      sink,
		format:    format,
		extension: extension,
	}
	return nil
}

// Lookup returns the live entry for (collection, graph)
func (r *Registry) Lookup(collection, graph string) (*StreamEntry, error) {
	key := streamKey{collection: collection, graph: graph}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.streams[key]
	if !exists {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotRegistered, collection, graph)
	}
	return entry, nil
}

// Unregister removes every entry matching exactly this tuple, flushing and
// closing its sink. A no-op when nothing matches.
func (r *Registry) Unregister(collection, graph string, sink Sink, format Format, extension string) error {
	key := streamKey{collection: collection, graph: graph}

	r.mu.Lock()
	entry, exists := r.streams[key]
	if exists && entry.sink == sink && entry.format == format && entry.extension == extension {
		delete(r.streams, key)
	} else {
		entry = nil
	}
	r.mu.Unlock()

	if entry == nil {
		return nil
	}
	return releaseSink(entry.sink)
}

// CloseAll unregisters every live entry, best-effort. The first release
// failure is reported after all entries have been torn down.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	entries := make([]*StreamEntry, 0, len(r.streams))
	for key, entry := range r.streams {
		entries = append(entries, entry)
		delete(r.streams, key)
	}
	r.mu.Unlock()

	var firstErr error
	for _, entry := range entries {
		if err := releaseSink(entry.sink); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Len returns the number of live entries
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.streams)
}

// releaseSink performs the single scoped teardown of a sink: flush, then
// close, even when the flush fails
func releaseSink(sink Sink) error {
	flushErr := sink.Flush()
	closeErr := sink.Close()
	if flushErr != nil {
		return fmt.Errorf("flushing journal sink: %w", flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing journal sink: %w", closeErr)
	}
	return nil
}
