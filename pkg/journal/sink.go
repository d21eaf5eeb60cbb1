package journal

// Sink is the destination a graph's journal is appended to. It is handed to
// Register already open and is exclusively owned by its registry entry from
// that point on; the registry releases it exactly once, flushing before
// closing.
//
// Write must either append the whole buffer or fail without partial effect.
// The journal additionally serializes Write calls per entry, so
// implementations are never invoked concurrently through the same entry.
type Sink interface {
	// Write appends p to the journal
	Write(p []byte) (n int, err error)

	// Flush forces buffered data to the underlying destination
	Flush() error

	// Close releases the destination
	Close() error
}
