// Package sink provides journal sink implementations: a buffered
// append-only file and a BadgerDB-backed record log with per-record
// checksums.
package sink

import (
	"bufio"
	"fmt"
	"os"
)

// FileSink appends journal lines to a file through a buffered writer
type FileSink struct {
	file   *os.File
	writer *bufio.Writer
}

// NewFileSink opens (creating if needed) path in append-only mode
func NewFileSink(path string) (*FileSink, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal file: %w", err)
	}

	return &FileSink{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

// Write appends p to the journal file
func (s *FileSink) Write(p []byte) (int, error) {
	return s.writer.Write(p)
}

// Flush forces buffered data through to the file
func (s *FileSink) Flush() error {
	if err := s.writer.Flush(); err != nil {
		return err
	}
	return s.file.Sync()
}

// Close flushes any buffered data and closes the file
func (s *FileSink) Close() error {
	if err := s.writer.Flush(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}
