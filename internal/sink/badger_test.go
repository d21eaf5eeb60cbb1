package sink

import (
	"fmt"
	"testing"
)

func TestBadgerSink_AppendAndReplay(t *testing.T) {
	s, err := NewBadgerSink(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create badger sink: %v", err)
	}
	defer s.Close()

	var lines []string
	for i := 0; i < 10; i++ {
		line := fmt.Sprintf("<http://example.org/s%d> <http://example.org/p> \"v%d\" .\n", i, i)
		lines = append(lines, line)
		if _, err := s.Write([]byte(line)); err != nil {
			t.Fatalf("failed to write record %d: %v", i, err)
		}
	}

	if err := s.Flush(); err != nil {
		t.Fatalf("failed to flush: %v", err)
	}

	// Records replay in sequence order with valid checksums
	records, err := s.Replay()
	if err != nil {
		t.Fatalf("failed to replay: %v", err)
	}
	if len(records) != len(lines) {
		t.Fatalf("expected %d records, got %d", len(lines), len(records))
	}
	for i, record := range records {
		if string(record) != lines[i] {
			t.Errorf("record %d: expected %q, got %q", i, lines[i], string(record))
		}
	}
}

func TestBadgerSink_ReplayAcrossSessions(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBadgerSink(dir)
	if err != nil {
		t.Fatalf("failed to create badger sink: %v", err)
	}
	if _, err := s.Write([]byte("first .\n")); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}

	s, err = NewBadgerSink(dir)
	if err != nil {
		t.Fatalf("failed to reopen badger sink: %v", err)
	}
	defer s.Close()
	if _, err := s.Write([]byte("second .\n")); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	records, err := s.Replay()
	if err != nil {
		t.Fatalf("failed to replay: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if string(records[0]) != "first .\n" || string(records[1]) != "second .\n" {
		t.Errorf("records out of order: %q, %q", records[0], records[1])
	}
}
