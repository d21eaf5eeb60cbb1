package sink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSink_AppendAndFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.ttl")

	s, err := NewFileSink(path)
	if err != nil {
		t.Fatalf("failed to create file sink: %v", err)
	}

	line := "<http://example.org/s> <http://example.org/p> \"v\" .\n"
	if _, err := s.Write([]byte(line)); err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	if err := s.Flush(); err != nil {
		t.Fatalf("failed to flush: %v", err)
	}

	// Content must be visible after a flush, before close
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read journal: %v", err)
	}
	if string(data) != line {
		t.Errorf("expected %q, got %q", line, string(data))
	}

	if err := s.Close(); err != nil {
		t.Fatalf("failed to close: %v", err)
	}
}

func TestFileSink_AppendsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.ttl")

	for _, line := range []string{"first .\n", "second .\n"} {
		s, err := NewFileSink(path)
		if err != nil {
			t.Fatalf("failed to create file sink: %v", err)
		}
		if _, err := s.Write([]byte(line)); err != nil {
			t.Fatalf("failed to write: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("failed to close: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read journal: %v", err)
	}
	if string(data) != "first .\nsecond .\n" {
		t.Errorf("unexpected journal contents: %q", string(data))
	}
}

func TestFileSink_BadPath(t *testing.T) {
	if _, err := NewFileSink(filepath.Join(t.TempDir(), "missing", "graph.ttl")); err == nil {
		t.Error("expected error for missing directory")
	}
}
