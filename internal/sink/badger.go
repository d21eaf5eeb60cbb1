package sink

import (
	"bytes"
	"encoding/binary"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/zeebo/xxh3"
)

const (
	// Size of the xxhash3 128-bit digest prefixed to each record
	checksumSize = 16

	// Bandwidth reserved per sequence lease
	sequenceBandwidth = 128
)

// BadgerSink appends journal records to a BadgerDB instance. Each record is
// stored under an 8-byte big-endian sequence key, its value a 128-bit
// xxhash3 digest followed by the record bytes.
type BadgerSink struct {
	db  *badger.DB
	seq *badger.Sequence
}

// NewBadgerSink opens (creating if needed) a BadgerDB-backed journal at path
func NewBadgerSink(path string) (*BadgerSink, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	seq, err := db.GetSequence([]byte("journal_seq"), sequenceBandwidth)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to obtain journal sequence: %w", err)
	}

	return &BadgerSink{db: db, seq: seq}, nil
}

// Write appends p as one journal record
func (s *BadgerSink) Write(p []byte) (int, error) {
	n, err := s.seq.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to advance journal sequence: %w", err)
	}

	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)

	value := make([]byte, checksumSize+len(p))
	digest := hash128(p)
	copy(value, digest[:])
	copy(value[checksumSize:], p)

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to append journal record: %w", err)
	}
	return len(p), nil
}

// Flush forces writes to disk
func (s *BadgerSink) Flush() error {
	return s.db.Sync()
}

// Close releases the sequence lease and closes the database
func (s *BadgerSink) Close() error {
	if err := s.seq.Release(); err != nil {
		s.db.Close()
		return err
	}
	return s.db.Close()
}

// Replay returns all records in sequence order, verifying each record's
// checksum. Used to validate journal integrity.
func (s *BadgerSink) Replay() ([][]byte, error) {
	var records [][]byte

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			if len(item.Key()) != 8 {
				continue // sequence bookkeeping key
			}

			var value []byte
			err := item.Value(func(val []byte) error {
				value = append([]byte{}, val...)
				return nil
			})
			if err != nil {
				return err
			}

			if len(value) < checksumSize {
				return fmt.Errorf("journal record %x too short", item.Key())
			}
			payload := value[checksumSize:]
			digest := hash128(payload)
			if !bytes.Equal(digest[:], value[:checksumSize]) {
				return fmt.Errorf("journal record %x failed checksum", item.Key())
			}

			records = append(records, payload)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// hash128 computes a 128-bit xxhash3 digest, packed big-endian Hi then Lo
func hash128(p []byte) [16]byte {
	hash := xxh3.Hash128(p)
	var result [16]byte
	binary.BigEndian.PutUint64(result[0:8], hash.Hi)
	binary.BigEndian.PutUint64(result[8:16], hash.Lo)
	return result
}
