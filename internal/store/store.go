// Package store reads and writes whole collections of records as JSON
// files under a single data directory. There is no locking: concurrent
// writers to the same collection race read-modify-write cycles and the
// last write wins. The deployment assumes a single operator.
package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// ReadCollection returns the records in the named collection file. A
// missing file is an empty collection, not an error. Malformed content
// is also treated as empty: the error is logged and discarded, on the
// policy that an empty collection is a safe default for this site.
func ReadCollection[T any](s *Store, name string) []T {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("store: %s does not exist, returning empty collection", name)
		} else {
			log.Printf("store: reading %s: %v", name, err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("store: parsing %s: %v", name, err)
		return []T{}
	}
	return records
}

// WriteCollection replaces the named collection file with the given
// records, pretty-printed. The data directory is created if absent.
func WriteCollection[T any](s *Store, name string, records []T) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("store: creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", name, err)
	}

	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("store: writing %s: %w", name, err)
	}
	return nil
}

// ReadSingleton reads a file holding a single JSON object rather than an
// array, such as the admin credential record. Unlike ReadCollection a
// missing or malformed file is an error: callers need to tell "not
// configured" apart from "empty".
func ReadSingleton[T any](s *Store, name string) (T, error) {
	var record T

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return record, fmt.Errorf("store: reading %s: %w", name, err)
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("store: parsing %s: %w", name, err)
	}
	return record, nil
}

func WriteSingleton[T any](s *Store, name string, record T) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("store: creating data dir: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", name, err)
	}

	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("store: writing %s: %w", name, err)
	}
	return nil
}
