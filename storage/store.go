// storage/store.go
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrNotFound is returned when an operation references a record id that is
// not present in the collection.
var ErrNotFound = errors.New("record not found")

// PersistenceError wraps lock acquisition and I/O failures. Callers treat it
// as an internal error; it never means "the record does not exist".
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Record is implemented by every persisted entity type. WithRecordID returns
// a copy with the id set, keeping the stored types plain value structs.
type Record[T any] interface {
	RecordID() int
	WithRecordID(id int) T
}

// Store persists one entity collection as a single JSON document. Writers
// take an exclusive advisory lock on the document, readers a shared one, so
// concurrent processes see whole-document read-modify-write atomicity. The
// lock is coarse on purpose: collections stay in the low thousands and
// mutations are human-driven.
type Store[T Record[T]] struct {
	path     string
	lockPath string
}

func NewStore[T Record[T]](path string) *Store[T] {
	return &Store[T]{path: path, lockPath: path + ".lock"}
}

// List returns the full collection. A missing or malformed backing file is an
// empty collection, never an error.
func (s *Store[T]) List() ([]T, error) {
	fl := flock.New(s.lockPath)
	if err := fl.RLock(); err != nil {
		return nil, &PersistenceError{Op: "rlock", Path: s.path, Err: err}
	}
	defer fl.Unlock()

	return s.read()
}

// Insert appends rec with id = max(existing ids) + 1 and persists the
// collection. Ids are never reused after deletion.
func (s *Store[T]) Insert(rec T) (T, error) {
	var zero T

	fl := flock.New(s.lockPath)
	if err := fl.Lock(); err != nil {
		return zero, &PersistenceError{Op: "lock", Path: s.path, Err: err}
	}
	defer fl.Unlock()

	records, err := s.read()
	if err != nil {
		return zero, err
	}

	next := 1
	for _, r := range records {
		if r.RecordID() >= next {
			next = r.RecordID() + 1
		}
	}

	rec = rec.WithRecordID(next)
	records = append(records, rec)

	if err := s.write(records); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update applies mutate to the record with the given id and persists the
// collection. The mutator decides merge semantics (full replacement or
// partial), but must not change the id.
func (s *Store[T]) Update(id int, mutate func(T) T) (T, error) {
	var zero T

	fl := flock.New(s.lockPath)
	if err := fl.Lock(); err != nil {
		return zero, &PersistenceError{Op: "lock", Path: s.path, Err: err}
	}
	defer fl.Unlock()

	records, err := s.read()
	if err != nil {
		return zero, err
	}

	for i, r := range records {
		if r.RecordID() != id {
			continue
		}
		updated := mutate(r).WithRecordID(id)
		records[i] = updated
		if err := s.write(records); err != nil {
			return zero, err
		}
		return updated, nil
	}
	return zero, ErrNotFound
}

// Remove deletes the record with the given id, preserving insertion order of
// the rest. Removing an unknown id fails with ErrNotFound and leaves the
// collection untouched.
func (s *Store[T]) Remove(id int) error {
	fl := flock.New(s.lockPath)
	if err := fl.Lock(); err != nil {
		return &PersistenceError{Op: "lock", Path: s.path, Err: err}
	}
	defer fl.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}
	return s.write(kept)
}

func (s *Store[T]) read() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "read", Path: s.path, Err: err}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("[STORE] %s is malformed, treating as empty: %v", s.path, err)
		return []T{}, nil
	}
	return records, nil
}

// write persists via temp file + rename so readers never observe a
// half-written document.
func (s *Store[T]) write(records []T) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return &PersistenceError{Op: "encode", Path: s.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &PersistenceError{Op: "mkdir", Path: s.path, Err: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return &PersistenceError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return &PersistenceError{Op: "rename", Path: s.path, Err: err}
	}
	return nil
}
