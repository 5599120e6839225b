// Package store provides the row-keyed value store backing a dictionary
// dataset. All rows share the column index space assigned by the header
// registry; a cell holds a string or, for token columns, a token sequence.
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when writing beyond a row's current width.
	ErrIndexOutOfRange = errors.New("column index out of range")
	// ErrUnknownKey is returned when addressing a row key that is not present.
	ErrUnknownKey = errors.New("unknown row key")
)

// Store maps row keys to ordered value sequences. Iteration order over rows
// is the insertion order of their keys and is stable for the lifetime of the
// store instance.
type Store struct {
	rows map[int][]any
	keys []int
}

// New creates an empty store.
func New() *Store {
	return &Store{rows: make(map[int][]any)}
}

// Put inserts or replaces the row identified by key.
func (s *Store) Put(key int, values []any) {
	if _, exists := s.rows[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.rows[key] = values
}

// Append appends value to the end of the row identified by key, creating the
// row if it does not exist yet. Callers must append to every row before any
// other row observes a different column count; the store does not enforce
// width consistency itself.
func (s *Store) Append(key int, value any) {
	if _, exists := s.rows[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.rows[key] = append(s.rows[key], value)
}

// Set overwrites the value at index in the row identified by key.
func (s *Store) Set(key, index int, value any) error {
	row, exists := s.rows[key]
	if !exists {
		return fmt.Errorf("%w: %d", ErrUnknownKey, key)
	}
	if index < 0 || index >= len(row) {
		return fmt.Errorf("%w: index %d, row %d has %d values", ErrIndexOutOfRange, index, key, len(row))
	}
	row[index] = value
	return nil
}

// Row returns the value sequence for key.
func (s *Store) Row(key int) ([]any, bool) {
	row, ok := s.rows[key]
	return row, ok
}

// Keys returns all row keys in insertion order.
func (s *Store) Keys() []int {
	return append([]int(nil), s.keys...)
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.rows)
}
