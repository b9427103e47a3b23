package naive

import (
	"github.com/gostonefire/hashdict/crt"
	"github.com/gostonefire/hashdict/internal/model"
)

// Store - Naive dictionary backed by an append only unsorted slice of entries.
// Both Search and Set are linear scans over the whole slice, which makes it the
// correctness baseline and the worst case performance reference.
//
// The capacity given at construction is deliberately not enforced, the store
// keeps accepting entries beyond it and stays unbounded as the baseline
// behavior.
type Store[V any] struct {
	capacity int
	entries  []model.Entry[V]
}

// NewStore - Returns a pointer to a new naive Store instance
//   - capacity is recorded for reporting purposes only, it does not bound the store
func NewStore[V any](capacity int) *Store[V] {
	return &Store[V]{
		capacity: capacity,
		entries:  make([]model.Entry[V], 0, capacity),
	}
}

// Search - Scans for the entry matching key
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type crt.NotFound if no entry matched the key
func (N *Store[V]) Search(key uint32) (value V, err error) {
	for i := range N.entries {
		if N.entries[i].Key == key {
			value = N.entries[i].Value
			return
		}
	}

	err = crt.NotFound{}
	return
}

// Set - Overwrites the value of an existing entry with matching key, or appends a new entry
//   - key is the identifier of an entry
//   - value is the value to store
//
// It returns:
//   - err is always nil, the naive store never fails
func (N *Store[V]) Set(key uint32, value V) (err error) {
	for i := range N.entries {
		if N.entries[i].Key == key {
			N.entries[i].Value = value
			return
		}
	}

	N.entries = append(N.entries, model.Entry[V]{Key: key, Value: value})
	return
}

// Len - Returns the number of entries currently stored
func (N *Store[V]) Len() int {
	return len(N.entries)
}

// Capacity - Returns the capacity given at construction
func (N *Store[V]) Capacity() int {
	return N.capacity
}
