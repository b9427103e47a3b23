package chained

import (
	"github.com/gostonefire/hashdict/crt"
	"github.com/gostonefire/hashdict/hashfunc"
	"github.com/gostonefire/hashdict/internal/model"
)

// Store - Separate chaining dictionary with a fixed number of buckets, each an
// independent ordered list of entries. The bucket is selected by reducing the
// hash value modulo the capacity, Search and Set then scan only that bucket.
//
// There is no resizing, bucket lists grow without bound, so the store degrades
// gracefully instead of failing as load increases.
type Store[V any] struct {
	capacity int
	buckets  [][]model.Entry[V]
	hashFn   hashfunc.HashFunction
	records  int
}

// NewStore - Returns a pointer to a new chained Store instance
//   - capacity is the fixed number of buckets
//   - hashFn is the hash function used for bucket selection
func NewStore[V any](capacity int, hashFn hashfunc.HashFunction) *Store[V] {
	return &Store[V]{
		capacity: capacity,
		buckets:  make([][]model.Entry[V], capacity),
		hashFn:   hashFn,
	}
}

// Search - Scans the bucket selected by the key's hash for a matching entry
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type crt.NotFound if no entry matched the key
func (C *Store[V]) Search(key uint32) (value V, err error) {
	bucket := C.buckets[C.bucketNo(key)]
	for i := range bucket {
		if bucket[i].Key == key {
			value = bucket[i].Value
			return
		}
	}

	err = crt.NotFound{}
	return
}

// Set - Overwrites the value of an existing entry in the selected bucket, or appends a new entry to it
//   - key is the identifier of an entry
//   - value is the value to store
//
// It returns:
//   - err is always nil, bucket lists grow without bound
func (C *Store[V]) Set(key uint32, value V) (err error) {
	bucketNo := C.bucketNo(key)
	bucket := C.buckets[bucketNo]
	for i := range bucket {
		if bucket[i].Key == key {
			bucket[i].Value = value
			return
		}
	}

	C.buckets[bucketNo] = append(bucket, model.Entry[V]{Key: key, Value: value})
	C.records++
	return
}

// Len - Returns the number of entries currently stored
func (C *Store[V]) Len() int {
	return C.records
}

// Capacity - Returns the number of buckets given at construction
func (C *Store[V]) Capacity() int {
	return C.capacity
}

// bucketNo - Reduces the hash value of key to a bucket number
func (C *Store[V]) bucketNo(key uint32) int {
	return int(C.hashFn.Hash(key) % uint32(C.capacity))
}
