package linear

import (
	"github.com/gostonefire/hashdict/crt"
	"github.com/gostonefire/hashdict/hashfunc"
	"github.com/gostonefire/hashdict/internal/model"
)

// Store - Linear probing dictionary over a single array of optional entry
// slots. The home index is the hash value reduced modulo the capacity, a
// collision probes forward one slot at a time with wraparound until an empty
// or matching slot is found.
//
// There is no deletion and therefore no tombstones, probe sequences are never
// broken by removed entries. Both Search and Set bound their scans by capacity
// probes, Search reports crt.NotFound and Set reports crt.TableFull when the
// bound is exhausted.
type Store[V any] struct {
	capacity int
	slots    []model.Slot[V]
	hashFn   hashfunc.HashFunction
	records  int
}

// NewStore - Returns a pointer to a new linear probing Store instance
//   - capacity is the fixed number of slots
//   - hashFn is the hash function used for the home index
func NewStore[V any](capacity int, hashFn hashfunc.HashFunction) *Store[V] {
	return &Store[V]{
		capacity: capacity,
		slots:    make([]model.Slot[V], capacity),
		hashFn:   hashFn,
	}
}

// Search - Probes forward from the key's home index for a matching entry
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type crt.NotFound if an empty slot was hit or the probe bound was exhausted
func (L *Store[V]) Search(key uint32) (value V, err error) {
	index := L.homeIndex(key)

	for probes := 0; probes < L.capacity; probes++ {
		slot := &L.slots[index]
		if slot.State == model.SlotEmpty {
			break
		}
		if slot.Entry.Key == key {
			value = slot.Entry.Value
			return
		}

		index++
		if index == L.capacity {
			index = 0
		}
	}

	err = crt.NotFound{}
	return
}

// Set - Probes forward from the key's home index until an empty slot or a slot
// already holding key is found, and writes the entry there
//   - key is the identifier of an entry
//   - value is the value to store
//
// It returns:
//   - err is of type crt.TableFull if the key is new and every slot is occupied
func (L *Store[V]) Set(key uint32, value V) (err error) {
	index := L.homeIndex(key)

	for probes := 0; probes < L.capacity; probes++ {
		slot := &L.slots[index]
		if slot.State == model.SlotEmpty {
			slot.State = model.SlotOccupied
			slot.Entry = model.Entry[V]{Key: key, Value: value}
			L.records++
			return
		}
		if slot.Entry.Key == key {
			slot.Entry.Value = value
			return
		}

		index++
		if index == L.capacity {
			index = 0
		}
	}

	err = crt.TableFull{}
	return
}

// Len - Returns the number of entries currently stored
func (L *Store[V]) Len() int {
	return L.records
}

// Capacity - Returns the number of slots given at construction
func (L *Store[V]) Capacity() int {
	return L.capacity
}

// homeIndex - Reduces the hash value of key to a slot index
func (L *Store[V]) homeIndex(key uint32) int {
	return int(L.hashFn.Hash(key) % uint32(L.capacity))
}
