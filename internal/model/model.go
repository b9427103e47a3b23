package model

// SlotEmpty - State indicating a slot that is not holding any entry
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a live entry
const SlotOccupied uint8 = 1

// Entry - Represents one key/value entry in a dictionary.
// The key is fixed when the entry is created, the value may be overwritten by Set.
type Entry[V any] struct {
	Key   uint32
	Value V
}

// Slot - Represents one optional entry slot in an open addressing or cuckoo table.
// The slot owns its entry by value, there are no externally allocated entries to
// leak or double free during eviction swaps.
type Slot[V any] struct {
	State uint8
	Entry Entry[V]
}
