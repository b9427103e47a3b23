package cuckoo

import (
	"math"
	"math/rand"

	"github.com/gostonefire/hashdict/crt"
	"github.com/gostonefire/hashdict/hashfunc"
	"github.com/gostonefire/hashdict/internal/hash"
	"github.com/gostonefire/hashdict/internal/model"
)

// rebuildConstant - Multiplier of ln(capacity) forming the eviction threshold
// that triggers a full rebuild
const rebuildConstant = 5

// maxRebuilds - Upper bound on consecutive rebuild attempts while placing one
// entry, exceeding it surfaces crt.RebuildFailed instead of looping
const maxRebuilds = 8

// Store - Cuckoo hashing dictionary over two parallel arrays of optional entry
// slots, each with its own independently seeded tabulation hash function.
// Every key has exactly one slot per table, an insert into an occupied slot
// evicts the occupant which cascades into its slot in the other table.
//
// Evictions are counted across calls in lc. When the accumulated count reaches
// rebuildConstant*ln(capacity) the next placement performs a full rebuild:
// fresh hash functions are drawn, and every live entry plus the incoming one
// is placed into fresh tables. The rebuild breaks eviction cycles caused by
// unlucky hash functions at the cost of a one time latency spike visible only
// to the caller's clock.
//
// Rebuild attempts work on tables and hash functions of their own and are
// adopted only when every placement converges. A placement that still cycles
// after maxRebuilds attempts surfaces crt.RebuildFailed and leaves the store
// exactly as it was before the call, only the new entry is rejected.
type Store[V any] struct {
	capacity  int
	tables    [2][]model.Slot[V]
	hashFns   [2]hashfunc.HashFunction
	newHashFn func() hashfunc.HashFunction
	t         int
	lc        int
	records   int
}

// undoSlot - One overwritten slot in the eviction chain of a single insert,
// recorded so the chain can be unwound when a rebuild cascade fails
type undoSlot[V any] struct {
	table int
	index int
	prev  model.Entry[V]
}

// NewStore - Returns a pointer to a new cuckoo Store instance
//   - capacity is the fixed number of slots per table, the pair holds at most 2*capacity entries
//   - rnd is the random source used to seed both tabulation hash functions and any rebuild replacements
func NewStore[V any](capacity int, rnd *rand.Rand) *Store[V] {
	s := &Store[V]{capacity: capacity}
	s.tables[0] = make([]model.Slot[V], capacity)
	s.tables[1] = make([]model.Slot[V], capacity)
	s.newHashFn = func() hashfunc.HashFunction { return hash.NewTabulation(rnd) }
	s.hashFns[0] = s.newHashFn()
	s.hashFns[1] = s.newHashFn()
	return s
}

// Search - Checks the key's slot in table 0 and then its slot in table 1
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found in either table
//   - err is of type crt.NotFound if neither slot holds the key
func (C *Store[V]) Search(key uint32) (value V, err error) {
	for table := 0; table < 2; table++ {
		slot := &C.tables[table][C.slotIndex(table, key)]
		if slot.State == model.SlotOccupied && slot.Entry.Key == key {
			value = slot.Entry.Value
			return
		}
	}

	err = crt.NotFound{}
	return
}

// Set - Overwrites the value of an existing entry with matching key, or places
// a new entry using the eviction procedure. Placement may trigger a full
// rebuild when the accumulated eviction count has reached the threshold.
//   - key is the identifier of an entry
//   - value is the value to store
//
// It returns:
//   - err is of type crt.TableFull if both tables are completely occupied and the key is new,
//     or of type crt.RebuildFailed if repeated rebuilds did not converge. In both cases the
//     store is left unchanged, matching its pre-call state.
func (C *Store[V]) Set(key uint32, value V) (err error) {
	for table := 0; table < 2; table++ {
		slot := &C.tables[table][C.slotIndex(table, key)]
		if slot.State == model.SlotOccupied && slot.Entry.Key == key {
			slot.Entry.Value = value
			return
		}
	}

	if C.records == 2*C.capacity {
		err = crt.TableFull{}
		return
	}

	err = C.insert(model.Entry[V]{Key: key, Value: value})
	return
}

// Len - Returns the number of entries currently stored
func (C *Store[V]) Len() int {
	return C.records
}

// Capacity - Returns the per table slot count given at construction
func (C *Store[V]) Capacity() int {
	return C.capacity
}

// insert - Runs the eviction loop for one new entry. The current table cursor
// and the eviction counter survive between calls, so the rebuild check at the
// top of the loop first fires on the count accumulated by earlier calls.
// Every overwritten slot is recorded, a failed rebuild cascade unwinds the
// chain so the store matches its pre-call state.
//   - entry is the entry to place
func (C *Store[V]) insert(entry model.Entry[V]) (err error) {
	pending := entry
	var undo []undoSlot[V]

	for {
		if C.rebuildDue() {
			err = C.rebuildCascade(pending)
			if err != nil {
				for i := len(undo) - 1; i >= 0; i-- {
					C.tables[undo[i].table][undo[i].index].Entry = undo[i].prev
				}
				C.lc -= len(undo)
				if len(undo)%2 == 1 {
					C.t = 1 - C.t
				}
			}
			return
		}

		index := C.slotIndex(C.t, pending.Key)
		slot := &C.tables[C.t][index]
		if slot.State == model.SlotEmpty {
			slot.State = model.SlotOccupied
			slot.Entry = pending
			C.records++
			return
		}

		undo = append(undo, undoSlot[V]{table: C.t, index: index, prev: slot.Entry})
		evicted := slot.Entry
		slot.Entry = pending
		C.t = 1 - C.t
		C.lc++
		pending = evicted
	}
}

// rebuildCascade - Collects every live entry plus the pending one and tries
// up to maxRebuilds full rebuilds. The first attempt that converges is
// adopted, until then the live tables and hash functions stay untouched.
// Data survives a rebuild, entries are transplanted rather than discarded.
//   - pending is the entry whose placement triggered the cascade
func (C *Store[V]) rebuildCascade(pending model.Entry[V]) (err error) {
	entries := make([]model.Entry[V], 0, C.records+1)
	for table := 0; table < 2; table++ {
		for i := range C.tables[table] {
			if C.tables[table][i].State == model.SlotOccupied {
				entries = append(entries, C.tables[table][i].Entry)
			}
		}
	}
	entries = append(entries, pending)

	for attempt := 0; attempt < maxRebuilds; attempt++ {
		if C.tryBuild(entries) {
			return
		}
	}

	err = crt.RebuildFailed{}
	return
}

// tryBuild - Places all entries into fresh tables under freshly drawn hash
// functions, each placement bounded by the eviction threshold. The result is
// adopted only when every entry found a slot.
//   - entries is the full set of entries the store has to hold
func (C *Store[V]) tryBuild(entries []model.Entry[V]) bool {
	hashFns := [2]hashfunc.HashFunction{C.newHashFn(), C.newHashFn()}
	var tables [2][]model.Slot[V]
	tables[0] = make([]model.Slot[V], C.capacity)
	tables[1] = make([]model.Slot[V], C.capacity)

	threshold := C.threshold()
	t := 0

	for _, entry := range entries {
		pending := entry
		placed := false

		for lc := 0; float64(lc) < threshold; lc++ {
			index := int(hashFns[t].Hash(pending.Key) % uint32(C.capacity))
			slot := &tables[t][index]
			if slot.State == model.SlotEmpty {
				slot.State = model.SlotOccupied
				slot.Entry = pending
				placed = true
				break
			}

			evicted := slot.Entry
			slot.Entry = pending
			t = 1 - t
			pending = evicted
		}

		if !placed {
			return false
		}
	}

	C.tables = tables
	C.hashFns = hashFns
	C.t = t
	C.lc = 0
	C.records = len(entries)
	return true
}

// rebuildDue - Reports whether the accumulated eviction count has reached the
// rebuild threshold
func (C *Store[V]) rebuildDue() bool {
	return float64(C.lc) >= C.threshold()
}

// threshold - Returns the eviction threshold rebuildConstant*ln(capacity),
// floored at rebuildConstant so tiny capacities, where ln(capacity)
// approaches zero, still get a chance to try the alternate table before a
// rebuild is forced
func (C *Store[V]) threshold() float64 {
	threshold := rebuildConstant * math.Log(float64(C.capacity))
	if threshold < rebuildConstant {
		threshold = rebuildConstant
	}
	return threshold
}

// slotIndex - Reduces the hash value of key in the given table to a slot index
func (C *Store[V]) slotIndex(table int, key uint32) int {
	return int(C.hashFns[table].Hash(key) % uint32(C.capacity))
}
