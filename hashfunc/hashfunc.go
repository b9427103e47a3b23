package hashfunc

// HashFunction - Interface that permits an implementation using a dictionary to supply a custom hash
// strategy suited for its particular distribution of keys.
type HashFunction interface {
	// Hash - Given key it generates a 32 bit hash value.
	// The value is not reduced to any table size, the dictionary applies its own
	// modulo reduction when selecting a bucket or slot.
	Hash(key uint32) uint32

	// Reseed - Draws fresh random parameters for the hash function.
	// It is called by the cuckoo dictionary when a rebuild is triggered, but any
	// implementation has to support it since custom hash functions can be injected.
	Reseed()
}
