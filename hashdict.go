package hashdict

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gostonefire/hashdict/crt"
	"github.com/gostonefire/hashdict/hashfunc"
	"github.com/gostonefire/hashdict/internal/hash"
	"github.com/gostonefire/hashdict/internal/store/chained"
	"github.com/gostonefire/hashdict/internal/store/cuckoo"
	"github.com/gostonefire/hashdict/internal/store/linear"
	"github.com/gostonefire/hashdict/internal/store/naive"
)

// Dictionary - The uniform contract implemented by all collision resolution techniques.
// A dictionary instance is exclusively owned by one caller, no operation is safe for
// concurrent use and none of them performs I/O or blocks.
type Dictionary[V any] interface {
	// Search - Returns the value stored under key.
	// It never mutates the dictionary. If the key is absent the error is of
	// type crt.NotFound, which is an expected outcome and not an internal fault.
	Search(key uint32) (value V, err error)

	// Set - Stores value under key, overwriting the value of an existing entry
	// with matching key. Depending on technique it may fail with crt.TableFull
	// or crt.RebuildFailed, in which case no new entry was added.
	Set(key uint32, value V) (err error)

	// Len - Returns the number of entries currently stored
	Len() int

	// Capacity - Returns the capacity given at construction.
	// The naive technique records but does not enforce it.
	Capacity() int
}

// Config - Optional knobs for dictionary construction
//   - Rand is the random source for hash function parameters, a time seeded one is used when nil. Supply a seeded source for deterministic behavior in tests and benchmarks.
//   - HashFunction overrides the default hash strategy for the SeparateChaining and LinearProbing techniques. It is ignored by Naive (which does not hash) and by Cuckoo (which owns two independently seeded tabulation functions).
type Config struct {
	Rand         *rand.Rand
	HashFunction hashfunc.HashFunction
}

// New - Returns a new dictionary using the given collision resolution technique.
//   - capacity is the fixed size of the backing storage, it must be a positive number. It is the bucket count for SeparateChaining, the slot count for LinearProbing, the per table slot count for Cuckoo and is recorded but not enforced by Naive.
//   - technique is one of the constants in the crt package
//   - conf carries the optional knobs, the zero value gives the default hash strategies with time seeded randomness
//
// It returns:
//   - dict is the created dictionary
//   - err is a standard Go error for an invalid capacity or unknown technique
func New[V any](capacity int, technique int, conf Config) (dict Dictionary[V], err error) {
	if capacity < 1 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	rnd := conf.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch technique {
	case crt.Naive:
		dict = naive.NewStore[V](capacity)
	case crt.SeparateChaining:
		hashFn := conf.HashFunction
		if hashFn == nil {
			hashFn = hash.NewPoly2(rnd)
		}
		dict = chained.NewStore[V](capacity, hashFn)
	case crt.LinearProbing:
		hashFn := conf.HashFunction
		if hashFn == nil {
			hashFn = hash.NewPoly5(rnd)
		}
		dict = linear.NewStore[V](capacity, hashFn)
	case crt.Cuckoo:
		dict = cuckoo.NewStore[V](capacity, rnd)
	default:
		err = fmt.Errorf("unknown collision resolution technique: %d", technique)
	}

	return
}

// NewMurmur3HashFunction - Returns a murmur3 backed hash function suitable for
// injection through Config.HashFunction
//   - rnd is the random source to draw the seed from, a time seeded one is used when nil
func NewMurmur3HashFunction(rnd *rand.Rand) hashfunc.HashFunction {
	return hash.NewMurmur3(rnd)
}

// NewMetroHashFunction - Returns a MetroHash backed hash function suitable for
// injection through Config.HashFunction
//   - rnd is the random source to draw the salt from, a time seeded one is used when nil
func NewMetroHashFunction(rnd *rand.Rand) hashfunc.HashFunction {
	return hash.NewMetro(rnd)
}

// NewHighwayHashFunction - Returns a HighwayHash backed hash function suitable
// for injection through Config.HashFunction
//   - rnd is the random source to draw the hash key from, a time seeded one is used when nil
func NewHighwayHashFunction(rnd *rand.Rand) hashfunc.HashFunction {
	return hash.NewHighway(rnd)
}
