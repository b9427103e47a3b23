package bench

import (
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/bits-and-blooms/bloom/v3"
)

// Uniform - Keys drawn uniformly at random over the whole uint32 range
const Uniform int = 1

// Sequential - Consecutive keys from a random starting point
const Sequential int = 2

// Clustered - Small dense runs of keys around random cluster bases
const Clustered int = 3

// clusterSpan - Number of keys drawn around one cluster base before moving on
const clusterSpan = 16

// KeyGen - Generates synthetic uint32 key streams for the benchmark harness.
// Every emitted key is tracked in a bloom filter so MissKeys can produce a
// stream guaranteed to contain no key that was ever emitted. A false positive
// in the filter only discards a candidate miss key, it can never let an
// emitted key through.
type KeyGen struct {
	rnd  *rand.Rand
	seen *bloom.BloomFilter
}

// NewKeyGen - Returns a pointer to a new KeyGen instance
//   - rnd is the random source driving all distributions
//   - expectedKeys is the rough total number of keys the generator will emit, used to size the bloom filter
func NewKeyGen(rnd *rand.Rand, expectedKeys uint) *KeyGen {
	return &KeyGen{
		rnd:  rnd,
		seen: bloom.NewWithEstimates(expectedKeys, 0.001),
	}
}

// Keys - Generates n distinct keys following the given distribution
//   - n is the number of keys to generate
//   - distribution is one of Uniform, Sequential or Clustered
//
// It returns:
//   - keys is the generated key stream
//   - err is a standard Go error for an unknown distribution
func (K *KeyGen) Keys(n int, distribution int) (keys []uint32, err error) {
	keys = make([]uint32, 0, n)
	unique := make(map[uint32]struct{}, n)

	emit := func(key uint32) {
		if _, ok := unique[key]; ok {
			return
		}
		unique[key] = struct{}{}
		K.track(key)
		keys = append(keys, key)
	}

	switch distribution {
	case Uniform:
		for len(keys) < n {
			emit(K.rnd.Uint32())
		}
	case Sequential:
		start := K.rnd.Uint32()
		for key := start; len(keys) < n; key++ {
			emit(key)
		}
	case Clustered:
		for len(keys) < n {
			base := K.rnd.Uint32()
			for i := 0; i < clusterSpan && len(keys) < n; i++ {
				emit(base + uint32(i))
			}
		}
	default:
		keys = nil
		err = fmt.Errorf("unknown key distribution: %d", distribution)
	}

	return
}

// MissKeys - Generates n keys guaranteed to be absent from everything this
// generator has emitted so far
//   - n is the number of keys to generate
func (K *KeyGen) MissKeys(n int) (keys []uint32) {
	keys = make([]uint32, 0, n)
	var buf [4]byte

	for len(keys) < n {
		key := K.rnd.Uint32()
		binary.LittleEndian.PutUint32(buf[:], key)
		if !K.seen.Test(buf[:]) {
			keys = append(keys, key)
		}
	}

	return
}

// track - Records an emitted key in the bloom filter
func (K *KeyGen) track(key uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], key)
	K.seen.Add(buf[:])
}
