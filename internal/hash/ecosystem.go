package hash

import (
	"encoding/binary"
	"math/rand"

	"github.com/minio/highwayhash"
	"github.com/shivakar/metrohash"
	"github.com/twmb/murmur3"
)

// The adapters below wrap production non-cryptographic hashes behind the same
// reseedable interface as the polynomial and tabulation strategies. They exist
// so the benchmark harness can compare the classroom strategies against real
// world hashes, and so callers can inject them through the public interface.

// keyBytes - Returns the little endian byte representation of a key
func keyBytes(key uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], key)
	return buf[:]
}

// Murmur3 - Hash function backed by the murmur3 32 bit sum with a random seed
type Murmur3 struct {
	rnd  *rand.Rand
	seed uint32
}

// NewMurmur3 - Returns a pointer to a new Murmur3 instance with a freshly drawn seed
//   - rnd is the random source to draw the seed from, a time seeded one is used when nil
func NewMurmur3(rnd *rand.Rand) *Murmur3 {
	m := &Murmur3{rnd: orDefault(rnd)}
	m.Reseed()
	return m
}

// Hash - Given key it generates a 32 bit hash value
func (M *Murmur3) Hash(key uint32) uint32 {
	return murmur3.SeedSum32(M.seed, keyBytes(key))
}

// Reseed - Draws a fresh random seed
func (M *Murmur3) Reseed() {
	M.seed = M.rnd.Uint32()
}

// Metro - Hash function backed by MetroHash64, folded to 32 bits.
// The seed is written ahead of the key bytes, same way the salt prefix is used
// in seeded hasher families.
type Metro struct {
	rnd  *rand.Rand
	salt [8]byte
}

// NewMetro - Returns a pointer to a new Metro instance with a freshly drawn salt
//   - rnd is the random source to draw the salt from, a time seeded one is used when nil
func NewMetro(rnd *rand.Rand) *Metro {
	m := &Metro{rnd: orDefault(rnd)}
	m.Reseed()
	return m
}

// Hash - Given key it generates a 32 bit hash value
func (M *Metro) Hash(key uint32) uint32 {
	h := metrohash.NewMetroHash64()
	_, _ = h.Write(M.salt[:])
	_, _ = h.Write(keyBytes(key))
	return uint32(h.Sum64())
}

// Reseed - Draws a fresh random salt
func (M *Metro) Reseed() {
	binary.LittleEndian.PutUint64(M.salt[:], M.rnd.Uint64())
}

// Highway - Hash function backed by HighwayHash64 with a random 32 byte key,
// folded to 32 bits
type Highway struct {
	rnd *rand.Rand
	key [32]byte
}

// NewHighway - Returns a pointer to a new Highway instance with a freshly drawn key
//   - rnd is the random source to draw the key from, a time seeded one is used when nil
func NewHighway(rnd *rand.Rand) *Highway {
	h := &Highway{rnd: orDefault(rnd)}
	h.Reseed()
	return h
}

// Hash - Given key it generates a 32 bit hash value
func (H *Highway) Hash(key uint32) uint32 {
	return uint32(highwayhash.Sum64(keyBytes(key), H.key[:]))
}

// Reseed - Draws a fresh random 32 byte hash key
func (H *Highway) Reseed() {
	for i := 0; i < len(H.key); i += 8 {
		binary.LittleEndian.PutUint64(H.key[i:], H.rnd.Uint64())
	}
}
