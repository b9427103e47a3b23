package hash

import (
	"math/rand"
)

// Tabulation - Tabulation hash function over four independent 256 entry tables
// of random 32 bit values. The key is split into its four constituent bytes,
// each byte is looked up in its own table and the four results are XORed
// together. Cheap to evaluate and the lookups are independent enough that the
// cuckoo dictionary uses two independently seeded instances for its two tables.
type Tabulation struct {
	rnd    *rand.Rand
	tables [4][256]uint32
}

// NewTabulation - Returns a pointer to a new Tabulation instance with freshly drawn tables
//   - rnd is the random source to fill the tables from, a time seeded one is used when nil
func NewTabulation(rnd *rand.Rand) *Tabulation {
	t := &Tabulation{rnd: orDefault(rnd)}
	t.Reseed()
	return t
}

// Hash - Given key it generates a 32 bit hash value
func (T *Tabulation) Hash(key uint32) uint32 {
	return T.tables[0][byte(key)] ^
		T.tables[1][byte(key>>8)] ^
		T.tables[2][byte(key>>16)] ^
		T.tables[3][byte(key>>24)]
}

// Reseed - Refills all four tables with fresh random values
func (T *Tabulation) Reseed() {
	for i := range T.tables {
		for j := range T.tables[i] {
			T.tables[i][j] = T.rnd.Uint32()
		}
	}
}
