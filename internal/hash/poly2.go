package hash

import (
	"math/rand"
)

// Poly2 - Degree-2 polynomial hash function, i.e. h(x) = a0 + a1*x.
// Coefficients are drawn at construction from the owned random source and the
// evaluation wraps around in uint32 arithmetic.
type Poly2 struct {
	rnd *rand.Rand
	a0  uint32
	a1  uint32
}

// NewPoly2 - Returns a pointer to a new Poly2 instance with freshly drawn coefficients
//   - rnd is the random source to draw coefficients from, a time seeded one is used when nil
func NewPoly2(rnd *rand.Rand) *Poly2 {
	p := &Poly2{rnd: orDefault(rnd)}
	p.Reseed()
	return p
}

// Hash - Given key it generates a 32 bit hash value
func (P *Poly2) Hash(key uint32) uint32 {
	return P.a0 + P.a1*key
}

// Reseed - Draws two fresh random coefficients
func (P *Poly2) Reseed() {
	P.a0 = coefficient(P.rnd)
	P.a1 = coefficient(P.rnd)
}
