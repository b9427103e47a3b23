package hash

import (
	"math/rand"
)

// Poly5 - Degree-5 polynomial hash function, i.e. h(x) = a0 + a1*x + a2*x^2 + a3*x^3 + a4*x^4.
// The wider degree trades computation for better avalanche behavior compared to Poly2.
type Poly5 struct {
	rnd *rand.Rand
	a0  uint32
	a1  uint32
	a2  uint32
	a3  uint32
	a4  uint32
}

// NewPoly5 - Returns a pointer to a new Poly5 instance with freshly drawn coefficients
//   - rnd is the random source to draw coefficients from, a time seeded one is used when nil
func NewPoly5(rnd *rand.Rand) *Poly5 {
	p := &Poly5{rnd: orDefault(rnd)}
	p.Reseed()
	return p
}

// Hash - Given key it generates a 32 bit hash value
func (P *Poly5) Hash(key uint32) uint32 {
	x2 := key * key
	x3 := x2 * key
	x4 := x3 * key
	return P.a0 + P.a1*key + P.a2*x2 + P.a3*x3 + P.a4*x4
}

// Reseed - Draws five fresh random coefficients
func (P *Poly5) Reseed() {
	P.a0 = coefficient(P.rnd)
	P.a1 = coefficient(P.rnd)
	P.a2 = coefficient(P.rnd)
	P.a3 = coefficient(P.rnd)
	P.a4 = coefficient(P.rnd)
}
