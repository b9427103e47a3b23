package hash

import (
	"math/rand"
	"time"
)

// LargePrime - The largest prime below 2^31.
// Hash function parameters are drawn from the range [0, LargePrime). Hash values
// themselves are never reduced modulo the prime, they rely on native 32 bit
// wraparound arithmetic which trades some distribution quality for speed.
const LargePrime uint32 = 2147483647

// orDefault - Returns the given random source, or a time seeded one when nil.
// Callers that need determinism (tests, benchmark harness) inject their own
// seeded *rand.Rand, every hash function instance owns the source it was given.
func orDefault(rnd *rand.Rand) *rand.Rand {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rnd
}

// coefficient - Draws one random polynomial coefficient in the range [0, LargePrime)
func coefficient(rnd *rand.Rand) uint32 {
	return uint32(rnd.Int31n(int32(LargePrime)))
}
