// Package randutil centralises construction of the random sources
// threaded through the sampler, so every call site gets reproducible
// sequences from a single int64 seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. The two
// 64-bit PCG seeds required by rand/v2 are derived with a splitmix
// finalizer so nearby seeds produce unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for worker n of a campaign seeded with seed.
// Distinct workers get statistically independent streams while the
// whole campaign stays a pure function of its one seed.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
