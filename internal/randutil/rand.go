package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed.
// A zero seed means "unseeded": a fresh seed is drawn with Seed first,
// so the opponent is unpredictable unless a seed is configured.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = Seed()
	}
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed draws a non-zero seed from the runtime's randomly seeded source.
func Seed() int64 {
	for {
		if s := rand.Int64(); s != 0 {
			return s
		}
	}
}

// Derive returns the i-th child seed of parent, for handing independent
// generators to parallel workers.
func Derive(parent int64, i int) int64 {
	s := int64(mix(uint64(parent) + uint64(i+1)*goldenRatio64))
	if s == 0 {
		return 1
	}
	return s
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
