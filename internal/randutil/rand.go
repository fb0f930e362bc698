// Package randutil derives reproducible generators from a single seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

// New returns a generator whose stream depends only on seed. The two PCG
// seeds are consecutive SplitMix64 outputs so nearby seeds diverge quickly.
func New(seed int64) *rand.Rand {
	state := uint64(seed)
	hi := splitmix(&state)
	lo := splitmix(&state)
	return rand.New(rand.NewPCG(hi, lo))
}

// Seed returns *explicit when set, otherwise a seed taken from now.
func Seed(explicit *int64, now time.Time) int64 {
	if explicit != nil {
		return *explicit
	}
	return now.UnixNano()
}

func splitmix(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	return z ^ z>>31
}
