package csrand

import (
	"time"
)

// GetSeed returns a seed for pseudo-random generators.
//
// The seed is drawn from crypto/rand.Reader,
// with the current time as the fallback if that fails for whatever
// reason:
// unlike every other operation in this package,
// a caller asking for a seed must always get one,
// and a deterministic generator is not security sensitive to begin
// with.
func GetSeed() int64 {
	return getSeed(defaultSampler)
}

func getSeed(s Sampler) int64 {
	v, err := s.Uint64()
	if err != nil {
		return time.Now().UnixNano()
	}
	return int64(v)
}
