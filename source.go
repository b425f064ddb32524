package csrand

import (
	"math/rand/v2"
)

var _ rand.Source = Source{}

// Source implements math/rand/v2's Source interface on top of a
// Sampler.
//
// The zero value is valid and draws from crypto/rand.Reader.
//
// There is no seed and no internal state:
// every Uint64 is an independent draw from the entropy source,
// so a Source is safe for concurrent use without locking,
// and so is any *rand.Rand built on one.
type Source struct {
	// Sampler supplies the draws. The zero value draws from
	// crypto/rand.Reader.
	Sampler Sampler
}

// Uint64 implements rand.Source.
//
// The Source interface leaves no way to report a failed entropy read,
// so Uint64 panics on one instead of returning a degraded value.
// crypto/rand.Reader does not fail on any supported platform in
// practice; use the Sampler methods directly where an error return is
// required.
func (s Source) Uint64() uint64 {
	v, err := s.Sampler.Uint64()
	if err != nil {
		panic(err)
	}
	return v
}

// R is a global *rand.Rand drawing from crypto/rand.Reader.
//
// It is for code that wants the convenience of the math/rand/v2 API
// (Perm, Shuffle, IntN, ...) with unpredictable results.
//
// For example, instead of this:
//
//	import "math/rand/v2"
//	i := rand.Uint64()
//
// Use this:
//
//	import csrand "github.com/reddit/csrand.go"
//	i := csrand.R.Uint64()
//
// It is safe for concurrent use.
// Expect every call to cost an entropy source read; for hot paths that
// only need statistical (not cryptographic) randomness, the global
// math/rand/v2 functions seeded via GetSeed are much cheaper.
var R = rand.New(Source{})
