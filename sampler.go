package csrand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"
)

// A Sampler maps raw entropy from a source into uniformly distributed
// values in several target domains.
//
// The zero value is valid and draws from crypto/rand.Reader,
// which is also what all the package level functions do.
// Pass a different source to New to change that,
// e.g. a fixed byte stream in tests.
//
// Samplers hold no mutable state:
// every operation allocates its own scratch space,
// so a Sampler is safe for concurrent use as long as its source is.
// crypto/rand.Reader is.
type Sampler struct {
	source io.Reader
}

// New creates a Sampler drawing entropy from src.
//
// The source must fill every read completely with independent,
// uniformly distributed bytes.
// A failing source is reported by the operation that hit the failure,
// never retried.
//
// A nil src means crypto/rand.Reader.
func New(src io.Reader) Sampler {
	return Sampler{source: src}
}

var defaultSampler Sampler

// fill reads exactly len(buf) bytes from the entropy source.
//
// A partial read is a failure.
func (s Sampler) fill(buf []byte) error {
	src := s.source
	if src == nil {
		src = rand.Reader
	}
	if _, err := io.ReadFull(src, buf); err != nil {
		return fmt.Errorf("csrand: entropy source failed: %w", err)
	}
	return nil
}

// Bytes returns a freshly allocated buffer of exactly length uniform,
// independent random bytes.
//
// A length of zero returns an empty slice without consuming any
// entropy. A negative length fails with ErrInvalidArgument.
func (s Sampler) Bytes(length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("csrand: length (%d) must be non-negative: %w", length, ErrInvalidArgument)
	}
	if length == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, length)
	if err := s.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Uint32 returns a uniform random uint32.
func (s Sampler) Uint32() (uint32, error) {
	var buf [4]byte
	if err := s.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Uint64 returns a uniform random uint64.
func (s Sampler) Uint64() (uint64, error) {
	var buf [8]byte
	if err := s.fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// Int64 returns a uniform random int64 in [min, max).
//
// It fails with ErrInvalidArgument when min >= max.
//
// Every value in the range has exactly equal probability,
// including when the range size does not divide the 64-bit draw space
// evenly:
// draws from the trailing remainder of that space are discarded and
// redrawn rather than folded in, which would bias the low values.
// The expected number of redraws is below one even for the worst
// range size.
func (s Sampler) Int64(min, max int64) (int64, error) {
	if min >= max {
		return 0, fmt.Errorf("csrand: min (%d) must be less than max (%d): %w", min, max, ErrInvalidArgument)
	}
	// The unsigned difference is the range size even when min and max
	// straddle zero or the size exceeds MaxInt64.
	span := uint64(max) - uint64(min)
	limit := math.MaxUint64 / span * span
	for {
		v, err := s.Uint64()
		if err != nil {
			return 0, err
		}
		if v < limit {
			return int64(uint64(min) + v%span), nil
		}
	}
}

// Int is an int shaped convenience wrapper of Int64.
func (s Sampler) Int(min, max int) (int, error) {
	v, err := s.Int64(int64(min), int64(max))
	return int(v), err
}

// Duration returns a uniform random duration in [min, max).
//
// It fails with ErrInvalidArgument when min >= max.
func (s Sampler) Duration(min, max time.Duration) (time.Duration, error) {
	v, err := s.Int64(int64(min), int64(max))
	return time.Duration(v), err
}

// Float64 returns a uniform random float64 in [0.0, 1.0).
//
// It keeps the top 53 bits of a single 64-bit draw,
// the full mantissa width of a float64,
// and divides them by 2^53.
// That yields 2^53 equally likely, evenly spaced values with no
// rounding bias, and needs no rejection loop because 53 bits map
// exactly onto a power-of-two denominator.
// The smallest nonzero result is 2^-53.
func (s Sampler) Float64() (float64, error) {
	v, err := s.Uint64()
	if err != nil {
		return 0, err
	}
	return float64(v>>11) / (1 << 53), nil
}

// Bytes returns length uniform random bytes from crypto/rand.Reader.
//
// See Sampler.Bytes for the full contract.
func Bytes(length int) ([]byte, error) {
	return defaultSampler.Bytes(length)
}

// Uint32 returns a uniform random uint32 from crypto/rand.Reader.
func Uint32() (uint32, error) {
	return defaultSampler.Uint32()
}

// Uint64 returns a uniform random uint64 from crypto/rand.Reader.
func Uint64() (uint64, error) {
	return defaultSampler.Uint64()
}

// Int64 returns a uniform random int64 in [min, max) from
// crypto/rand.Reader.
//
// See Sampler.Int64 for the full contract.
func Int64(min, max int64) (int64, error) {
	return defaultSampler.Int64(min, max)
}

// Int returns a uniform random int in [min, max) from
// crypto/rand.Reader.
func Int(min, max int) (int, error) {
	return defaultSampler.Int(min, max)
}

// Duration returns a uniform random duration in [min, max) from
// crypto/rand.Reader.
func Duration(min, max time.Duration) (time.Duration, error) {
	return defaultSampler.Duration(min, max)
}

// Float64 returns a uniform random float64 in [0.0, 1.0) from
// crypto/rand.Reader.
//
// See Sampler.Float64 for the full contract.
func Float64() (float64, error) {
	return defaultSampler.Float64()
}
