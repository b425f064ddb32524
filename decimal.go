package csrand

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// FractionDigits is the number of fractional digits carried by every
// value Fraction returns.
const FractionDigits = 28

// 10^28 split into three 32-bit limbs.
// A 96-bit draw reinterpreted with scale 28 stays below 1 exactly when
// it is below this value.
const (
	fractionLimitHi  uint32 = 0x204FCE5E
	fractionLimitMid uint32 = 0x3E250261
	fractionLimitLo  uint32 = 0x10000000
)

// Fraction returns a uniform random decimal in [0, 1) with 28 digits
// of fractional precision.
//
// It draws 96 bits as three 32-bit limbs and interprets them as a
// little-endian unsigned integer V.
// 96 bits can represent values up to about 7.9*10^28,
// so draws with V >= 10^28 are discarded and redrawn;
// folding them in instead would bias the result toward smaller
// digits. Once V < 10^28, the result is V scaled by 10^-28.
//
// The limb comparison never promotes to a floating point type,
// which would lose the low digits to rounding.
func (s Sampler) Fraction() (decimal.Decimal, error) {
	var buf [12]byte
	for {
		if err := s.fill(buf[:]); err != nil {
			return decimal.Decimal{}, err
		}
		lo := binary.LittleEndian.Uint32(buf[0:4])
		mid := binary.LittleEndian.Uint32(buf[4:8])
		hi := binary.LittleEndian.Uint32(buf[8:12])
		if !belowFractionLimit(lo, mid, hi) {
			continue
		}
		v := new(big.Int).SetUint64(uint64(hi))
		v.Lsh(v, 64)
		v.Add(v, new(big.Int).SetUint64(uint64(mid)<<32|uint64(lo)))
		return decimal.NewFromBigInt(v, -FractionDigits), nil
	}
}

// belowFractionLimit reports whether the 96-bit value (hi, mid, lo) is
// strictly below 10^28, comparing limbs from the most significant end.
func belowFractionLimit(lo, mid, hi uint32) bool {
	switch {
	case hi != fractionLimitHi:
		return hi < fractionLimitHi
	case mid != fractionLimitMid:
		return mid < fractionLimitMid
	default:
		return lo < fractionLimitLo
	}
}

// Decimal returns a uniform random decimal in [min, max).
//
// It fails with ErrInvalidArgument when min >= max.
//
// The result is min + Fraction()*(max-min).
// The scaling arithmetic is exact (decimal Add, Sub, and Mul never
// round), so the half-open bounds hold for operands of any scale.
func (s Sampler) Decimal(min, max decimal.Decimal) (decimal.Decimal, error) {
	if min.GreaterThanOrEqual(max) {
		return decimal.Decimal{}, fmt.Errorf("csrand: min (%s) must be less than max (%s): %w", min, max, ErrInvalidArgument)
	}
	f, err := s.Fraction()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return min.Add(f.Mul(max.Sub(min))), nil
}

// Fraction returns a uniform random decimal in [0, 1) with 28 digits
// of fractional precision, drawn from crypto/rand.Reader.
//
// See Sampler.Fraction for the full contract.
func Fraction() (decimal.Decimal, error) {
	return defaultSampler.Fraction()
}

// Decimal returns a uniform random decimal in [min, max) drawn from
// crypto/rand.Reader.
//
// See Sampler.Decimal for the full contract.
func Decimal(min, max decimal.Decimal) (decimal.Decimal, error) {
	return defaultSampler.Decimal(min, max)
}
