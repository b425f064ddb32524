package csrand

import (
	"fmt"
)

// Base64Runes is the union of the runes emitted by the standard and
// url safe base64 encodings.
//
// It is a safe default charset for GenerateRandomString.
const Base64Runes = `ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_+/=`

// RandomStringArgs defines the args used by GenerateRandomString.
type RandomStringArgs struct {
	// Required. GenerateRandomString fails with ErrInvalidArgument if
	// MaxLength <= MinLength.
	MaxLength int

	// Optional. Default is 0, which means it could generate empty
	// strings. GenerateRandomString fails with ErrInvalidArgument if
	// MinLength < 0.
	MinLength int

	// Optional. If empty []rune(Base64Runes) will be used instead.
	Runes []rune

	// Optional. The entropy source to draw from.
	// The zero value draws from crypto/rand.Reader.
	Sampler Sampler
}

// GenerateRandomString generates a random string with length
// [MinLength, MaxLength), and all characters limited to Runes.
//
// Both the length and every rune are chosen with unbiased bounded
// draws, so no rune is favored no matter how many there are.
// Use it wherever a random string must be unpredictable,
// e.g. token or nonce generation.
func GenerateRandomString(args RandomStringArgs) (string, error) {
	if args.MinLength < 0 {
		return "", fmt.Errorf("csrand: MinLength (%d) must be non-negative: %w", args.MinLength, ErrInvalidArgument)
	}
	runes := args.Runes
	if len(runes) == 0 {
		runes = []rune(Base64Runes)
	}
	n, err := args.Sampler.Int(args.MinLength, args.MaxLength)
	if err != nil {
		return "", err
	}
	ret := make([]rune, n)
	for i := range ret {
		j, err := args.Sampler.Int(0, len(runes))
		if err != nil {
			return "", err
		}
		ret[i] = runes[j]
	}
	return string(ret), nil
}
