package csrand

import (
	"time"
)

// JitterRatio returns the ratio to multiply a base value by to apply
// +/- jitter.
//
// For example, JitterRatio(0.1) returns a float64 in (0.9, 1.1),
// exclusive on both ends, and the returned ratio is unpredictable to
// an outside observer.
//
// jitter values outside [0, 1] are clamped:
// jitter <= 0 always returns 1, jitter > 1 behaves as 1.
func JitterRatio(jitter float64) float64 {
	switch {
	case jitter <= 0:
		return 1
	case jitter > 1:
		jitter = 1
	}
	return 1 - (R.Float64()*2-1)*jitter
}

// JitterDuration spreads the center duration by +/- jitter,
// via JitterRatio.
//
// Use it where synchronized retries must not be guessable,
// e.g. backoff schedules facing an adversarial peer.
//
// NOTE: for a prohibitively long center duration some precision is
// lost casting it into a float64 to apply the ratio.
func JitterDuration(center time.Duration, jitter float64) time.Duration {
	return time.Duration(float64(center) * JitterRatio(jitter))
}
