package csrand

// ShouldSampleWithRate reports whether a single event should be kept,
// given the sample rate.
//
// The decision is drawn from the cryptographically secure source,
// so an observer cannot predict which events are sampled.
// rate >= 1 always samples and rate <= 0 never samples.
func ShouldSampleWithRate(rate float64) bool {
	return R.Float64() < rate
}
