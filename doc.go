// Package csrand provides cryptographically secure random value
// generation, with every value derived from a single entropy source:
//
// 1. Sampling operations mapping raw entropy into several numeric
// domains without bias: byte sequences, bounded integers, bounded
// high-precision decimals, unit-interval fractions with 28 fractional
// digits, and unit-interval float64s.
//
// 2. A *math/rand/v2.Rand backed by the entropy source, for code that
// wants the convenience of that API with unpredictable results.
//
// 3. Helper functions for common use cases: random strings, version 4
// UUIDs, and seeds for deterministic generators.
//
// All operations are stateless and safe for concurrent use.
// By default they draw from crypto/rand.Reader;
// a Sampler bound to any other io.Reader can be created with New,
// which is also how tests inject fixed byte streams.
package csrand
