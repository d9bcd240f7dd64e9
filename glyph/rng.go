// Package glyph - RNG utilities for deterministic glyph generation.
//
// This file centralizes all random generation for the glyph walk.
//
// Goals:
//   - Determinism: same seed ⇒ identical glyphs across platforms.
//   - Encapsulation: a single stream type; no time-based sources hidden anywhere.
//   - Referential transparency: a stream is a value owned by one Generate
//     call, never shared mutable state.
//
// The stream is a SplitMix64 sequence: the state advances by the golden
// gamma and each output word is the SplitMix64 finalizer of the state.
// Constants are the canonical SplitMix64 multipliers/finalizer (Vigna
// 2014); the output is a fixed published function of the seed, which is
// what makes frozen golden vectors portable. Statistical demands here
// are tiny: coin flips and uniform draws over single-digit ranges.
//
// Concurrency:
//   - A stream is not goroutine-safe. Do not share one across goroutines;
//     give each glyph its own stream (Generate already does).
package glyph

const (
	// rngGamma is the golden-ratio increment of the SplitMix64 state.
	rngGamma uint64 = 0x9e3779b97f4a7c15
	// rngMixA and rngMixB are the SplitMix64 finalizer multipliers.
	rngMixA uint64 = 0xbf58476d1ce4e5b9
	rngMixB uint64 = 0x94d049bb133111eb
)

// stream is a deterministic pseudorandom stream seeded from one uint64.
// The zero value is the stream for seed 0.
type stream struct {
	state uint64
}

// newStream returns the stream for the given seed. Seeds are used
// verbatim: consecutive seeds yield decorrelated streams because every
// output word passes through the avalanche finalizer.
func newStream(seed uint64) stream {
	return stream{state: seed}
}

// next advances the state by rngGamma and returns its finalized mix.
//
// Complexity: O(1).
func (s *stream) next() uint64 {
	s.state += rngGamma
	x := s.state
	x = (x ^ (x >> 30)) * rngMixA
	x = (x ^ (x >> 27)) * rngMixB

	return x ^ (x >> 31)
}

// flip returns a uniform boolean (the top bit of the next word).
func (s *stream) flip() bool {
	return s.next()>>63 == 1
}

// intn returns a uniform int in [0,n). n is at most a resolution here,
// so the modulo bias over a 64-bit word is far below observability.
// Precondition: n ≥ 1.
func (s *stream) intn(n int) int {
	return int(s.next() % uint64(n))
}

// adjustment returns -1, 0 or 1 with equal probability, as a float64
// ready to be scaled by the grid step.
func (s *stream) adjustment() float64 {
	return float64(s.intn(3) - 1)
}
