package glyph_test

import (
	"testing"

	"github.com/fennwick/symbolgen/glyph"
)

// benchmarkGenerate runs the generator across a rotating seed so each
// iteration walks a different stream.
func benchmarkGenerate(b *testing.B, opts glyph.Options) {
	a, err := glyph.New(opts)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = a.Generate(uint64(i)).Len()
	}
}

// benchSink keeps the compiler from eliding the generation calls.
var benchSink int

// BenchmarkGenerate_Orthogonal benchmarks the boundary-aware motif on a
// 16×16 grid with density 4 (64 attempts per glyph).
func BenchmarkGenerate_Orthogonal(b *testing.B) {
	opts := glyph.DefaultOptions()
	opts.Resolution = 16
	opts.Density = 4
	benchmarkGenerate(b, opts)
}

// BenchmarkGenerate_Diagonal benchmarks the dual-axis motif at the same
// budget.
func BenchmarkGenerate_Diagonal(b *testing.B) {
	opts := glyph.DefaultOptions()
	opts.Resolution = 16
	opts.Density = 4
	opts.Motif = glyph.Diagonal
	benchmarkGenerate(b, opts)
}

// BenchmarkGenerate_HorizontalVertical adds the 4× symmetry expansion.
func BenchmarkGenerate_HorizontalVertical(b *testing.B) {
	opts := glyph.DefaultOptions()
	opts.Resolution = 16
	opts.Density = 4
	opts.Symmetry = glyph.HorizontalVertical
	benchmarkGenerate(b, opts)
}

// BenchmarkGenerate_SuppressDuplicates measures the quadratic opt-in
// duplicate check.
func BenchmarkGenerate_SuppressDuplicates(b *testing.B) {
	opts := glyph.DefaultOptions()
	opts.Resolution = 16
	opts.Density = 4
	opts.SuppressDuplicates = true
	benchmarkGenerate(b, opts)
}
