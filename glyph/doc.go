// Package glyph generates abstract line-glyphs: deterministic, seeded
// random walks that place short strokes on a normalized grid, reject
// degenerate candidates and mirror the result into symmetric shapes.
//
// 🚀 What is a glyph?
//
//	An ordered list of line segments on the [0,1]×[0,1] unit square,
//	fully determined by a configuration and a single seed:
//	  • resolution — grid positions per axis (≥ 2)
//	  • density    — walk attempts per grid position (≥ 1)
//	  • motif      — Orthogonal (axis-aligned, boundary-aware) or
//	                 Diagonal (independent dual-axis) strokes
//	  • symmetry   — mirror across neither, one, or both midlines
//
// ✨ Key guarantees:
//   - Determinism: fixed (Options, seed) ⇒ bit-identical output on
//     every platform, every run
//   - Purity: Generate has no observable side effects; each call owns
//     its private random stream, so generations parallelize freely
//   - No degenerate segments: zero-length strokes are always rejected
//   - Bounded size: at most density·resolution strokes before symmetry
//     expansion, exactly 1×/2×/2×/4× that after it
//
// ⚙️ Usage:
//
//	opts := glyph.DefaultOptions()
//	opts.Resolution = 5
//	opts.Symmetry = glyph.Horizontal
//
//	a, err := glyph.New(opts) // validates once
//	if err != nil {
//	  // ErrResolution or ErrDensity
//	}
//	g := a.Generate(7) // glyph for seed 7, same result every call
//	for _, line := range g.Lines() {
//	  // feed a renderer; see package render
//	}
//
// Performance: O(density·resolution) time per glyph, plus an optional
// O(n²) pass when Options.SuppressDuplicates is set.
//
// See example_test.go for runnable examples.
package glyph
