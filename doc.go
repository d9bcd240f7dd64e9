// Package symbolgen procedurally generates alphabets of abstract
// line-glyphs — seeded random walks on a normalized grid, mirrored into
// symmetric strokes and rendered as SVG or PNG sheets.
//
// 🚀 What is symbolgen?
//
//	A deterministic symbol factory that brings together:
//		• Normalized grid geometry: points, segments, snapping, mirrors
//		• Seeded glyph generation: random-walk strokes, boundary rules
//		• Symmetry expansion: horizontal, vertical or both
//		• Alphabet factories: one configuration, one glyph per seed
//		• Renderers: alphabet sheets as SVG or PNG
//
// ✨ Why choose symbolgen?
//
//   - Reproducible – same seed, same glyph, bit for bit, on any platform
//   - Pure core – generation is a pure function; rendering never feeds back
//   - Minimal API – one Options struct, one Generate call
//   - Parallel-friendly – every glyph owns its own random stream
//
// Under the hood, everything is organized under three subpackages:
//
//	geom/   — Point, Vec and Line value types on the [0,1]×[0,1] grid
//	glyph/  — the generator, symmetry expansion and Alphabet factory
//	render/ — sheet layout plus SVG and PNG writers
//
// Quick ASCII example:
//
//	    ·─·
//	    │ ╲
//	    ·   ·
//
//	one glyph: a handful of short strokes snapped to grid positions.
//
// The cmd/symbolgen binary wires the three together into a sheet
// generator for whole alphabets.
//
//	go get github.com/fennwick/symbolgen/glyph
package symbolgen
