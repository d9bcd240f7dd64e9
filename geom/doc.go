// Package geom provides the value types for glyph geometry: points,
// displacement vectors and undirected line segments on the normalized
// [0,1]×[0,1] unit square, together with grid snapping and the mirror
// transforms used by symmetry expansion.
//
// Every function in this package is total: there are no error returns
// and no panics. Callers guarantee resolution ≥ 2 (enforced by package
// glyph before any geometry is produced); Snap and Step simply divide
// by resolution-1.
//
// Equality is bit-exact on float64 coordinates. All coordinates that
// leave this package through Snap are exact rationals k/(resolution-1),
// so exact comparison is well-defined for generated glyphs.
//
// Complexity: every operation here is O(1) time and space.
package geom
