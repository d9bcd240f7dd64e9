package glyph

import (
	"math"

	"github.com/fennwick/symbolgen/geom"
)

// boundaryEps is the tolerance of the upper-boundary comparison in the
// Orthogonal motif. Lower boundaries compare exactly against 0; upper
// boundaries compare within one ulp of 1.0, absorbing the case where
// k/(resolution-1) rounds just below 1.
const boundaryEps = 0x1p-52

// Glyph is one generated symbol: an ordered list of line segments plus
// the seed that produced it. A Glyph is immutable once generated.
type Glyph struct {
	seed  uint64
	lines []geom.Line
}

// Seed returns the seed this glyph was generated from.
func (g Glyph) Seed() uint64 {
	return g.seed
}

// Lines returns a copy of the glyph's segments in generation order.
// Mutating the returned slice does not affect the glyph.
func (g Glyph) Lines() []geom.Line {
	out := make([]geom.Line, len(g.lines))
	copy(out, g.lines)

	return out
}

// Len returns the number of segments, symmetry expansion included.
func (g Glyph) Len() int {
	return len(g.lines)
}

// Generate produces the glyph for (opts, seed). It is a pure function
// of its two inputs: the random stream is seeded locally and consumed
// only inside this call, so repeated calls are bit-identical and
// concurrent calls need no coordination.
//
// The walk runs Density·Resolution attempts. Each attempt draws two
// motif bits, a start point snapped to the grid, and a displacement by
// motif; the endpoint is clamped to the unit square and the candidate
// is rejected if it degenerates to a point (or, with
// SuppressDuplicates, repeats an accepted segment in either endpoint
// order). Accepted segments are appended in generation order, then
// mirrored according to Symmetry.
//
// Returns ErrResolution or ErrDensity before the first draw when opts
// is invalid.
//
// Complexity: O(Density·Resolution) time; O(n²) worst case with
// SuppressDuplicates set.
func Generate(opts Options, seed uint64) (Glyph, error) {
	if err := opts.Validate(); err != nil {
		return Glyph{}, err
	}

	return generate(opts, seed), nil
}

// generate runs the walk. opts must already be validated.
func generate(opts Options, seed uint64) Glyph {
	rng := newStream(seed)
	step := geom.Step(opts.Resolution)
	attempts := opts.Density * opts.Resolution

	lines := make([]geom.Line, 0, attempts)
	for i := 0; i < attempts; i++ {
		// Both motif bits are drawn on every attempt; the Orthogonal
		// motif ignores the second. Keeping the draw unconditional keeps
		// the stream layout identical across motifs.
		bitX := rng.flip()
		bitY := rng.flip()

		start := geom.Point{
			X: geom.Snap(rng.intn(opts.Resolution), opts.Resolution),
			Y: geom.Snap(rng.intn(opts.Resolution), opts.Resolution),
		}

		var offset geom.Vec
		switch opts.Motif {
		case Diagonal:
			// Each axis moves independently with probability 1/2.
			if bitX {
				offset.X = rng.adjustment() * step
			}
			if bitY {
				offset.Y = rng.adjustment() * step
			}
		default: // Orthogonal
			// One axis moves, chosen by bitX. A start on the boundary is
			// pushed inward; otherwise the displacement is a ternary draw.
			if bitX {
				switch {
				case start.X == 0:
					offset.X = step
				case math.Abs(start.X-1) < boundaryEps:
					offset.X = -step
				default:
					offset.X = rng.adjustment() * step
				}
			} else {
				switch {
				case start.Y == 0:
					offset.Y = step
				case math.Abs(start.Y-1) < boundaryEps:
					offset.Y = -step
				default:
					offset.Y = rng.adjustment() * step
				}
			}
		}

		line := geom.Line{Start: start, End: start.Add(offset).Clamp01()}
		if line.Degenerate() {
			continue
		}
		if opts.SuppressDuplicates && containsSegment(lines, line) {
			continue
		}
		lines = append(lines, line)
	}

	return Glyph{seed: seed, lines: expandSymmetry(lines, opts.Symmetry)}
}

// containsSegment reports whether lines already holds seg in either
// endpoint order.
func containsSegment(lines []geom.Line, seg geom.Line) bool {
	for _, l := range lines {
		if l.SameSegment(seg) {
			return true
		}
	}

	return false
}

// expandSymmetry appends mirrored copies per the symmetry rule.
// Mirrors are appended, never deduplicated: a stroke lying on a
// symmetry axis appears twice, once as itself and once as its own
// mirror, which keeps the post-expansion count an exact multiple
// (1×, 2×, 2× or 4×) of the walk output. Vertical mirroring runs over
// the list after horizontal mirrors were appended, so the combined mode
// also contains the 180° rotation of every original stroke.
func expandSymmetry(lines []geom.Line, symmetry Symmetry) []geom.Line {
	if symmetry == Horizontal || symmetry == HorizontalVertical {
		n := len(lines)
		for i := 0; i < n; i++ {
			lines = append(lines, lines[i].MirrorX())
		}
	}
	if symmetry == Vertical || symmetry == HorizontalVertical {
		n := len(lines)
		for i := 0; i < n; i++ {
			lines = append(lines, lines[i].MirrorY())
		}
	}

	return lines
}

// Alphabet is a validated, immutable configuration that produces one
// glyph per seed — typically one seed per alphabet position. It holds
// no per-call state: two Generate calls with the same seed always yield
// identical glyphs, and calls may run concurrently.
type Alphabet struct {
	opts     Options
	step     float64
	attempts int
}

// New validates opts and returns the alphabet for it.
// Returns ErrResolution or ErrDensity on invalid configuration.
func New(opts Options) (*Alphabet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Alphabet{
		opts:     opts,
		step:     geom.Step(opts.Resolution),
		attempts: opts.Density * opts.Resolution,
	}, nil
}

// Options returns the configuration this alphabet was built with.
func (a *Alphabet) Options() Options {
	return a.opts
}

// Step returns the grid spacing 1/(resolution-1).
func (a *Alphabet) Step() float64 {
	return a.step
}

// Attempts returns the walk budget per glyph, Density·Resolution — an
// upper bound on the pre-symmetry segment count, not an exact count.
func (a *Alphabet) Attempts() int {
	return a.attempts
}

// Generate returns the glyph for the given seed.
func (a *Alphabet) Generate(seed uint64) Glyph {
	return generate(a.opts, seed)
}
