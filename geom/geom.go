package geom

// Point is a position on the normalized unit square.
// Coordinates are only guaranteed to lie inside [0,1] after Clamp01;
// intermediate arithmetic may step outside the square.
type Point struct {
	X, Y float64
}

// Vec is a 2D displacement added to a Point during the random walk.
type Vec struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Clamp01 returns p with each coordinate clamped to [0,1] independently.
func (p Point) Clamp01() Point {
	return Point{X: clamp01(p.X), Y: clamp01(p.Y)}
}

// MirrorX reflects p across the vertical midline: x' = 0.5 + (0.5 - x).
func (p Point) MirrorX() Point {
	return Point{X: 0.5 + (0.5 - p.X), Y: p.Y}
}

// MirrorY reflects p across the horizontal midline: y' = 0.5 + (0.5 - y).
func (p Point) MirrorY() Point {
	return Point{X: p.X, Y: 0.5 + (0.5 - p.Y)}
}

// Line is a segment between two points. Start/End order records
// generation order but carries no geometric meaning: SameSegment treats
// a reversed line as equal.
type Line struct {
	Start, End Point
}

// Degenerate reports whether both endpoints coincide exactly.
// Degenerate lines are never retained in a glyph.
func (l Line) Degenerate() bool {
	return l.Start == l.End
}

// SameSegment reports whether l and o describe the same geometric
// segment, in either endpoint order.
func (l Line) SameSegment(o Line) bool {
	if l.Start == o.Start && l.End == o.End {
		return true
	}

	return l.Start == o.End && l.End == o.Start
}

// MirrorX reflects both endpoints across the vertical midline.
func (l Line) MirrorX() Line {
	return Line{Start: l.Start.MirrorX(), End: l.End.MirrorX()}
}

// MirrorY reflects both endpoints across the horizontal midline.
func (l Line) MirrorY() Line {
	return Line{Start: l.Start.MirrorY(), End: l.End.MirrorY()}
}

// Step is the grid spacing for a given resolution: 1/(resolution-1).
// Precondition: resolution ≥ 2 (validated by package glyph).
func Step(resolution int) float64 {
	return 1.0 / float64(resolution-1)
}

// Snap maps a discrete grid index in [0,resolution-1] to its normalized
// coordinate index/(resolution-1). Snap(0,r)==0 and Snap(r-1,r)==1 hold
// exactly for every resolution ≥ 2.
func Snap(index, resolution int) float64 {
	return float64(index) / float64(resolution-1)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
