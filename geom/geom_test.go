package geom_test

import (
	"testing"

	"github.com/fennwick/symbolgen/geom"
)

// TestPoint_AddClamp verifies translation followed by unit clamping.
func TestPoint_AddClamp(t *testing.T) {
	cases := []struct {
		name string
		p    geom.Point
		v    geom.Vec
		want geom.Point
	}{
		{"Interior", geom.Point{X: 0.5, Y: 0.5}, geom.Vec{X: 0.25, Y: -0.25}, geom.Point{X: 0.75, Y: 0.25}},
		{"ClampLow", geom.Point{X: 0, Y: 0.5}, geom.Vec{X: -0.5, Y: 0}, geom.Point{X: 0, Y: 0.5}},
		{"ClampHigh", geom.Point{X: 1, Y: 1}, geom.Vec{X: 0.5, Y: 0.5}, geom.Point{X: 1, Y: 1}},
		{"ClampBoth", geom.Point{X: 0.25, Y: 0.75}, geom.Vec{X: -1, Y: 1}, geom.Point{X: 0, Y: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.p.Add(tc.v).Clamp01()
			if got != tc.want {
				t.Errorf("(%v).Add(%v).Clamp01() = %v; want %v", tc.p, tc.v, got, tc.want)
			}
		})
	}
}

// TestPoint_Mirror checks both midline reflections, including the
// fixed points on the symmetry axes.
func TestPoint_Mirror(t *testing.T) {
	p := geom.Point{X: 0.25, Y: 1}
	if got := p.MirrorX(); got != (geom.Point{X: 0.75, Y: 1}) {
		t.Errorf("MirrorX() = %v; want {0.75 1}", got)
	}
	if got := p.MirrorY(); got != (geom.Point{X: 0.25, Y: 0}) {
		t.Errorf("MirrorY() = %v; want {0.25 0}", got)
	}

	axis := geom.Point{X: 0.5, Y: 0.5}
	if axis.MirrorX() != axis || axis.MirrorY() != axis {
		t.Errorf("midpoint must be a fixed point of both mirrors, got %v / %v", axis.MirrorX(), axis.MirrorY())
	}
}

// TestLine_Degenerate verifies the zero-length check is exact.
func TestLine_Degenerate(t *testing.T) {
	l := geom.Line{Start: geom.Point{X: 0.5, Y: 0.5}, End: geom.Point{X: 0.5, Y: 0.5}}
	if !l.Degenerate() {
		t.Error("coincident endpoints must be degenerate")
	}
	l.End.Y = 0.5000000001
	if l.Degenerate() {
		t.Error("distinct endpoints must not be degenerate")
	}
}

// TestLine_SameSegment verifies unordered segment equality.
func TestLine_SameSegment(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 0.5, Y: 1}
	c := geom.Point{X: 1, Y: 1}

	l := geom.Line{Start: a, End: b}
	if !l.SameSegment(geom.Line{Start: a, End: b}) {
		t.Error("identical lines must match")
	}
	if !l.SameSegment(geom.Line{Start: b, End: a}) {
		t.Error("reversed lines must match")
	}
	if l.SameSegment(geom.Line{Start: a, End: c}) {
		t.Error("different segments must not match")
	}
}

// TestLine_Mirror verifies endpoint-wise reflection.
func TestLine_Mirror(t *testing.T) {
	l := geom.Line{Start: geom.Point{X: 0, Y: 0.25}, End: geom.Point{X: 0.5, Y: 1}}

	gx := l.MirrorX()
	if gx.Start != (geom.Point{X: 1, Y: 0.25}) || gx.End != (geom.Point{X: 0.5, Y: 1}) {
		t.Errorf("MirrorX() = %v", gx)
	}

	gy := l.MirrorY()
	if gy.Start != (geom.Point{X: 0, Y: 0.75}) || gy.End != (geom.Point{X: 0.5, Y: 0}) {
		t.Errorf("MirrorY() = %v", gy)
	}
}

// TestSnapStep verifies grid spacing and index snapping, including the
// exact endpoints 0 and 1.
func TestSnapStep(t *testing.T) {
	if got := geom.Step(5); got != 0.25 {
		t.Errorf("Step(5) = %v; want 0.25", got)
	}
	if got := geom.Step(2); got != 1 {
		t.Errorf("Step(2) = %v; want 1", got)
	}

	cases := []struct {
		index, resolution int
		want              float64
	}{
		{0, 3, 0},
		{1, 3, 0.5},
		{2, 3, 1},
		{3, 4, 1},
		{1, 2, 1},
	}
	for _, tc := range cases {
		if got := geom.Snap(tc.index, tc.resolution); got != tc.want {
			t.Errorf("Snap(%d,%d) = %v; want %v", tc.index, tc.resolution, got, tc.want)
		}
	}
}
