package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/fennwick/symbolgen/glyph"
)

// Sentinel errors for sheet rendering.
var (
	// ErrSheetGeometry indicates non-positive columns/rows/scale/line
	// width or a negative spacing.
	ErrSheetGeometry = errors.New("render: invalid sheet geometry")
	// ErrNilAlphabet indicates a nil alphabet was passed to a renderer.
	ErrNilAlphabet = errors.New("render: nil alphabet")
)

// SheetOptions describes the alphabet page layout.
//
// Fields:
//   - Columns, Rows — glyph cells per axis, ≥ 1 each.
//   - Scale        — edge length of one glyph cell in pixels.
//   - Spacing      — margin around the page and gap between cells.
//   - LineWidth    — stroke width in pixels; strokes use round caps.
//   - FirstSeed    — seed of the top-left glyph; cells advance the seed
//     in row-major order.
type SheetOptions struct {
	Columns   int
	Rows      int
	Scale     float64
	Spacing   float64
	LineWidth float64
	FirstSeed uint64
}

// DefaultSheetOptions returns the classic alphabet page: 26 columns by
// 4 rows of 25px glyphs with 25px spacing and a 4px stroke.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{
		Columns:   26,
		Rows:      4,
		Scale:     25,
		Spacing:   25,
		LineWidth: 4,
	}
}

// Validate checks the layout invariants.
//
// Complexity: O(1).
func (o SheetOptions) Validate() error {
	if o.Columns < 1 || o.Rows < 1 {
		return fmt.Errorf("%w: %dx%d cells", ErrSheetGeometry, o.Columns, o.Rows)
	}
	if o.Scale <= 0 || o.Spacing < 0 || o.LineWidth <= 0 {
		return fmt.Errorf("%w: scale %g, spacing %g, line width %g", ErrSheetGeometry, o.Scale, o.Spacing, o.LineWidth)
	}

	return nil
}

// CanvasSize returns the page dimensions in pixels:
// spacing + (scale+spacing)·cells per axis.
func (o SheetOptions) CanvasSize() (width, height float64) {
	cell := o.Scale + o.Spacing

	return o.Spacing + cell*float64(o.Columns), o.Spacing + cell*float64(o.Rows)
}

// pixelBounds returns CanvasSize rounded up to whole pixels for raster
// output.
func (o SheetOptions) pixelBounds() (width, height int) {
	w, h := o.CanvasSize()

	return int(math.Ceil(w)), int(math.Ceil(h))
}

// eachStroke generates every glyph of the sheet in row-major order and
// hands each segment to fn, already transformed to pixel coordinates.
func (o SheetOptions) eachStroke(a *glyph.Alphabet, fn func(x1, y1, x2, y2 float64)) {
	cell := o.Scale + o.Spacing
	for row := 0; row < o.Rows; row++ {
		offsetY := o.Spacing + cell*float64(row)
		for col := 0; col < o.Columns; col++ {
			offsetX := o.Spacing + cell*float64(col)
			seed := o.FirstSeed + uint64(row*o.Columns+col)
			for _, l := range a.Generate(seed).Lines() {
				fn(
					offsetX+l.Start.X*o.Scale, offsetY+l.Start.Y*o.Scale,
					offsetX+l.End.X*o.Scale, offsetY+l.End.Y*o.Scale,
				)
			}
		}
	}
}
