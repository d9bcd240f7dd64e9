package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"github.com/fennwick/symbolgen/glyph"
)

// SVG writes the alphabet sheet as an SVG document: a white page with
// every stroke drawn in black at SheetOptions.LineWidth with round
// caps. Output is deterministic for fixed inputs.
//
// Returns ErrNilAlphabet or ErrSheetGeometry before anything is
// written.
func SVG(w io.Writer, a *glyph.Alphabet, opts SheetOptions) error {
	if a == nil {
		return ErrNilAlphabet
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	width, height := opts.CanvasSize()
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Gstyle(fmt.Sprintf("stroke:black;stroke-width:%g;stroke-linecap:round", opts.LineWidth))
	opts.eachStroke(a, func(x1, y1, x2, y2 float64) {
		canvas.Line(x1, y1, x2, y2)
	})
	canvas.Gend()
	canvas.End()

	return nil
}
