package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/fennwick/symbolgen/glyph"
)

// PNG writes the alphabet sheet as a PNG raster: white page, black
// strokes with round caps. Strokes are rasterized by distance test
// against pixel centers, so output is deterministic for fixed inputs.
//
// Returns ErrNilAlphabet or ErrSheetGeometry before anything is
// written; an encoder failure is returned as-is.
func PNG(w io.Writer, a *glyph.Alphabet, opts SheetOptions) error {
	if a == nil {
		return ErrNilAlphabet
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	width, height := opts.pixelBounds()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	opts.eachStroke(a, func(x1, y1, x2, y2 float64) {
		strokeRound(img, x1, y1, x2, y2, opts.LineWidth)
	})

	return png.Encode(w, img)
}

// strokeRound paints every pixel whose center lies within width/2 of
// the segment, which yields a solid stroke with round caps.
func strokeRound(img *image.RGBA, x1, y1, x2, y2, width float64) {
	r := width / 2
	bounds := img.Bounds()

	minX := max(bounds.Min.X, int(math.Floor(math.Min(x1, x2)-r)))
	maxX := min(bounds.Max.X-1, int(math.Ceil(math.Max(x1, x2)+r)))
	minY := max(bounds.Min.Y, int(math.Floor(math.Min(y1, y2)-r)))
	maxY := min(bounds.Max.Y-1, int(math.Ceil(math.Max(y1, y2)+r)))

	black := color.RGBA{A: 0xff}
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			cx := float64(px) + 0.5
			cy := float64(py) + 0.5
			if segmentDistance(cx, cy, x1, y1, x2, y2) <= r {
				img.SetRGBA(px, py, black)
			}
		}
	}
}

// segmentDistance returns the Euclidean distance from (px,py) to the
// closest point of the segment (x1,y1)-(x2,y2).
func segmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1

	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = ((px-x1)*dx + (py-y1)*dy) / l2
		t = math.Max(0, math.Min(1, t))
	}

	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
