// Command symbolgen renders alphabet sheets of procedurally generated
// line-glyphs as SVG or PNG.
//
// Usage:
//
//	symbolgen [flags]
//
// Example:
//
//	symbolgen -resolution 5 -density 3 -motif diagonal \
//	  -symmetry horizontal -format png -output alphabet.png
//
// Without -output the sheet is written to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fennwick/symbolgen/glyph"
	"github.com/fennwick/symbolgen/render"
)

func main() {
	var (
		resolution = flag.Int("resolution", 4, "grid positions per axis (min 2)")
		density    = flag.Int("density", 3, "walk attempts per grid position (min 1)")
		symmetry   = flag.String("symmetry", "asymmetric", "asymmetric|horizontal|vertical|horizontalvertical")
		motif      = flag.String("motif", "orthogonal", "orthogonal|diagonal")
		noDupes    = flag.Bool("suppress-duplicates", false, "drop repeated segments within one glyph")
		columns    = flag.Int("columns", 26, "glyph cells per row")
		rows       = flag.Int("rows", 4, "glyph rows per sheet")
		scale      = flag.Float64("scale", 25, "glyph cell edge in pixels")
		spacing    = flag.Float64("spacing", 25, "margin and cell gap in pixels")
		lineWidth  = flag.Float64("line-width", 4, "stroke width in pixels")
		seed       = flag.Uint64("seed", 0, "seed of the first glyph; cells advance it row-major")
		format     = flag.String("format", "svg", "svg|png")
		output     = flag.String("output", "", "output file; stdout if empty")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("symbolgen: ")

	sym, err := glyph.ParseSymmetry(*symmetry)
	if err != nil {
		log.Fatalln(err)
	}
	mot, err := glyph.ParseMotif(*motif)
	if err != nil {
		log.Fatalln(err)
	}

	alphabet, err := glyph.New(glyph.Options{
		Resolution:         *resolution,
		Density:            *density,
		Symmetry:           sym,
		Motif:              mot,
		SuppressDuplicates: *noDupes,
	})
	if err != nil {
		log.Fatalln(err)
	}

	sheet := render.SheetOptions{
		Columns:   *columns,
		Rows:      *rows,
		Scale:     *scale,
		Spacing:   *spacing,
		LineWidth: *lineWidth,
		FirstSeed: *seed,
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalln("could not create output file:", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Fatalln("could not close output file:", err)
			}
		}()
		out = f
	}

	switch *format {
	case "svg":
		err = render.SVG(out, alphabet, sheet)
	case "png":
		err = render.PNG(out, alphabet, sheet)
	default:
		err = fmt.Errorf("unknown format %q (want svg or png)", *format)
	}
	if err != nil {
		log.Fatalln(err)
	}
}
