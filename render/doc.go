// Package render lays glyph alphabets out on a sheet and writes them
// as SVG or PNG. It is a pure consumer of the glyph package: it scales
// each segment's normalized endpoints by a pixel scale, offsets them
// into the glyph's grid cell, and strokes them with a fixed line width
// and round caps. Nothing here feeds back into generation.
//
// A sheet is Rows×Columns glyph cells; the glyph at (row, col) is
// generated from seed FirstSeed + row·Columns + col, so one sheet walks
// a contiguous seed range — an alphabet page.
//
// Rendering is deterministic: the same alphabet and SheetOptions
// produce byte-identical output.
package render
