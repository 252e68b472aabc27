/*
Package compose renders text into FIGfont banners.

Rendering walks the input code point by code point, looks up each glyph in
a font and places it next to the output accumulated so far. How far a
glyph may slide into the existing output is decided row by row, using the
layout rules of package smush; the smallest of these per-row overlaps is
applied to all rows, keeping the glyph's shape intact.

Output is broken into line groups whenever the next glyph would exceed the
configured output width. Every line group consists of exactly as many rows
as the font is high.

Rendering is a pure function of font, text and options. Fonts are never
modified, so a single font may be shared by concurrent renderers.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compose

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'figtype.compose'.
func tracer() tracing.Trace {
	return tracing.Select("figtype.compose")
}
