/*
Package smush decides how adjacent glyphs of a FIGfont may be merged.

Horizontal layout of FIGfont glyphs knows three modes:

* Full width: glyphs simply abut, keeping their full width.

* Fitting (kerning): glyphs slide together until they touch, but no
character is merged.

* Smushing: glyphs slide one step further and the characters at the seam
are merged according to a set of rules.

Which mode applies is derived from a font's header (see FromHeader). The
merge decision for a pair of seam characters is a pure function (see
Resolve), driven by an ordered table of smushing rules.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package smush

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'figtype.layout'.
func tracer() tracing.Trace {
	return tracing.Select("figtype.layout")
}
