/*
Package font is for FIGfont handling.

A FIGfont (file extension ".flf") describes an ASCII-art typeface in plain
text. We stick to the following nomenclature:

* A "font" is a parsed FIGfont: a header, comment lines and a table of glyphs.
Fonts are immutable after parsing and may be shared between goroutines.

* A "glyph" is the multi-row representation of a single character. All glyphs
of a font have the same number of rows (the font's height).

* The "hardblank" is a placeholder character within glyph rows. It behaves
like a visible character during layout and is output as a space.

The FIGfont format is documented in the file "figfont.txt" of the FIGlet
distribution, see http://www.figlet.org/.

Parsing is strict: malformed input is rejected with a *ParseError carrying
the offending line number, never silently repaired.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'figtype.font'
func tracer() tracing.Trace {
	return tracing.Select("figtype.font")
}
