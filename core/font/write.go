package font

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/figtype/core/option"
)

// endMarks are the candidates for end marks, in order of preference.
const endMarks = "@#$%&*!"

// Write serializes a font in FIGfont format. Parsing the output of Write
// yields a font equal to f.
//
// The required glyphs 32…126 come first, all other glyphs follow as
// code-tagged glyphs in ascending order (tag 0 included). Write fails if f
// lacks a required glyph.
func Write(w io.Writer, f *Font) error {
	if f == nil {
		return core.Error(core.EINVALID, "cannot write nil font")
	}
	for r := FirstRequired; r <= LastRequired; r++ {
		if _, ok := f.Glyph(r); !ok {
			return core.Error(core.EINVALID, "font lacks glyph for required character %q", r)
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, headerLine(f.header))
	for _, line := range f.comment {
		fmt.Fprintln(bw, line)
	}
	for r := FirstRequired; r <= LastRequired; r++ {
		g, _ := f.Glyph(r)
		if err := writeGlyph(bw, r, g); err != nil {
			return err
		}
	}
	var err error
	f.glyphs.Each(func(r rune, g Glyph) {
		if err != nil || (r >= FirstRequired && r <= LastRequired) {
			return
		}
		fmt.Fprintf(bw, "%d  U+%04X\n", r, r)
		err = writeGlyph(bw, r, g)
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// headerLine formats a header. Optional fields are written up to the last
// one present; absent fields before it are filled with equivalent values.
func headerLine(h Header) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%c %d %d %d %d %d", h.Signature, h.Hardblank,
		h.Height, h.Baseline, h.MaxLength, h.OldLayout, h.CommentLines)
	n := 0
	switch {
	case !h.CodetagCount.IsNone():
		n = 3
	case !h.FullLayout.IsNone():
		n = 2
	case !h.PrintDirection.IsNone():
		n = 1
	}
	if n >= 1 {
		fmt.Fprintf(&b, " %d", h.PrintDirection.OrElse(0))
	}
	if n >= 2 {
		full := option.Safe(h.FullLayout.Match(option.Maybe{
			option.None: fullLayoutFromOld(h.OldLayout),
			option.Some: h.FullLayout.Unwrap(),
		}))
		fmt.Fprintf(&b, " %d", full)
	}
	if n >= 3 {
		fmt.Fprintf(&b, " %d", h.CodetagCount.Unwrap())
	}
	return b.String()
}

// fullLayoutFromOld converts a legacy layout code to the full layout code
// with the same horizontal meaning.
func fullLayoutFromOld(old int) int {
	switch {
	case old < 0:
		return 0
	case old == 0:
		return 64
	}
	return 128 | (old & 63)
}

func writeGlyph(w io.Writer, r rune, g Glyph) error {
	mark, ok := endMarkFor(g)
	if !ok {
		return core.Error(core.EINVALID, "no usable end mark for glyph %U", r)
	}
	for i, row := range g.rows {
		if i == len(g.rows)-1 {
			fmt.Fprintf(w, "%s%c%c\n", row, mark, mark)
		} else {
			fmt.Fprintf(w, "%s%c\n", row, mark)
		}
	}
	return nil
}

// endMarkFor selects an end mark which does not clash with the last
// character of any row.
func endMarkFor(g Glyph) (rune, bool) {
	for _, mark := range endMarks {
		clash := false
		for _, row := range g.rows {
			if last, _ := utf8.DecodeLastRuneInString(row); last == mark {
				clash = true
				break
			}
		}
		if !clash {
			return mark, true
		}
	}
	return 0, false
}
