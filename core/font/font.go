package font

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/figtype/core/option"
)

// Direction is the print direction of a font.
type Direction int

// Print directions as stored in a FIGfont header.
const (
	LeftToRight Direction = 0
	RightToLeft Direction = 1
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// Legacy layout codes with a special meaning; values 1…63 are sets of
// smushing rules.
const (
	OldLayoutFullWidth = -1
	OldLayoutFitting   = 0
)

// Required characters of every FIGfont.
const (
	FirstRequired rune = 32
	LastRequired  rune = 126
)

// deutsch lists the code points of the untagged glyphs following '~' in
// FLF 2 fonts: Ä Ö Ü ä ö ü ß.
var deutsch = [7]rune{196, 214, 220, 228, 246, 252, 223}

// Header holds the parameters from the first line of a FIGfont.
//
//     flf2a$ 6 5 16 15 11 0 24463 229
//
// PrintDirection, FullLayout and CodetagCount are optional in the format;
// they are None if absent. Note that the zero value of option.Int64T is not
// None, use NewHeader to create a header without optional fields.
type Header struct {
	Signature      string // "flf2a"
	Hardblank      rune
	Height         int
	Baseline       int
	MaxLength      int
	OldLayout      int
	CommentLines   int
	PrintDirection option.Int64T
	FullLayout     option.Int64T
	CodetagCount   option.Int64T
}

// NewHeader creates a header with the required fields set and all
// optional fields absent.
func NewHeader(hardblank rune, height, baseline, maxlen, oldLayout int) Header {
	return Header{
		Signature:      "flf2a",
		Hardblank:      hardblank,
		Height:         height,
		Baseline:       baseline,
		MaxLength:      maxlen,
		OldLayout:      oldLayout,
		PrintDirection: option.Int64(),
		FullLayout:     option.Int64(),
		CodetagCount:   option.Int64(),
	}
}

// Direction returns the print direction declared by the header. Fonts not
// declaring one print left-to-right.
func (h Header) Direction() Direction {
	d := option.Safe(h.PrintDirection.Match(option.Of{
		option.None: LeftToRight,
		1:           RightToLeft,
		option.Some: LeftToRight,
	}))
	return d.(Direction)
}

var errIllegalDirection = errors.New("print direction must be 0 or 1")

func (h Header) String() string {
	return fmt.Sprintf("%s%c %d %d %d %d %d %v %v %v", h.Signature, h.Hardblank,
		h.Height, h.Baseline, h.MaxLength, h.OldLayout, h.CommentLines,
		h.PrintDirection, h.FullLayout, h.CodetagCount)
}

// validate checks the header fields for consistency. line is the
// line number to report.
func (h Header) validate(line int) error {
	if h.Hardblank == 0 || h.Hardblank == ' ' {
		return parseErr(MalformedHeader, line, "invalid hardblank %q", h.Hardblank)
	}
	if h.Height < 1 {
		return parseErr(MalformedHeader, line, "height must be positive, is %d", h.Height)
	}
	if h.Baseline < 0 || h.Baseline > h.Height {
		return parseErr(MalformedHeader, line, "baseline %d outside of glyph height %d",
			h.Baseline, h.Height)
	}
	if h.MaxLength < 1 {
		return parseErr(MalformedHeader, line, "max length must be positive, is %d", h.MaxLength)
	}
	if h.OldLayout < OldLayoutFullWidth || h.OldLayout > 63 {
		return parseErr(UnknownLayoutCode, line, "old layout %d not in [-1…63]", h.OldLayout)
	}
	if h.CommentLines < 0 {
		return parseErr(MalformedHeader, line, "negative comment line count %d", h.CommentLines)
	}
	if _, err := h.PrintDirection.Match(option.Of{
		option.None: LeftToRight,
		0:           LeftToRight,
		1:           RightToLeft,
		option.Some: option.Fail(errIllegalDirection),
	}); err != nil {
		return parseErr(MalformedHeader, line, "%v, is %v", err, h.PrintDirection)
	}
	if !h.FullLayout.IsNone() {
		if l := h.FullLayout.Unwrap(); l < 0 || l > 32767 {
			return parseErr(UnknownLayoutCode, line, "full layout %d not in [0…32767]", l)
		}
	}
	if !h.CodetagCount.IsNone() && h.CodetagCount.Unwrap() < 0 {
		return parseErr(MalformedHeader, line, "negative code-tag count %d", h.CodetagCount)
	}
	return nil
}

// --- Font ------------------------------------------------------------------

// Font is a parsed FIGfont. Fonts are immutable; all accessors return copies
// or immutable values, so a font may be used by concurrent renderers.
type Font struct {
	header  Header
	comment []string
	glyphs  *GlyphTable
}

// NewFont creates a font from a header and a set of glyphs, given as rows of
// text (without end marks). Every glyph must have exactly h.Height rows.
// The comment line count of the header is set from comment.
//
// Contrary to Parse, NewFont does not require glyphs for the ASCII range.
// This is useful for tests and for programmatically constructed fonts.
func NewFont(h Header, glyphs map[rune][]string, comment ...string) (*Font, error) {
	if h.Signature == "" {
		h.Signature = "flf2a"
	}
	h.CommentLines = len(comment)
	if err := h.validate(0); err != nil {
		return nil, err
	}
	f := &Font{
		header:  h,
		comment: append([]string(nil), comment...),
		glyphs:  newGlyphTable(),
	}
	for r, rows := range glyphs {
		if len(rows) != h.Height {
			return nil, parseErr(InvalidGlyphRowCount, 0, "glyph %U has %d rows, font height is %d",
				r, len(rows), h.Height)
		}
		f.glyphs.put(r, makeGlyph(rows))
	}
	return f, nil
}

// Header returns a copy of the font's header.
func (f *Font) Header() Header {
	return f.header
}

// Hardblank returns the font's hardblank character.
func (f *Font) Hardblank() rune {
	return f.header.Hardblank
}

// Height returns the number of rows of every glyph.
func (f *Font) Height() int {
	return f.header.Height
}

// Baseline returns the baseline of the font, i.e. the number of rows from
// the top of a glyph to the baseline.
func (f *Font) Baseline() int {
	return f.header.Baseline
}

// Direction returns the font's print direction.
func (f *Font) Direction() Direction {
	return f.header.Direction()
}

// Comment returns the comment section of the font, lines separated by
// newlines.
func (f *Font) Comment() string {
	return strings.Join(f.comment, "\n")
}

// CommentLines returns the comment section of the font as a slice of lines.
func (f *Font) CommentLines() []string {
	return append([]string(nil), f.comment...)
}

// Glyph looks up the glyph for code point r.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if f == nil || f.glyphs == nil {
		return Glyph{}, false
	}
	return f.glyphs.Lookup(r)
}

// Len returns the number of glyphs defined by the font.
func (f *Font) Len() int {
	if f == nil || f.glyphs == nil {
		return 0
	}
	return f.glyphs.Len()
}

// CodePoints returns the code points covered by the font, in ascending order.
func (f *Font) CodePoints() []rune {
	if f == nil || f.glyphs == nil {
		return nil
	}
	return f.glyphs.CodePoints()
}

// Glyphs returns the glyph table of the font.
func (f *Font) Glyphs() *GlyphTable {
	return f.glyphs
}
