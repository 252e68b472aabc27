package compose

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/figtype/core/font"
	"github.com/npillmayer/figtype/engine/smush"
	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/norm"
)

// Render renders a sequence of code points with font f.
//
// Render fails with InputTooLong if text exceeds opts.MaxInput, with
// EmptyFont if f has no glyphs or text is empty, and with
// UnknownCharacterNoFallback for a character missing from f, unless
// opts.Missing selects a substitution. '\n' starts a new line group,
// '\t' is rendered as a space.
//
// No partial result is returned together with an error.
func Render(f *font.Font, text []rune, opts Options) (Result, error) {
	if limit := opts.maxInput(); limit > 0 && len(text) > limit {
		err := &RenderError{Kind: InputTooLong, Position: len(text), Limit: limit}
		tracer().Errorf("%v", err)
		return Result{}, err
	}
	if f == nil || f.Len() == 0 || len(text) == 0 {
		return Result{}, &RenderError{Kind: EmptyFont}
	}
	c := newCompositor(f, opts)
	tracer().Debugf("render %d code points, layout %v, width %d", len(text), c.lyt, c.width)
	for i, r := range text {
		if err := c.add(i, r); err != nil {
			tracer().Errorf("%v", err)
			return Result{}, err
		}
	}
	if len(c.line.text) > 0 || len(c.groups) == 0 {
		c.emit(c.line)
	}
	return Result{groups: c.groups}, nil
}

// RenderString renders a string with font f. The string is normalized to
// NFC and split into grapheme clusters. Each cluster is represented by its
// first code point, i.e. combining marks the font cannot compose are
// dropped. "\r\n" counts as a newline.
func RenderString(f *font.Font, text string, opts Options) (Result, error) {
	return Render(f, Codepoints(text), opts)
}

var graphemeClasses sync.Once

// Codepoints converts a string to the code points RenderString renders.
func Codepoints(text string) []rune {
	text = norm.NFC.String(text)
	graphemeClasses.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(text)
	l := gstr.Len()
	cps := make([]rune, 0, l)
	for i := 0; i < l; i++ {
		grphm := string(gstr.Nth(i))
		if grphm == "\r\n" {
			cps = append(cps, '\n')
			continue
		}
		r, _ := utf8.DecodeRuneInString(grphm)
		cps = append(cps, r)
	}
	return cps
}

// --- Compositor ------------------------------------------------------------

type compositor struct {
	font   *font.Font
	opts   Options
	lyt    smush.Layout
	height int
	width  int // maximum line width, < 0 for unlimited
	groups [][]string
	line   *line
}

// line accumulates the rows of the current line group. All rows have
// the same length.
type line struct {
	rows  [][]rune
	width int
	prevW int    // width of the glyph added last
	text  []rune // characters placed on this line
}

// block is a glyph with rows padded to its width.
type block struct {
	rows  [][]rune
	width int
}

func newCompositor(f *font.Font, opts Options) *compositor {
	c := &compositor{
		font:   f,
		opts:   opts,
		lyt:    opts.layout(f),
		height: f.Height(),
		width:  opts.width(),
	}
	c.line = c.newLine()
	return c
}

func (c *compositor) newLine() *line {
	return &line{rows: make([][]rune, c.height)}
}

func (c *compositor) add(pos int, r rune) error {
	switch r {
	case '\n':
		c.emit(c.line)
		c.line = c.newLine()
		return nil
	case '\t':
		r = ' '
	}
	b, err := c.glyph(pos, r)
	if err != nil {
		return err
	}
	ov := c.overlap(c.line, b)
	if c.overflows(b, ov) {
		if c.opts.WrapWords && r == ' ' {
			c.emit(c.line)
			c.line = c.newLine()
			return nil
		}
		c.breakLine()
		ov = c.overlap(c.line, b)
		if c.overflows(b, ov) {
			c.emit(c.line)
			c.line = c.newLine()
			ov = c.overlap(c.line, b)
		}
	}
	c.place(c.line, b, ov)
	c.line.text = append(c.line.text, r)
	return nil
}

func (c *compositor) overflows(b block, ov int) bool {
	return c.width >= 0 && len(c.line.text) > 0 && c.line.width+b.width-ov > c.width
}

// breakLine finishes the current line group. With word wrapping, the line
// is broken after its last word; the space in between is dropped.
func (c *compositor) breakLine() {
	ln := c.line
	if c.opts.WrapWords {
		if i := lastSpace(ln.text); i > 0 {
			tracer().Debugf("wrap line after %q", string(ln.text[:i]))
			c.emit(c.build(ln.text[:i]))
			c.line = c.build(ln.text[i+1:])
			return
		}
	}
	c.emit(ln)
	c.line = c.newLine()
}

// build composes a line from characters which have been placed before.
func (c *compositor) build(text []rune) *line {
	ln := c.newLine()
	for i, r := range text {
		b, err := c.glyph(i, r)
		if err != nil { // cannot happen for characters placed before
			panic(err)
		}
		c.place(ln, b, c.overlap(ln, b))
		ln.text = append(ln.text, r)
	}
	return ln
}

func lastSpace(text []rune) int {
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == ' ' {
			return i
		}
	}
	return -1
}

// glyph looks up the glyph for r, applying the missing-character policy.
func (c *compositor) glyph(pos int, r rune) (block, error) {
	if g, ok := c.font.Glyph(r); ok {
		return makeBlock(g), nil
	}
	switch c.opts.Missing {
	case SubstituteRune:
		if g, ok := c.font.Glyph(c.opts.Substitute); ok {
			return makeBlock(g), nil
		}
		fallthrough
	case SubstituteSpace:
		return c.blank(), nil
	}
	return block{}, &RenderError{Kind: UnknownCharacterNoFallback, Position: pos, CodePoint: r}
}

// blank creates a glyph of hardblanks as wide as the font's space. Using
// hardblanks keeps fitting and smushing from swallowing it.
func (c *compositor) blank() block {
	w := 1
	if g, ok := c.font.Glyph(' '); ok && g.Width() > 0 {
		w = g.Width()
	}
	b := block{rows: make([][]rune, c.height), width: w}
	for i := range b.rows {
		b.rows[i] = []rune(strings.Repeat(string(c.lyt.Hardblank), w))
	}
	return b
}

func makeBlock(g font.Glyph) block {
	b := block{rows: make([][]rune, g.Height()), width: g.Width()}
	for i := range b.rows {
		row := []rune(g.Row(i))
		for len(row) < b.width {
			row = append(row, ' ')
		}
		b.rows[i] = row
	}
	return b
}

// overlap calculates by how many columns glyph b may slide into line ln.
// For every row, this is the number of blank columns between the two
// (plus one if the characters at the seam may be merged). The minimum over
// all rows applies, but never more than the glyph's width.
func (c *compositor) overlap(ln *line, b block) int {
	if c.lyt.Mode == smush.FullWidth {
		return 0
	}
	maxOv := b.width
	for i := 0; i < c.height; i++ {
		left, right := ln.rows[i], b.rows[i]
		if c.lyt.RightToLeft {
			left, right = right, left
		}
		trail, lead := trailingBlanks(left), leadingBlanks(right)
		amt := trail + lead
		if trail < len(left) && lead < len(right) {
			if c.mergeable(left[len(left)-1-trail], right[lead], ln.prevW, b.width) {
				amt++
			}
		}
		if amt < maxOv {
			maxOv = amt
		}
	}
	return maxOv
}

// mergeable is true if two visible characters at the seam may merge.
// Glyphs narrower than 2 columns never merge visible characters.
func (c *compositor) mergeable(l, r rune, w1, w2 int) bool {
	if c.lyt.Mode != smush.Smushing || w1 < 2 || w2 < 2 {
		return false
	}
	_, ok := smush.Resolve(l, r, c.lyt)
	return ok
}

func (c *compositor) merge(l, r rune) rune {
	if m, ok := smush.Resolve(l, r, c.lyt); ok {
		return m
	}
	if l == ' ' {
		return r
	}
	return l
}

// place appends glyph b to line ln (or prepends it, for right-to-left
// layout), overlapping ov columns.
func (c *compositor) place(ln *line, b block, ov int) {
	for i := range ln.rows {
		out, g := ln.rows[i], b.rows[i]
		row := make([]rune, 0, ln.width+b.width-ov)
		if !c.lyt.RightToLeft {
			cut := ln.width - ov
			if cut > 0 {
				row = append(row, out[:cut]...)
			}
			for k := 0; k < ov; k++ {
				if p := cut + k; p >= 0 { // leading blanks of a glyph at line start are dropped
					row = append(row, c.merge(out[p], g[k]))
				}
			}
			row = append(row, g[ov:]...)
		} else {
			cut := b.width - ov
			row = append(row, g[:cut]...)
			for k := 0; k < ov && k < ln.width; k++ {
				row = append(row, c.merge(g[cut+k], out[k]))
			}
			if ov < ln.width {
				row = append(row, out[ov:]...)
			}
		}
		ln.rows[i] = row
	}
	ln.width += b.width - ov
	ln.prevW = b.width
}

// emit converts a line to output rows and appends it to the result.
func (c *compositor) emit(ln *line) {
	group := make([]string, c.height)
	pad := c.padding(ln.width)
	hardblank := c.lyt.Hardblank
	for i, row := range ln.rows {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", pad))
		for _, ch := range row {
			if ch == hardblank {
				ch = ' '
			}
			sb.WriteRune(ch)
		}
		s := sb.String()
		if c.opts.TrimRight {
			s = strings.TrimRight(s, " ")
		}
		group[i] = s
	}
	tracer().Debugf("line group of width %d: %q", ln.width, string(ln.text))
	c.groups = append(c.groups, group)
}

func (c *compositor) padding(w int) int {
	if c.width < 0 || w == 0 || w >= c.width {
		return 0
	}
	switch c.opts.Justify {
	case JustifyCenter:
		return (c.width - w) / 2
	case JustifyRight:
		return c.width - w
	}
	return 0
}

func leadingBlanks(row []rune) int {
	n := 0
	for n < len(row) && row[n] == ' ' {
		n++
	}
	return n
}

func trailingBlanks(row []rune) int {
	n := 0
	for n < len(row) && row[len(row)-1-n] == ' ' {
		n++
	}
	return n
}
