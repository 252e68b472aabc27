package font

import (
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Glyph is the rendering of a single code point: a block of rows with
// identical height. Rows may contain the font's hardblank character, which
// will be output as a space. Glyph values are immutable.
type Glyph struct {
	rows  []string
	width int
}

func makeGlyph(rows []string) Glyph {
	g := Glyph{rows: append([]string(nil), rows...)}
	for _, row := range g.rows {
		if w := utf8.RuneCountInString(row); w > g.width {
			g.width = w
		}
	}
	return g
}

// Height returns the number of rows of g.
func (g Glyph) Height() int {
	return len(g.rows)
}

// Width returns the width of g in columns, i.e. the maximum row length in
// runes. Rows shorter than Width are to be considered padded with blanks.
func (g Glyph) Width() int {
	return g.width
}

// Row returns row i of g, or the empty string if i is out of range.
func (g Glyph) Row(i int) string {
	if i < 0 || i >= len(g.rows) {
		return ""
	}
	return g.rows[i]
}

// Rows returns a copy of the rows of g.
func (g Glyph) Rows() []string {
	return append([]string(nil), g.rows...)
}

// IsEmpty returns true if g has zero width.
func (g Glyph) IsEmpty() bool {
	return g.width == 0
}

// --- Glyph table -----------------------------------------------------------

// GlyphTable maps code points to glyphs. Iteration is ordered by code point.
type GlyphTable struct {
	tree *treemap.Map
}

func newGlyphTable() *GlyphTable {
	return &GlyphTable{tree: treemap.NewWith(utils.RuneComparator)}
}

// put inserts or replaces the glyph for r. It returns true if a previous
// glyph has been replaced.
func (gt *GlyphTable) put(r rune, g Glyph) bool {
	_, replaced := gt.tree.Get(r)
	gt.tree.Put(r, g)
	return replaced
}

// Lookup returns the glyph for code point r.
func (gt *GlyphTable) Lookup(r rune) (Glyph, bool) {
	if gt == nil {
		return Glyph{}, false
	}
	v, ok := gt.tree.Get(r)
	if !ok {
		return Glyph{}, false
	}
	return v.(Glyph), true
}

// Len returns the number of glyphs in the table.
func (gt *GlyphTable) Len() int {
	if gt == nil {
		return 0
	}
	return gt.tree.Size()
}

// CodePoints returns all code points of the table in ascending order.
func (gt *GlyphTable) CodePoints() []rune {
	if gt == nil {
		return nil
	}
	cps := make([]rune, 0, gt.tree.Size())
	it := gt.tree.Iterator()
	for it.Next() {
		cps = append(cps, it.Key().(rune))
	}
	return cps
}

// Each calls f for every glyph in ascending code point order.
func (gt *GlyphTable) Each(f func(r rune, g Glyph)) {
	if gt == nil {
		return
	}
	gt.tree.Each(func(k, v interface{}) {
		f(k.(rune), v.(Glyph))
	})
}
