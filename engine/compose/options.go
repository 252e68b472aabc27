package compose

import (
	"github.com/npillmayer/figtype/core/font"
	"github.com/npillmayer/figtype/engine/smush"
)

// Defaults for Options fields left at their zero value.
const (
	DefaultWidth    = 80
	DefaultMaxInput = 8192
)

// MissingPolicy says what to do with characters a font has no glyph for.
type MissingPolicy int

// Missing-character policies. There is no policy to silently skip a
// character.
const (
	FailOnMissing   MissingPolicy = iota // return UnknownCharacterNoFallback
	SubstituteSpace                      // blank glyph as wide as the font's space
	SubstituteRune                       // glyph of Options.Substitute
)

// Direction overrides a font's print direction.
type Direction int

// Print directions.
const (
	DirectionFont Direction = iota // as declared by the font
	DirectionLTR
	DirectionRTL
)

// LayoutOverride overrides a font's horizontal layout.
type LayoutOverride int

// Layout overrides.
const (
	LayoutDefault   LayoutOverride = iota // as declared by the font
	LayoutFull                            // full width
	LayoutFitted                          // fitting (kerning)
	LayoutSmushed                         // smushing with the font's rules
	LayoutUniversal                       // universal smushing
)

// Justification aligns line groups within the output width.
type Justification int

// Justifications.
const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
)

// Options control rendering. The zero value is usable: output width 80,
// the font's direction and layout, failing on missing characters.
type Options struct {
	Width      int           // maximum output width in columns; < 0 means unlimited
	Direction  Direction     // print direction
	Layout     LayoutOverride
	Missing    MissingPolicy // policy for characters without a glyph
	Substitute rune          // replacement character for SubstituteRune
	MaxInput   int           // maximum number of input code points; < 0 means unlimited
	WrapWords  bool          // break line groups at spaces
	Justify    Justification // alignment within Width
	TrimRight  bool          // remove trailing blanks from output rows
}

func (o Options) width() int {
	if o.Width == 0 {
		return DefaultWidth
	}
	return o.Width
}

func (o Options) maxInput() int {
	if o.MaxInput == 0 {
		return DefaultMaxInput
	}
	return o.MaxInput
}

// layout resolves the layout for f under these options.
func (o Options) layout(f *font.Font) smush.Layout {
	lyt := smush.FromHeader(f.Header())
	switch o.Layout {
	case LayoutFull:
		lyt = lyt.WithMode(smush.FullWidth)
	case LayoutFitted:
		lyt = lyt.WithMode(smush.Fitting)
	case LayoutSmushed:
		lyt = lyt.WithRules(lyt.Rules)
	case LayoutUniversal:
		lyt = lyt.WithRules(0)
	}
	switch o.Direction {
	case DirectionLTR:
		lyt.RightToLeft = false
	case DirectionRTL:
		lyt.RightToLeft = true
	}
	return lyt
}
