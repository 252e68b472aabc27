package smush

import (
	"fmt"
	"strings"

	"github.com/npillmayer/figtype/core/font"
)

// Mode is a horizontal (or vertical) layout mode.
type Mode int

// Layout modes.
const (
	FullWidth Mode = iota // glyphs keep their full width ("kerning off")
	Fitting               // glyphs touch, no merging
	Smushing              // glyphs overlap by a column, seam characters merge
)

func (m Mode) String() string {
	switch m {
	case FullWidth:
		return "full-width"
	case Fitting:
		return "fitting"
	case Smushing:
		return "smushing"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Rules is a set of horizontal smushing rules, with bit values as in a
// FIGfont's layout codes.
type Rules uint8

// Horizontal smushing rules, in order of priority.
const (
	EqualChar    Rules = 1 << iota // 1: equal characters merge
	Underscore                     // 2: '_' is replaced by a border character
	Hierarchy                      // 4: stronger class of border characters wins
	OppositePair                   // 8: opposite brackets merge into '|'
	BigX                           // 16: slashes and angles form '|', 'Y', 'X'
	HardblankRule                  // 32: two hardblanks merge

	AllRules Rules = 63
)

var ruleNames = [...]string{"equal", "underscore", "hierarchy", "pair", "big-x", "hardblank"}

func (r Rules) String() string {
	if r == 0 {
		return "universal"
	}
	var names []string
	for i, name := range ruleNames {
		if r&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// VRules is a set of vertical smushing rules. Vertical layout is decoded
// from font headers, but not applied by this module.
type VRules uint8

// Vertical smushing rules.
const (
	VEqualChar VRules = 1 << iota // 256
	VUnderscore                   // 512
	VHierarchy                    // 1024
	VHorizontalLine               // 2048
	VVerticalLine                 // 4096
)

// Bits of a FIGfont full layout code.
const (
	fullRuleMask   = 63
	fullFitting    = 64
	fullSmushing   = 128
	fullVRuleShift = 8
	fullVRuleMask  = 31 << fullVRuleShift
	fullVFitting   = 8192
	fullVSmushing  = 16384
)

// Layout is the resolved layout of a font, possibly overridden by
// rendering options. Layout values are small and immutable; they are
// passed by value.
type Layout struct {
	Mode          Mode
	Rules         Rules // smushing rules, used in mode Smushing only
	Hardblank     rune
	RightToLeft   bool
	VerticalMode  Mode
	VerticalRules VRules
}

// FromHeader derives the layout of a font from its header.
//
// A full layout code takes precedence over the legacy layout code.
// Full layout: bit 128 selects smushing, with rules in bits 0…5, bit 64
// selects fitting, neither selects full width.
// Legacy layout: -1 means full width, 0 fitting, and positive values are
// smushing rules.
// Smushing with no rule set is "universal smushing".
func FromHeader(h font.Header) Layout {
	lyt := Layout{
		Hardblank:   h.Hardblank,
		RightToLeft: h.Direction() == font.RightToLeft,
	}
	if !h.FullLayout.IsNone() {
		full := h.FullLayout.Unwrap()
		lyt.Rules = Rules(full & fullRuleMask)
		switch {
		case full&fullSmushing != 0:
			lyt.Mode = Smushing
		case full&fullFitting != 0:
			lyt.Mode = Fitting
		default:
			lyt.Mode = FullWidth
		}
		lyt.VerticalRules = VRules((full & fullVRuleMask) >> fullVRuleShift)
		switch {
		case full&fullVSmushing != 0:
			lyt.VerticalMode = Smushing
		case full&fullVFitting != 0:
			lyt.VerticalMode = Fitting
		}
	} else {
		switch {
		case h.OldLayout < 0:
			lyt.Mode = FullWidth
		case h.OldLayout == 0:
			lyt.Mode = Fitting
		default:
			lyt.Mode = Smushing
			lyt.Rules = Rules(h.OldLayout & fullRuleMask)
		}
	}
	tracer().Debugf("layout from header: %v", lyt)
	return lyt
}

// Universal is true for smushing without any specific rule.
func (lyt Layout) Universal() bool {
	return lyt.Mode == Smushing && lyt.Rules == 0
}

// WithMode returns a copy of lyt with mode m.
func (lyt Layout) WithMode(m Mode) Layout {
	lyt.Mode = m
	return lyt
}

// WithRules returns a copy of lyt with mode Smushing and rules r. r == 0
// selects universal smushing.
func (lyt Layout) WithRules(r Rules) Layout {
	lyt.Mode = Smushing
	lyt.Rules = r & AllRules
	return lyt
}

func (lyt Layout) String() string {
	s := lyt.Mode.String()
	if lyt.Mode == Smushing {
		s += "(" + lyt.Rules.String() + ")"
	}
	if lyt.RightToLeft {
		s += " rtl"
	}
	return s
}
