package main

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/figtype/engine/compose"
)

func optionsFromFlags(direction, layout, missing, justify string) (opts compose.Options, err error) {
	if opts.Direction, err = parseDirection(direction); err != nil {
		return
	}
	if opts.Layout, err = parseLayout(layout); err != nil {
		return
	}
	if opts.Missing, opts.Substitute, err = parseMissing(missing); err != nil {
		return
	}
	opts.Justify, err = parseJustification(justify)
	return
}

func parseDirection(s string) (compose.Direction, error) {
	switch strings.ToLower(s) {
	case "", "font":
		return compose.DirectionFont, nil
	case "ltr", "left-to-right":
		return compose.DirectionLTR, nil
	case "rtl", "right-to-left":
		return compose.DirectionRTL, nil
	}
	return compose.DirectionFont, core.Error(core.EINVALID, "unknown print direction: %s", s)
}

func parseLayout(s string) (compose.LayoutOverride, error) {
	switch strings.ToLower(s) {
	case "", "default", "font":
		return compose.LayoutDefault, nil
	case "full", "full-width":
		return compose.LayoutFull, nil
	case "fitted", "fitting", "kerning":
		return compose.LayoutFitted, nil
	case "smushed", "smushing":
		return compose.LayoutSmushed, nil
	case "universal":
		return compose.LayoutUniversal, nil
	}
	return compose.LayoutDefault, core.Error(core.EINVALID, "unknown layout: %s", s)
}

// parseMissing parses a missing-character policy. A single character
// selects substitution with that character's glyph.
func parseMissing(s string) (compose.MissingPolicy, rune, error) {
	switch strings.ToLower(s) {
	case "", "fail":
		return compose.FailOnMissing, 0, nil
	case "space", "blank":
		return compose.SubstituteSpace, 0, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return compose.SubstituteRune, r, nil
	}
	return compose.FailOnMissing, 0, core.Error(core.EINVALID, "unknown missing-character policy: %s", s)
}

func parseJustification(s string) (compose.Justification, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return compose.JustifyLeft, nil
	case "center", "centre":
		return compose.JustifyCenter, nil
	case "right":
		return compose.JustifyRight, nil
	}
	return compose.JustifyLeft, core.Error(core.EINVALID, "unknown justification: %s", s)
}
