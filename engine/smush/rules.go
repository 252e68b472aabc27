package smush

import "strings"

// rule is an entry of the smushing decision table.
type rule struct {
	bit   Rules
	merge func(l, r, hardblank rune) (rune, bool)
}

// table lists the smushing rules in order of priority. The first rule
// which is enabled and matches decides.
var table = [...]rule{
	{EqualChar, equalChar},
	{Underscore, underscore},
	{Hierarchy, hierarchy},
	{OppositePair, oppositePair},
	{BigX, bigX},
	{HardblankRule, hardblanks},
}

const borderChars = `|/\[]{}()<>`

func equalChar(l, r, hardblank rune) (rune, bool) {
	if l == r && l != hardblank {
		return l, true
	}
	return 0, false
}

func underscore(l, r, _ rune) (rune, bool) {
	if l == '_' && strings.ContainsRune(borderChars, r) {
		return r, true
	}
	if r == '_' && strings.ContainsRune(borderChars, l) {
		return l, true
	}
	return 0, false
}

// rank orders classes of border characters: | < /\ < [] < {} < () < <>
func rank(c rune) int {
	switch c {
	case '|':
		return 1
	case '/', '\\':
		return 2
	case '[', ']':
		return 3
	case '{', '}':
		return 4
	case '(', ')':
		return 5
	case '<', '>':
		return 6
	}
	return 0
}

func hierarchy(l, r, _ rune) (rune, bool) {
	rl, rr := rank(l), rank(r)
	if rl == 0 || rr == 0 || rl == rr {
		return 0, false
	}
	if rl > rr {
		return l, true
	}
	return r, true
}

func oppositePair(l, r, _ rune) (rune, bool) {
	switch string([]rune{l, r}) {
	case "[]", "][", "{}", "}{", "()", ")(":
		return '|', true
	}
	return 0, false
}

func bigX(l, r, _ rune) (rune, bool) {
	switch {
	case l == '/' && r == '\\':
		return '|', true
	case l == '\\' && r == '/':
		return 'Y', true
	case l == '>' && r == '<':
		return 'X', true
	}
	return 0, false
}

func hardblanks(l, r, hardblank rune) (rune, bool) {
	if l == hardblank && r == hardblank {
		return hardblank, true
	}
	return 0, false
}

// Resolve decides how two seam characters merge: l is the rightmost
// character of the left glyph, r the leftmost one of the right glyph.
// It returns the merged character and true, or false if the characters
// cannot merge and therefore must not overlap.
//
// A blank always yields to the other character, in modes Fitting and
// Smushing. Apart from that, only mode Smushing merges characters, by the
// first matching rule of lyt.Rules. With universal smushing, the character
// of the glyph added last wins (the right one, or the left one for
// right-to-left layout), except that a visible character always wins over
// a hardblank.
func Resolve(l, r rune, lyt Layout) (rune, bool) {
	c, _, ok := Match(l, r, lyt)
	return c, ok
}

// Match is like Resolve, but reports the rule which decided. Merges of
// blanks and universal smushing report rule 0.
func Match(l, r rune, lyt Layout) (rune, Rules, bool) {
	if lyt.Mode == FullWidth {
		return 0, 0, false
	}
	if l == ' ' {
		return r, 0, true
	}
	if r == ' ' {
		return l, 0, true
	}
	if lyt.Mode != Smushing {
		return 0, 0, false
	}
	if lyt.Rules == 0 {
		switch {
		case l == lyt.Hardblank:
			return r, 0, true
		case r == lyt.Hardblank:
			return l, 0, true
		case lyt.RightToLeft:
			return l, 0, true
		}
		return r, 0, true
	}
	hb := l == lyt.Hardblank || r == lyt.Hardblank
	for _, rl := range table {
		if lyt.Rules&rl.bit == 0 || (hb && rl.bit != HardblankRule) {
			continue
		}
		if c, ok := rl.merge(l, r, lyt.Hardblank); ok {
			return c, rl.bit, true
		}
	}
	return 0, 0, false
}
