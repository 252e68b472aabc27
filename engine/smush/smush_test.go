package smush

import (
	"testing"

	"github.com/npillmayer/figtype/core/font"
	"github.com/npillmayer/figtype/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFromHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.layout")
	defer teardown()
	//
	for i, test := range []struct {
		old   int
		full  option.Int64T
		mode  Mode
		rules Rules
	}{
		{-1, option.Int64(), FullWidth, 0},
		{0, option.Int64(), Fitting, 0},
		{15, option.Int64(), Smushing, EqualChar | Underscore | Hierarchy | OppositePair},
		{63, option.Int64(), Smushing, AllRules},
		{-1, option.SomeInt64(24463), Smushing, EqualChar | Underscore | Hierarchy | OppositePair},
		{15, option.SomeInt64(0), FullWidth, 0},
		{-1, option.SomeInt64(64), Fitting, 0},
		{0, option.SomeInt64(128), Smushing, 0},
		{0, option.SomeInt64(64 + 3), Fitting, EqualChar | Underscore},
	} {
		h := font.NewHeader('$', 4, 3, 8, test.old)
		h.FullLayout = test.full
		lyt := FromHeader(h)
		assert.Equal(t, test.mode, lyt.Mode, "test #%d", i)
		assert.Equal(t, test.rules, lyt.Rules, "test #%d", i)
		assert.Equal(t, '$', lyt.Hardblank)
	}
}

func TestVerticalLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.layout")
	defer teardown()
	//
	h := font.NewHeader('$', 4, 3, 8, 15)
	h.FullLayout = option.SomeInt64(24463) // standard.flf
	lyt := FromHeader(h)
	assert.Equal(t, Smushing, lyt.VerticalMode)
	assert.Equal(t, VEqualChar|VUnderscore|VHierarchy|VHorizontalLine|VVerticalLine, lyt.VerticalRules)
	h.FullLayout = option.SomeInt64(8192 + 64)
	assert.Equal(t, Fitting, FromHeader(h).VerticalMode)
	h.FullLayout = option.Int64()
	assert.Equal(t, FullWidth, FromHeader(h).VerticalMode)
}

func TestDirection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.layout")
	defer teardown()
	//
	h := font.NewHeader('$', 4, 3, 8, 0)
	assert.False(t, FromHeader(h).RightToLeft)
	h.PrintDirection = option.SomeInt64(1)
	assert.True(t, FromHeader(h).RightToLeft)
}

func TestRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.layout")
	defer teardown()
	//
	for i, test := range []struct {
		l, r   rune
		rules  Rules
		merged rune
		ok     bool
	}{
		{'|', '|', EqualChar, '|', true},
		{'#', '#', EqualChar, '#', true},
		{'$', '$', EqualChar, 0, false},
		{'a', 'b', EqualChar, 0, false},
		{'_', '/', Underscore, '/', true},
		{'(', '_', Underscore, '(', true},
		{'_', 'x', Underscore, 0, false},
		{'|', '/', Hierarchy, '/', true},
		{'/', '[', Hierarchy, '[', true},
		{']', '{', Hierarchy, '{', true},
		{')', '}', Hierarchy, ')', true},
		{'<', '(', Hierarchy, '<', true},
		{'/', '\\', Hierarchy, 0, false},
		{'[', ']', OppositePair, '|', true},
		{'}', '{', OppositePair, '|', true},
		{')', '(', OppositePair, '|', true},
		{'(', ']', OppositePair, 0, false},
		{'/', '\\', BigX, '|', true},
		{'\\', '/', BigX, 'Y', true},
		{'>', '<', BigX, 'X', true},
		{'<', '>', BigX, 0, false},
		{'$', '$', HardblankRule, '$', true},
		{'$', 'x', HardblankRule, 0, false},
		{'$', '|', AllRules &^ HardblankRule, 0, false},
		{' ', 'x', 0, 'x', true},
		{'x', ' ', EqualChar, 'x', true},
	} {
		lyt := Layout{Mode: Smushing, Rules: test.rules, Hardblank: '$'}
		if test.rules == 0 {
			lyt.Rules = EqualChar
		}
		merged, ok := Resolve(test.l, test.r, lyt)
		assert.Equal(t, test.ok, ok, "test #%d: %q + %q", i, test.l, test.r)
		assert.Equal(t, test.merged, merged, "test #%d: %q + %q", i, test.l, test.r)
	}
}

func TestRulePriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.layout")
	defer teardown()
	//
	for i, rl := range table {
		assert.Equal(t, Rules(1<<i), rl.bit, "rule table out of order at #%d", i)
	}
	lyt := Layout{Mode: Smushing, Rules: AllRules, Hardblank: '$'}
	c, rule, ok := Match('|', '|', lyt)
	assert.True(t, ok)
	assert.Equal(t, '|', c)
	assert.Equal(t, EqualChar, rule, "equal rule expected to win")
	_, rule, _ = Match('_', '|', lyt)
	assert.Equal(t, Underscore, rule)
	_, rule, _ = Match('/', '\\', lyt)
	assert.Equal(t, BigX, rule)
	_, rule, _ = Match('[', ']', lyt)
	assert.Equal(t, OppositePair, rule)
	_, rule, _ = Match('$', '$', lyt)
	assert.Equal(t, HardblankRule, rule)
}

func TestModes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.layout")
	defer teardown()
	//
	full := Layout{Mode: FullWidth, Hardblank: '$'}
	_, ok := Resolve(' ', 'x', full)
	assert.False(t, ok, "full width never overlaps")
	fit := full.WithMode(Fitting)
	c, ok := Resolve(' ', 'x', fit)
	assert.True(t, ok)
	assert.Equal(t, 'x', c)
	_, ok = Resolve('x', 'x', fit)
	assert.False(t, ok, "fitting never merges visible characters")
	_, ok = Resolve('$', ' ', fit)
	assert.True(t, ok, "blanks yield to hardblanks")
}

func TestUniversalSmushing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.layout")
	defer teardown()
	//
	lyt := Layout{Hardblank: '$'}.WithRules(0)
	assert.True(t, lyt.Universal())
	c, _ := Resolve('a', 'b', lyt)
	assert.Equal(t, 'b', c)
	c, _ = Resolve('$', 'b', lyt)
	assert.Equal(t, 'b', c)
	c, _ = Resolve('a', '$', lyt)
	assert.Equal(t, 'a', c)
	lyt.RightToLeft = true
	c, _ = Resolve('a', 'b', lyt)
	assert.Equal(t, 'a', c)
	c, _ = Resolve('$', 'b', lyt)
	assert.Equal(t, 'b', c)
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.layout")
	defer teardown()
	//
	lyt := Layout{Mode: Smushing, Rules: AllRules, Hardblank: '$'}
	chars := []rune(` _|/\[]{}()<>$ax`)
	for _, l := range chars {
		for _, r := range chars {
			c1, ok1 := Resolve(l, r, lyt)
			c2, ok2 := Resolve(l, r, lyt)
			assert.Equal(t, c1, c2)
			assert.Equal(t, ok1, ok2)
		}
	}
}

func TestRulesString(t *testing.T) {
	assert.Equal(t, "universal", Rules(0).String())
	assert.Equal(t, "equal|big-x", (EqualChar | BigX).String())
	assert.Equal(t, "smushing(equal) rtl", Layout{Mode: Smushing, Rules: EqualChar, RightToLeft: true}.String())
}
