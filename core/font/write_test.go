package font

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/figtype/core/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	extra := "0x2764\n" + glyphBlock([]string{"<@", "<@"}, "#") +
		"196\n" + glyphBlock([]string{"$A$ ", " _  "}, "@")
	data := testFont("flf2a$ 2 1 4 15 2 0 143 2", 2, []string{"first comment", ""}, extra)
	f := parseString(t, data)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))
	g := parseString(t, buf.String())
	if diff := cmp.Diff(snapshot(f), snapshot(g)); diff != "" {
		t.Errorf("font changed during round trip (-before +after):\n%s", diff)
	}
	ae, _ := g.Glyph('Ä')
	assert.Equal(t, "$A$ ", ae.Row(0), "hardblanks and trailing blanks should survive")
}

func TestWriteEndMarkSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	mark, ok := endMarkFor(makeGlyph([]string{"ab", "c@"}))
	assert.True(t, ok)
	assert.Equal(t, '#', mark)
	mark, ok = endMarkFor(makeGlyph([]string{"@", "#", "$", "%", "&", "*", "!"}))
	assert.False(t, ok)
	assert.Equal(t, rune(0), mark)
}

func TestWriteHeaderLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	h := NewHeader('$', 6, 5, 16, 15)
	h.CommentLines = 11
	assert.Equal(t, "flf2a$ 6 5 16 15 11", headerLine(h))
	h.CodetagCount = option.SomeInt64(229)
	assert.Equal(t, "flf2a$ 6 5 16 15 11 0 143 229", headerLine(h))
	h.FullLayout = option.SomeInt64(24463)
	assert.Equal(t, "flf2a$ 6 5 16 15 11 0 24463 229", headerLine(h))
}

func TestWriteIncompleteFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	f, err := NewFont(NewHeader('$', 1, 1, 2, 0), map[rune][]string{'H': {"H"}})
	require.NoError(t, err)
	var buf strings.Builder
	err = Write(&buf, f)
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Equal(t, 0, buf.Len(), "no partial output expected")
}

func TestWriteTagsBelowRequiredRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figtype.font")
	defer teardown()
	//
	glyphs := make(map[rune][]string)
	for r := FirstRequired; r <= LastRequired; r++ {
		glyphs[r] = glyphRows(r, 1)
	}
	glyphs[0] = []string{"?"}    // missing-character glyph
	glyphs[7] = []string{"bell"} // control character
	glyphs[0xe9] = []string{"e"}
	f, err := NewFont(NewHeader('$', 1, 1, 6, 0), glyphs)
	require.NoError(t, err)
	require.Equal(t, 98, f.Len())
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, f))
	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, " 0@@", lines[1], "space glyph must follow the header")
	assert.Equal(t, "~0@@", lines[95])
	assert.Equal(t, "0  U+0000", lines[96])
	assert.Equal(t, "7  U+0007", lines[98])
	assert.Equal(t, "233  U+00E9", lines[100])
	g := parseString(t, buf.String())
	if diff := cmp.Diff(snapshot(f), snapshot(g)); diff != "" {
		t.Errorf("font changed during round trip (-before +after):\n%s", diff)
	}
	space, ok := g.Glyph(' ')
	require.True(t, ok)
	assert.Equal(t, []string{" 0"}, space.Rows())
	missing, ok := g.Glyph(0)
	require.True(t, ok)
	assert.Equal(t, "?", missing.Row(0))
}
