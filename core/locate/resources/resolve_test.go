package resources

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/figtype/core/font"
	"github.com/npillmayer/figtype/core/font/fontregistry"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFontDir(t *testing.T, files map[string][]byte) string {
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
	}
	return dir
}

func termFont(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, font.Write(&buf, fontregistry.FallbackFont()))
	return buf.Bytes()
}

func TestResolvePackagedFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	//
	f, err := ResolveFont("Block").Font()
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, 5, f.Height())
	g, ok := f.Glyph('H')
	require.True(t, ok)
	assert.Equal(t, []string{"# # ", "# # ", "### ", "# # ", "# # "}, g.Rows())
	g, ok = f.Glyph('Ä')
	require.True(t, ok)
	assert.Equal(t, "# # ", g.Row(0))
	cached, ok := fontregistry.GlobalRegistry().Lookup("block")
	assert.True(t, ok)
	assert.Same(t, f, cached)
}

func TestResolveFromFontDir(t *testing.T) {
	dir := setupFontDir(t, map[string][]byte{
		"My Font.flf": termFont(t),
		"readme.txt":  []byte("not a font"),
	})
	teardown := testconfig.QuickConfig(t, map[string]string{
		"font-dir": dir,
	})
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelDebug)
	//
	f, err := ResolveFont("my font").Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.Height())
	fonts := ListFonts()
	assert.Contains(t, fonts, "my_font")
	assert.Contains(t, fonts, "block")
	assert.Contains(t, fonts, "term")
	assert.NotContains(t, fonts, "readme")
	term, err := ResolveFont("term").Font()
	require.NoError(t, err)
	assert.Same(t, fontregistry.FallbackFont(), term)
}

func TestResolveFontFile(t *testing.T) {
	dir := setupFontDir(t, map[string][]byte{
		"mono.flf": termFont(t),
	})
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	f, err := ResolveFont(filepath.Join(dir, "mono.flf")).Font()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Height())
	_, ok := fontregistry.GlobalRegistry().Lookup("mono")
	assert.True(t, ok)
}

func TestResolveMissingFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	f, err := ResolveFont("no-such-font").Font()
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Same(t, fontregistry.FallbackFont(), f)
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ResolveFont("no-such-font-either").Await(ctx)
	assert.Error(t, err)
}

func TestResolveSimilarFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	f, err := ResolveFont("Blo").Font()
	require.NoError(t, err, "unique prefix should resolve to block")
	assert.Equal(t, 5, f.Height())
	//
	f, err = ResolveFont("l.c").Font()
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Contains(t, core.UserMessage(err), "did you mean block?")
	assert.Same(t, fontregistry.FallbackFont(), f)
}

func TestResolveBrokenFont(t *testing.T) {
	dir := setupFontDir(t, map[string][]byte{
		"broken.flf": []byte("this is not a FIGfont\n"),
	})
	teardown := testconfig.QuickConfig(t, map[string]string{
		"font-dir": dir,
	})
	defer teardown()
	//
	f, err := ResolveFont("broken").Font()
	require.Error(t, err)
	assert.True(t, font.IsKind(err, font.MalformedHeader))
	assert.Equal(t, core.EFORMAT, core.Code(err))
	assert.Same(t, fontregistry.FallbackFont(), f)
	_, ok := fontregistry.GlobalRegistry().Lookup("broken")
	assert.False(t, ok)
}

func TestFigletNotConfigured(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	assert.Equal(t, "", queryFigletFontDir(""))
	assert.Equal(t, "", queryFigletFontDir("bin/figlet"))
	assert.Equal(t, "", queryFigletFontDir(filepath.Join(t.TempDir(), "figlet")))
}
