package resources

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/figtype/core/font"
	"github.com/npillmayer/figtype/core/font/fontregistry"
	"github.com/npillmayer/schuko/gconf"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
	directoryResourceType
)

// NotFound returns an application error for a missing resource. If
// alternatives are given, the user message will suggest them.
func NotFound(res string, rtype resourceType, alternatives ...string) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s, using fallback font instead", res)
	case directoryResourceType:
		s = fmt.Sprintf("font directory not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	if len(alternatives) > 0 {
		s = fmt.Sprintf("%s (did you mean %s?)", s, strings.Join(alternatives, ", "))
	}
	err := core.WrapError(e, core.EMISSING, s)
	return err
}

//go:embed packaged/fonts/*.flf
var packaged embed.FS

const packagedFonts = "packaged/fonts"

// FontExt is the file extension of FIGfont files.
const FontExt = ".flf"

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *font.Font
	err  error
}

// FontPromise is returned by ResolveFont. Calling Font blocks until
// the font has been loaded.
type FontPromise interface {
	Font() (*font.Font, error)
	Await(ctx context.Context) (*font.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.Font, error)
}

func (loader fontLoader) Font() (*font.Font, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.Font, error) {
	return loader.await(ctx)
}

// ResolveFont resolves a FIGfont by name. name may be a font name like
// "Standard" or a path to a font file.
//
// If the font cannot be found or is invalid, the promise will return the
// registry's fallback font, together with an error.
func ResolveFont(name string) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		ch <- loadFont(name)
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.Font, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

func loadFont(name string) (result fontPlusErr) {
	registry := fontregistry.GlobalRegistry()
	fname := fontregistry.NormalizeFontname(name)
	if f, ok := registry.Lookup(fname); ok {
		tracer().Debugf("font %s found in registry", fname)
		return fontPlusErr{font: f}
	}
	var f *font.Font
	var err error
	if strings.ContainsRune(name, os.PathSeparator) {
		f, err = LoadFontFile(name)
	} else if f, err = loadPackagedFont(fname); f == nil && err == nil {
		for _, dir := range fontDirs() {
			if f, err = findFontIn(dir, fname); f != nil || err != nil {
				break
			}
		}
	}
	if f == nil {
		if err == nil {
			match, confidence := fontregistry.ClosestMatch(ListFonts(), fname)
			tracer().Debugf("closest match for font %s is %q, confidence %d", fname, match, confidence)
			switch {
			case confidence >= fontregistry.HighConfidence && match != fname:
				tracer().Infof("font %s not found, using %s", name, match)
				return loadFont(match)
			case confidence > fontregistry.NoConfidence:
				err = NotFound(name, fontResourceType, match)
			default:
				err = NotFound(name, fontResourceType)
			}
		}
		tracer().Errorf("%v", err)
		result.font, _ = registry.Font(fname)
		result.err = err
		return
	}
	registry.StoreFont(fname, f)
	result.font, result.err = registry.Font(fname)
	return
}

func loadPackagedFont(fname string) (*font.Font, error) {
	if fname == fontregistry.FallbackName {
		return fontregistry.FallbackFont(), nil
	}
	data, err := packaged.ReadFile(packagedFonts + "/" + fname + FontExt)
	if err != nil {
		return nil, nil
	}
	tracer().Debugf("found font as embedded font file %s", fname)
	return font.Parse(data)
}

// findFontIn searches a directory for a font file with normalized name
// fname. A missing directory is not an error.
func findFontIn(dir string, fname string) (*font.Font, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		tracer().Debugf("cannot read font directory %s: %v", dir, err)
		return nil, nil
	}
	for _, entry := range entries {
		if entry.IsDir() || !isFontFile(entry.Name()) {
			continue
		}
		if fontregistry.NormalizeFontname(entry.Name()) == fname {
			return LoadFontFile(filepath.Join(dir, entry.Name()))
		}
	}
	return nil, nil
}

// LoadFontFile reads and parses a FIGfont file.
func LoadFontFile(path string) (*font.Font, error) {
	tracer().Debugf("loading font file %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", path)
	}
	return font.Parse(data)
}

// fontDirs returns the directories to search for font files, in order.
func fontDirs() []string {
	var dirs []string
	if dir := gconf.GetString("font-dir"); dir != "" {
		dirs = append(dirs, dir)
	}
	if dir := figletFontDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	return dirs
}

func isFontFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), FontExt)
}

// ListFonts returns the sorted, normalized names of all fonts available to
// ResolveFont: the packaged fonts (including the fallback font) and the fonts found in the configured font
// directories. Fonts which have been registered programmatically are included
// as well.
func ListFonts() []string {
	names := map[string]struct{}{fontregistry.FallbackName: {}}
	entries, _ := fs.ReadDir(packaged, packagedFonts)
	for _, entry := range entries {
		names[fontregistry.NormalizeFontname(entry.Name())] = struct{}{}
	}
	for _, dir := range fontDirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			tracer().Infof("%v", NotFound(dir, directoryResourceType))
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() && isFontFile(entry.Name()) {
				names[fontregistry.NormalizeFontname(entry.Name())] = struct{}{}
			}
		}
	}
	for _, name := range fontregistry.GlobalRegistry().Names() {
		names[name] = struct{}{}
	}
	list := make([]string, 0, len(names))
	for name := range names {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
