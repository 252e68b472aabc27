package fontregistry

import (
	_ "embed"
	"path"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/figtype/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// FallbackName is the name the fallback font is registered under.
const FallbackName = "term"

// Registry is a type for holding information about loaded fonts.
type Registry struct {
	sync.Mutex
	fonts map[string]*font.Font
	names *trie.Trie
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*font.Font),
		names: trie.New(),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *font.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s (%d glyphs)", normalizedName, f.Len())
		fr.fonts[normalizedName] = f
		fr.names.Add(normalizedName, nil)
	}
}

// Lookup returns the font stored under a normalized name, if any.
func (fr *Registry) Lookup(normalizedName string) (*font.Font, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[normalizedName]
	return f, ok
}

// Font returns the font stored under key `normalizedName`.
//
// If no such font is known, Font will return the fallback font, together
// with an error message.
func (fr *Registry) Font(normalizedName string) (*font.Font, error) {
	tracer().Debugf("registry searches for font %s", normalizedName)
	fr.Lock()
	defer fr.Unlock()
	if f, ok := fr.fonts[normalizedName]; ok {
		tracer().Infof("registry found font %s", normalizedName)
		return f, nil
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := core.Error(core.EMISSING, "font %s not found in registry", normalizedName)
	f := FallbackFont()
	if _, ok := fr.fonts[FallbackName]; !ok {
		tracer().Infof("font registry caches fallback font %s", FallbackName)
		fr.fonts[FallbackName] = f
		fr.names.Add(FallbackName, nil)
	}
	return f, err
}

// Names returns the names of all registered fonts, sorted.
func (fr *Registry) Names() []string {
	fr.Lock()
	defer fr.Unlock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Complete returns the sorted names of all registered fonts starting with
// prefix.
func (fr *Registry) Complete(prefix string) []string {
	fr.Lock()
	defer fr.Unlock()
	if prefix == "" {
		names := make([]string, 0, len(fr.fonts))
		for k := range fr.fonts {
			names = append(names, k)
		}
		sort.Strings(names)
		return names
	}
	names := fr.names.PrefixSearch(prefix)
	sort.Strings(names)
	return names
}

// LogFontList is a helper function to dump the list of known fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for _, k := range fr.Names() {
		f, _ := fr.Lookup(k)
		tracer().Infof("font [%s] = %v", k, f.Header())
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname derives a registry key from a font name or font file name.
// "/usr/share/figlet/Big Money.flf" will be normalized to "big_money".
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = path.Base(fname)
	if ext := path.Ext(fname); strings.EqualFold(ext, ".flf") {
		fname = fname[:len(fname)-len(ext)]
	}
	fname = strings.ReplaceAll(fname, " ", "_")
	return strings.ToLower(fname)
}

// --- Fallback font ---------------------------------------------------------

//go:embed term.flf
var termFont []byte

var fallbackFont *font.Font

var loadFallbackFont sync.Once

// FallbackFont returns a font which is always present. It panics if the
// packaged font is broken.
func FallbackFont() *font.Font {
	loadFallbackFont.Do(func() {
		f, err := font.Parse(termFont)
		if err != nil {
			panic("cannot load fallback font: " + err.Error())
		}
		fallbackFont = f
	})
	return fallbackFont
}

// --- Matching --------------------------------------------------------------

// MatchConfidence is a type for expressing the confidence level of font matching.
type MatchConfidence int

// Confidence levels for ClosestMatch.
const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

// ClosestMatch scans a list of font names and returns the closest match
// for a given pattern. An identical name is a perfect match, a name starting
// with the pattern a good one. Otherwise the pattern is interpreted as a
// regular expression.
// If no name matches, returns `NoConfidence`.
func ClosestMatch(names []string, pattern string) (match string, confidence MatchConfidence) {
	pattern = NormalizeFontname(pattern)
	for _, name := range names {
		if name == pattern {
			return name, PerfectConfidence
		}
	}
	t := trie.New()
	for _, name := range names {
		t.Add(name, nil)
	}
	if prefixed := t.PrefixSearch(pattern); len(prefixed) > 0 {
		sort.Strings(prefixed)
		return prefixed[0], HighConfidence
	}
	r, err := regexp.Compile(pattern)
	if err != nil {
		tracer().Errorf("invalid font name pattern")
		return
	}
	for _, name := range names {
		if r.MatchString(name) {
			return name, LowConfidence
		}
	}
	return
}
