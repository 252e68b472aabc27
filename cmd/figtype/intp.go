package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/derekparker/trie"
	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/figtype/core/font"
	"github.com/npillmayer/figtype/core/font/fontregistry"
	"github.com/npillmayer/figtype/core/locate/resources"
	"github.com/npillmayer/figtype/engine/compose"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	font     *font.Font
	fontname string
	opts     compose.Options
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is an operation code of the interpreter.
type Op int

// Operations of the interpreter.
const (
	RENDER Op = iota
	QUIT
	HELP
	FONT
	FONTS
	WIDTH
	LAYOUT
	DIRECTION
	JUSTIFY
	WRAP
	SAVE
	INFO
)

var commands = map[string]Op{
	":quit":      QUIT,
	":help":      HELP,
	":font":      FONT,
	":fonts":     FONTS,
	":width":     WIDTH,
	":layout":    LAYOUT,
	":direction": DIRECTION,
	":justify":   JUSTIFY,
	":wrap":      WRAP,
	":save":      SAVE,
	":info":      INFO,
}

// Command is a parsed input line.
type Command struct {
	op  Op
	arg string
}

// parseCommand parses an input line. Lines not starting with a colon are
// text to render.
func parseCommand(line string) (Command, error) {
	if !strings.HasPrefix(line, ":") {
		return Command{op: RENDER, arg: line}, nil
	}
	line = strings.TrimSpace(line)
	word, arg := line, ""
	if i := strings.IndexByte(line, ' '); i > 0 {
		word, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	op, ok := commands[strings.ToLower(word)]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %s, try :help", word)
	}
	switch op {
	case FONT, WIDTH, LAYOUT, DIRECTION, JUSTIFY, SAVE:
		if arg == "" {
			return Command{}, fmt.Errorf("command %s needs an argument", word)
		}
	}
	tracer().Debugf("parse command = %v %q", op, arg)
	return Command{op: op, arg: arg}, nil
}

func (intp *Intp) execute(cmd Command) (quit bool, err error) {
	switch cmd.op {
	case RENDER:
		err = intp.render(cmd.arg)
	case QUIT:
		quit = true
	case HELP:
		help()
	case FONT:
		intp.loadFont(cmd.arg)
	case FONTS:
		listFonts()
	case WIDTH:
		var w int
		if w, err = strconv.Atoi(cmd.arg); err == nil {
			intp.opts.Width = w
		} else {
			err = core.WrapError(err, core.EINVALID, "width must be a number: %s", cmd.arg)
		}
	case LAYOUT:
		intp.opts.Layout, err = parseLayout(cmd.arg)
	case DIRECTION:
		intp.opts.Direction, err = parseDirection(cmd.arg)
	case JUSTIFY:
		intp.opts.Justify, err = parseJustification(cmd.arg)
	case WRAP:
		intp.opts.WrapWords = !intp.opts.WrapWords
		pterm.Info.Printfln("word wrap is %v", intp.opts.WrapWords)
	case SAVE:
		err = intp.save(cmd.arg)
	case INFO:
		intp.info()
	}
	return
}

func (intp *Intp) render(text string) error {
	res, err := compose.RenderString(intp.font, text, intp.opts)
	if err != nil {
		return err
	}
	pterm.Print(res.String())
	return nil
}

// loadFont resolves a font. If the font cannot be loaded, the fallback font
// will be used.
func (intp *Intp) loadFont(name string) {
	f, err := resources.ResolveFont(name).Font()
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		name = fontregistry.FallbackName
	}
	intp.font, intp.fontname = f, fontregistry.NormalizeFontname(name)
	tracer().Infof("using font %s", intp.fontname)
}

// defaultFontName selects the font used if neither flag -font nor key
// 'default-font' is set: "standard" if available, else the first font listed.
func defaultFontName(fonts []string) string {
	for _, name := range fonts {
		if name == "standard" {
			return name
		}
	}
	if len(fonts) > 0 {
		return fonts[0]
	}
	return fontregistry.FallbackName
}

// listFonts prints the names of all available fonts. With trace level Debug,
// the fonts already loaded are traced as well.
func listFonts() []string {
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		fontregistry.GlobalRegistry().LogFontList()
	}
	fonts := resources.ListFonts()
	for _, name := range fonts {
		pterm.Println(name)
	}
	return fonts
}

func (intp *Intp) save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create file %s", path)
	}
	defer out.Close()
	if err = font.Write(out, intp.font); err == nil {
		pterm.Info.Printfln("font %s saved to %s", intp.fontname, path)
	}
	return err
}

func (intp *Intp) info() {
	h := intp.font.Header()
	pterm.Printfln("font %s: %d glyphs, height %d, baseline %d, direction %v",
		intp.fontname, intp.font.Len(), h.Height, h.Baseline, h.Direction())
	pterm.Printfln("header: %v", h)
	if c := intp.font.Comment(); c != "" {
		pterm.Println(c)
	}
}

func help() {
	pterm.Info.Println("figtype commands")
	pterm.Println(`
	<text>              render text
	:font NAME          load font NAME (font name or path of a .flf file)
	:fonts              list available fonts
	:info               show information about the current font
	:width N            set output width, -1 for unlimited
	:layout L           set layout: default, full, fitted, smushed, universal
	:direction D        set print direction: font, ltr, rtl
	:justify J          set justification: left, center, right
	:wrap               toggle word wrap
	:save PATH          write the current font to a file
	:quit               leave figtype
	`)
}

// --- Completion ------------------------------------------------------------

// completer completes command names and, after ":font", font names.
type completer struct {
	commands *trie.Trie
	fonts    *trie.Trie
}

func newCompleter(fontnames []string) *completer {
	c := &completer{commands: trie.New(), fonts: trie.New()}
	for cmd := range commands {
		c.commands.Add(cmd, nil)
	}
	for _, name := range fontnames {
		c.fonts.Add(name, nil)
	}
	return c
}

// Do is part of interface readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	input := string(line[:pos])
	var candidates []string
	var prefix string
	if strings.HasPrefix(input, ":font ") {
		prefix = strings.TrimLeft(input[len(":font "):], " ")
		candidates = c.fonts.PrefixSearch(prefix)
	} else if strings.HasPrefix(input, ":") && !strings.Contains(input, " ") {
		prefix = input
		candidates = c.commands.PrefixSearch(prefix)
	}
	sort.Strings(candidates)
	for _, cand := range candidates {
		newLine = append(newLine, []rune(cand[len(prefix):]+" "))
	}
	return newLine, len([]rune(prefix))
}

var _ readline.AutoCompleter = &completer{}
