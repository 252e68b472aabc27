/*
Command figtype renders text as FIGlet-style banners.

Usage:

   figtype [flags] [text …]

With text arguments, figtype renders the text once and exits. Otherwise it
starts an interactive session, rendering every line entered. Lines starting
with a colon are commands; enter ":help" for a list.

Configuration is read from NestedText files located at the usual places,
e.g. ~/.config/figtype/config.nt. Recognized keys are 'font-dir',
'default-font', 'width' and 'figlet' (location of a figlet binary, used to
find its fonts). Command-line flags take precedence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/figtype/core"
	"github.com/npillmayer/figtype/core/locate/resources"
	"github.com/npillmayer/figtype/engine/compose"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'figtype.cli'
func tracer() tracing.Trace {
	return tracing.Select("figtype.cli")
}

// tracing keys of the library packages
var traceKeys = []string{
	"figtype.cli",
	"figtype.font",
	"figtype.layout",
	"figtype.compose",
	"figtype.resources",
}

func main() {
	initDisplay()

	// set up configuration and logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "figtype", []string{"nt"})
	gconf.Initialize(conf)

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to render with")
	width := flag.Int("width", 0, "Maximum output width, -1 for unlimited")
	dir := flag.String("dir", "", "Directory of additional fonts")
	direction := flag.String("direction", "font", "Print direction [font|ltr|rtl]")
	layout := flag.String("layout", "default", "Layout [default|full|fitted|smushed|universal]")
	missing := flag.String("missing", "fail", "Missing characters [fail|space|<character>]")
	justify := flag.String("justify", "left", "Justification [left|center|right]")
	wrap := flag.Bool("wrap", false, "Break lines between words")
	list := flag.Bool("list", false, "List available fonts and exit")
	flag.Parse()
	if *dir != "" {
		conf.Set("font-dir", *dir)
	}
	for _, key := range traceKeys {
		conf.Set("trace."+key, *tlevel)
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	}
	tracer().Infof("Trace level is %s", *tlevel)
	//
	if *list {
		listFonts()
		return
	}
	opts, err := optionsFromFlags(*direction, *layout, *missing, *justify)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	opts.Width = outputWidth(*width)
	opts.WrapWords = *wrap
	intp := &Intp{opts: opts}
	name := *fontname
	if name == "" {
		name = gconf.GetString("default-font")
	}
	if name == "" {
		name = defaultFontName(resources.ListFonts())
	}
	intp.loadFont(name)
	//
	if flag.NArg() > 0 { // render arguments and exit
		if err := intp.render(strings.Join(flag.Args(), " ")); err != nil {
			pterm.Error.Println(core.UserMessage(err))
			os.Exit(core.Code(err))
		}
		return
	}
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "figtype > ",
		AutoComplete: newCompleter(resources.ListFonts()),
	})
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to figtype")
	pterm.Info.Println("Quit with <ctrl>D or :quit") // inform user how to stop the CLI
	intp.REPL()                                      // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// outputWidth determines the render width: flag, configuration, terminal.
func outputWidth(flagWidth int) int {
	if flagWidth != 0 {
		return flagWidth
	}
	if w := gconf.GetInt("width"); w != 0 {
		return w
	}
	if w := pterm.GetTerminalWidth(); w > 0 {
		return w
	}
	return compose.DefaultWidth
}
