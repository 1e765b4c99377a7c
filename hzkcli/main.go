package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/npillmayer/dotmatrix"
	"github.com/npillmayer/dotmatrix/hzk"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'dotmatrix.fonts'
func tracer() tracing.Trace {
	return tracing.Select("dotmatrix.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.dotmatrix.fonts": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// font directory may come from the environment (.env supported)
	_ = godotenv.Load()
	defaultDir := os.Getenv("DOTMATRIX_FONT_DIR")
	if defaultDir == "" {
		defaultDir = "fonts"
	}

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontdir := flag.String("fonts", defaultDir, "Directory containing HZK font files")
	fontname := flag.String("font", "HZK16", "Font variant to select at startup")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}

	pterm.Info.Println("Welcome to the dot-matrix font CLI")
	reg, err := dotmatrix.OpenRegistry(*fontdir)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	if err := reg.SetCurrent(context.Background(), *fontname); err != nil {
		tracer().Errorf(err.Error())
		pterm.Error.Printf("cannot select font %q, use 'use <name>' to pick one of %v\n",
			*fontname, reg.Names())
	}

	// set up REPL
	repl, err := readline.New("hzk > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, reg: reg}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	reg  *hzk.Registry
}

func (intp *Intp) String() string {
	if cur := intp.reg.Current(); cur != nil {
		return fmt.Sprintf("( font=%s )", cur.Descriptor())
	}
	return "( no font )"
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		err, quit := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (error, bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "quit":
		return nil, true
	case "help":
		help()
		return nil, false
	case "fonts":
		return listFonts(intp.reg), false
	case "use":
		return intp.reg.SetCurrent(context.Background(), arg), false
	case "char":
		return dumpChars(intp.reg, arg), false
	case "text":
		return renderText(intp.reg, arg), false
	case "code":
		return dumpCode(intp.reg, arg), false
	}
	return fmt.Errorf("unknown command %q, try 'help'", cmd), false
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	fonts           list registered font variants
	use <name>      select and load a font variant
	char <chars>    dump GB2312 code, offset and bitmap per character
	text <string>   render a string as one ASCII-art block
	code <hex>      dump the glyph for a raw GB2312 code pair, e.g. B0A1
	quit            leave (or <ctrl>D)
	`)
}
