package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/npillmayer/dotmatrix"
	"github.com/npillmayer/dotmatrix/hzk"
	"github.com/thatisuday/commando"
)

func main() {
	_ = godotenv.Load()

	commando.
		SetExecutableName("hzk-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for HZK dot-matrix font diagnostics and conversion.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("genmap").
		SetDescription("Generate the Unicode→GB2312 mapping table as JSON, derived from the simplified-Chinese character tables.").
		SetShortDescription("generate mapping JSON").
		AddArgument("output", "output JSON file path", "gb2312_unicode_map.json").
		SetAction(runGenmapCommand)

	commando.
		Register("dump").
		SetDescription("Dump GB2312 codes, byte offsets and bitmaps for each character of a text.").
		SetShortDescription("dump glyphs").
		AddArgument("text...", "text to dump", "").
		AddFlag("fonts,d", "font directory", commando.String, defaultFontDir()).
		AddFlag("font,f", "font variant name", commando.String, "HZK16").
		SetAction(runDumpCommand)

	commando.
		Register("render").
		SetDescription("Render text with a dot-matrix font into a PNG image.").
		SetShortDescription("render to PNG").
		AddArgument("text...", "text to render", "").
		AddFlag("fonts,d", "font directory", commando.String, defaultFontDir()).
		AddFlag("font,f", "font variant name", commando.String, "HZK16").
		AddFlag("output,o", "output PNG file", commando.String, "hzk-tools-render.png").
		AddFlag("scale,s", "integer pixel replication factor", commando.Int, 1).
		AddFlag("spacing", "extra pixels between glyphs", commando.Int, 1).
		AddFlag("invert,i", "swap set and clear pixels", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("convert").
		SetDescription("Convert a column-major ASC font blob into row-major glyph cells.").
		SetShortDescription("convert ASC blob").
		AddArgument("input", "column-major ASC font file", "").
		AddArgument("output", "row-major output file", "").
		AddFlag("width,W", "glyph cell width in pixels", commando.Int, 8).
		AddFlag("height,H", "glyph cell height in pixels", commando.Int, 16).
		SetAction(runConvertCommand)

	commando.Parse(nil)
}

func defaultFontDir() string {
	if dir := os.Getenv("DOTMATRIX_FONT_DIR"); dir != "" {
		return dir
	}
	return "fonts"
}

// mustOpenStore opens the registry over the font directory and selects
// one variant, loading its file.
func mustOpenStore(dir, name string) (*hzk.Registry, *hzk.GlyphStore) {
	reg, err := dotmatrix.OpenRegistry(dir)
	if err != nil {
		fatalf("%v", err)
	}
	if err := reg.SetCurrent(context.Background(), name); err != nil {
		fatalf("cannot select font %q (registered: %v): %v", name, reg.Names(), err)
	}
	return reg, reg.Current()
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "hzk-tools: "+format+"\n", args...)
	os.Exit(1)
}
