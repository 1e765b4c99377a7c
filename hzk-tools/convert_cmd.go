package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/dotmatrix/ascfont"
	"github.com/npillmayer/dotmatrix/hzk"
	"github.com/thatisuday/commando"
)

// runConvertCommand rewrites a column-major ASC font blob into the
// row-major, row-padded cell format the glyph decoder expects.
func runConvertCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	inPath := args["input"].Value
	outPath := args["output"].Value
	width := mustFlagInt(flags["width"], "width")
	height := mustFlagInt(flags["height"], "height")

	desc, err := hzk.NewDescriptor(fmt.Sprintf("ASC%d_%d", height, width), width, height, false)
	if err != nil {
		fatalf("%v", err)
	}
	data, err := os.ReadFile(inPath)
	if err != nil {
		fatalf("cannot read %s: %v", inPath, err)
	}
	converted, err := ascfont.TransposeColumnMajor(data, desc)
	if err != nil {
		fatalf("%v", err)
	}
	if err := os.WriteFile(outPath, converted, 0o644); err != nil {
		fatalf("cannot write %s: %v", outPath, err)
	}
	fmt.Printf("converted %d glyph cells (%d×%d) into %s\n",
		len(converted)/desc.BytesPerGlyph(), width, height, outPath)
}
