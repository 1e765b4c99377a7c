package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/dotmatrix/hzk"
	"github.com/npillmayer/dotmatrix/raster"
	"github.com/thatisuday/commando"
)

// runDumpCommand prints GB2312 code, byte offset and an ASCII-art bitmap
// for every character of the given text. Non-interactive counterpart of
// the hzkcli 'char' command.
func runDumpCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := textArgument(args["text"])
	if text == "" {
		fatalf("input text is empty")
	}
	dir := mustFlagString(flags["fonts"], "fonts")
	name := mustFlagString(flags["font"], "font")
	reg, store := mustOpenStore(dir, name)
	desc := store.Descriptor()

	for _, r := range text {
		fmt.Printf("character %q (U+%04X)\n", r, r)
		code, err := reg.Encoder().Encode(r)
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		offset, err := hzk.GlyphOffset(desc, code)
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		fmt.Printf("  GB2312 %s, offset %d (0x%X)\n", code, offset, offset)
		glyph, err := store.Glyph(code)
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		bmp := raster.NewBitmap(desc.Width, desc.Height)
		raster.Blit(bmp, glyph, desc, 0, 0, raster.Options{})
		for _, line := range strings.Split(strings.TrimRight(bmp.String(), "\n"), "\n") {
			fmt.Printf("  %s\n", line)
		}
	}
}
