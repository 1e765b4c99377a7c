package main

import (
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/npillmayer/dotmatrix/raster"
	"github.com/thatisuday/commando"
)

// runRenderCommand blits text into an in-memory bitmap and writes it out
// as a PNG image.
func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := textArgument(args["text"])
	if text == "" {
		fatalf("input text is empty")
	}
	dir := mustFlagString(flags["fonts"], "fonts")
	name := mustFlagString(flags["font"], "font")
	outPath := mustFlagString(flags["output"], "output")
	opts := raster.Options{
		PixelSize: mustFlagInt(flags["scale"], "scale"),
		Spacing:   mustFlagInt(flags["spacing"], "spacing"),
		Invert:    mustFlagBool(flags["invert"], "invert"),
	}
	if opts.PixelSize < 1 {
		opts.PixelSize = 1
	}

	_, store := mustOpenStore(dir, name)
	desc := store.Descriptor()
	runes := len([]rune(text))
	advance := desc.Width*opts.PixelSize + opts.Spacing
	bmp := raster.NewBitmap(runes*advance, desc.Height*opts.PixelSize)
	drawn := raster.BlitText(bmp, store, text, 0, 0, opts)

	out, err := os.Create(outPath)
	if err != nil {
		fatalf("cannot create %s: %v", outPath, err)
	}
	defer out.Close()
	if err := png.Encode(out, bmp.Image()); err != nil {
		fatalf("cannot encode PNG: %v", err)
	}
	fmt.Printf("rendered %d of %d glyphs with %s into %s\n", drawn, runes, desc, outPath)
}

// textArgument joins the parts of a variadic text argument, which
// commando hands over comma-separated.
func textArgument(arg commando.ArgValue) string {
	return strings.ReplaceAll(arg.Value, ",", " ")
}
