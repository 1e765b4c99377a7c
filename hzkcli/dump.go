package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/dotmatrix/gb"
	"github.com/npillmayer/dotmatrix/hzk"
	"github.com/npillmayer/dotmatrix/raster"
	"github.com/pterm/pterm"
)

func listFonts(reg *hzk.Registry) error {
	for _, name := range reg.Names() {
		store := reg.Get(name)
		desc := store.Descriptor()
		status := "not loaded"
		if store.Loaded() {
			status = "loaded"
		}
		marker := "  "
		if store == reg.Current() {
			marker = "* "
		}
		pterm.Printf("%s%-8s %2d×%-2d  %4d bytes/glyph  region-skip=%-5v  %s\n",
			marker, name, desc.Width, desc.Height, desc.BytesPerGlyph(), desc.RegionSkip, status)
	}
	return nil
}

func currentStore(reg *hzk.Registry) (*hzk.GlyphStore, error) {
	store := reg.Current()
	if store == nil {
		return nil, errors.New("no font selected, try 'use HZK16'")
	}
	return store, nil
}

// dumpChars dumps code pair, byte offset and bitmap for every rune of arg,
// one block per character.
func dumpChars(reg *hzk.Registry, arg string) error {
	store, err := currentStore(reg)
	if err != nil {
		return err
	}
	if arg == "" {
		return errors.New("usage: char <characters>")
	}
	for _, r := range arg {
		pterm.Printf("character %q (U+%04X)\n", r, r)
		code, err := reg.Encoder().Encode(r)
		if err != nil {
			pterm.Error.Printf("  %v\n", err)
			continue
		}
		pterm.Printf("  GB2312 code:  %s\n", code)
		offset, err := hzk.GlyphOffset(store.Descriptor(), code)
		if err != nil {
			pterm.Error.Printf("  %v\n", err)
			continue
		}
		pterm.Printf("  byte offset:  %d (0x%X)\n", offset, offset)
		if err := dumpGlyph(store, code); err != nil {
			pterm.Error.Printf("  %v\n", err)
		}
	}
	return nil
}

// dumpCode dumps the glyph for a raw 4-digit hex code pair, e.g. "B0A1".
func dumpCode(reg *hzk.Registry, arg string) error {
	store, err := currentStore(reg)
	if err != nil {
		return err
	}
	packed, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 16)
	if err != nil {
		return fmt.Errorf("usage: code <4 hex digits>: %v", err)
	}
	code := gb.FromPacked(uint16(packed))
	pterm.Printf("GB2312 code %s\n", code)
	return dumpGlyph(store, code)
}

func dumpGlyph(store *hzk.GlyphStore, code gb.Code) error {
	glyph, err := store.Glyph(code)
	if err != nil {
		return err
	}
	desc := store.Descriptor()
	pterm.Printf("  glyph bytes:\n")
	for row := 0; row < desc.Height; row++ {
		line := glyph[row*desc.BytesPerRow() : (row+1)*desc.BytesPerRow()]
		hex := make([]string, len(line))
		for i, b := range line {
			hex[i] = fmt.Sprintf("0x%02X", b)
		}
		pterm.Printf("    %s\n", strings.Join(hex, ", "))
	}
	bmp := raster.NewBitmap(desc.Width, desc.Height)
	raster.Blit(bmp, glyph, desc, 0, 0, raster.Options{})
	printBitmap(bmp)
	return nil
}

// renderText blits a whole string into one bitmap and prints it.
func renderText(reg *hzk.Registry, arg string) error {
	store, err := currentStore(reg)
	if err != nil {
		return err
	}
	if arg == "" {
		return errors.New("usage: text <string>")
	}
	desc := store.Descriptor()
	runes := len([]rune(arg))
	opts := raster.Options{Spacing: 1}
	bmp := raster.NewBitmap(runes*(desc.Width+opts.Spacing), desc.Height)
	drawn := raster.BlitText(bmp, store, arg, 0, 0, opts)
	printBitmap(bmp)
	pterm.Printf("%d of %d glyphs drawn\n", drawn, runes)
	return nil
}

// printBitmap shows a bitmap as a grid, set pixels as full blocks, the
// way hexdump tools for these fonts traditionally do.
func printBitmap(bmp *raster.Bitmap) {
	w, h := bmp.Size()
	pterm.Println("    +" + strings.Repeat("-", w*2) + "+")
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if bmp.Pixel(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("· ")
			}
		}
		pterm.Printf("%3d |%s|\n", y, sb.String())
	}
	pterm.Println("    +" + strings.Repeat("-", w*2) + "+")
}
