package raster

import (
	"github.com/npillmayer/dotmatrix/hzk"
)

// Options controls how glyphs are written to a surface.
type Options struct {
	Invert    bool // swap set and clear pixels
	PixelSize int  // integer pixel replication factor; values < 1 mean 1
	Spacing   int  // extra horizontal pixels between glyphs in BlitText
}

func (o Options) pixelSize() int {
	if o.PixelSize < 1 {
		return 1
	}
	return o.PixelSize
}

// Blit decodes one glyph's packed rows onto dst at (x, y).
//
// Bit extraction is MSB-first within each byte, rows padded to whole
// bytes: bit (r, c) lives at byte r·bytesPerRow + c/8, position 7−c%8.
// A byte index beyond the glyph data reads as 0 — the store already
// bounds-checked the glyph span, this only guards partially-malformed
// data. Pixels outside dst's bounds are clipped silently.
func Blit(dst Surface, glyph []byte, desc hzk.FontDescriptor, x, y int, opts Options) {
	width, height := desc.Width, desc.Height
	bytesPerRow := desc.BytesPerRow()
	ps := opts.pixelSize()
	sw, sh := dst.Size()
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			byteIndex := r*bytesPerRow + c/8
			var bit byte
			if byteIndex < len(glyph) {
				bit = (glyph[byteIndex] >> (7 - uint(c)%8)) & 1
			}
			on := bit == 1
			if opts.Invert {
				on = !on
			}
			for py := 0; py < ps; py++ {
				for px := 0; px < ps; px++ {
					tx := x + c*ps + px
					ty := y + r*ps + py
					if tx < 0 || ty < 0 || tx >= sw || ty >= sh {
						continue
					}
					dst.SetPixel(tx, ty, on)
				}
			}
		}
	}
}

// BlitChar draws the glyph for one code point from store onto dst. It
// reports whether a glyph was found and decoded; encoding and lookup
// failures are traced and absorbed, clipping is never a failure.
func BlitChar(dst Surface, store *hzk.GlyphStore, r rune, x, y int, opts Options) bool {
	glyph, err := store.CharGlyph(r)
	if err != nil {
		tracer().Infof("no glyph for %q in %s: %v", r, store.Descriptor(), err)
		return false
	}
	Blit(dst, glyph, store.Descriptor(), x, y, opts)
	return true
}

// BlitText draws text left to right starting at (x, y) and returns the
// number of glyphs actually drawn. The cursor advances by
// width·pixelSize+spacing after every rune, drawn or not, so characters
// without a glyph leave a blank advance and the remaining text keeps its
// alignment.
func BlitText(dst Surface, store *hzk.GlyphStore, text string, x, y int, opts Options) int {
	advance := store.Descriptor().Width*opts.pixelSize() + opts.Spacing
	drawn := 0
	for _, r := range text {
		if BlitChar(dst, store, r, x, y, opts) {
			drawn++
		}
		x += advance
	}
	return drawn
}
