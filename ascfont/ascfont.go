/*
Package ascfont reads the small fixed-size ASCII companion fonts (ASC12,
ASC16, …) that ship alongside HZK dot-matrix files.

These files are a degenerate case of the HZK layout: a flat glyph table
covering the 95 printable ASCII characters, addressed by

	offset = (codepoint − firstRune) · bytesPerGlyph

with no region arithmetic at all. Extraction and blitting reuse the hzk
descriptor and raster decoder unchanged.

Some ASC variants store their bits column-major as one continuous bit
stream per glyph; TransposeColumnMajor rewrites such blobs into the
row-major, row-padded form the decoder expects.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ascfont

import (
	"errors"
	"fmt"

	"github.com/npillmayer/dotmatrix/hzk"
	"github.com/npillmayer/dotmatrix/raster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dotmatrix.fonts'
func tracer() tracing.Trace {
	return tracing.Select("dotmatrix.fonts")
}

// ErrNoGlyph flags a rune outside the font's flat codepoint range.
var ErrNoGlyph = errors.New("rune not covered by ASCII font")

// FirstPrintable is the first code point held by standard ASC files,
// which cover the 95 printable characters 0x20–0x7E.
const FirstPrintable = 0x20

// Store is a loaded flat-indexed ASCII font: one glyph cell per code
// point starting at First, no region arithmetic.
type Store struct {
	desc  hzk.FontDescriptor
	first rune
	data  []byte
}

// New wraps already-fetched font data. The data length must hold at
// least one whole glyph cell.
func New(desc hzk.FontDescriptor, first rune, data []byte) (*Store, error) {
	if len(data) < desc.BytesPerGlyph() {
		return nil, fmt.Errorf("ASCII font %s: data too short: %d bytes", desc, len(data))
	}
	tracer().Debugf("ASCII font %s: %d glyph cells from %q",
		desc, len(data)/desc.BytesPerGlyph(), first)
	return &Store{desc: desc, first: first, data: data}, nil
}

// Descriptor returns the font cell parameters.
func (s *Store) Descriptor() hzk.FontDescriptor {
	return s.desc
}

// Glyph returns the packed bitmap for r as a read-only view into the
// font data. Runes before First yield ErrNoGlyph; runes whose cell lies
// beyond the data yield hzk.ErrOutOfRange.
func (s *Store) Glyph(r rune) ([]byte, error) {
	if r < s.first {
		return nil, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	bpg := s.desc.BytesPerGlyph()
	offset := int(r-s.first) * bpg
	if offset+bpg > len(s.data) {
		return nil, fmt.Errorf("%w: %q at [%d,%d) in %d bytes",
			hzk.ErrOutOfRange, r, offset, offset+bpg, len(s.data))
	}
	return s.data[offset : offset+bpg], nil
}

// BlitChar draws r onto dst and reports whether a glyph was found.
func (s *Store) BlitChar(dst raster.Surface, r rune, x, y int, opts raster.Options) bool {
	glyph, err := s.Glyph(r)
	if err != nil {
		tracer().Infof("no ASCII glyph for %q: %v", r, err)
		return false
	}
	raster.Blit(dst, glyph, s.desc, x, y, opts)
	return true
}

// BlitText draws text left to right; the cursor advances for every rune
// whether or not it resolved, like raster.BlitText. Returns the number
// of glyphs drawn.
func (s *Store) BlitText(dst raster.Surface, text string, x, y int, opts raster.Options) int {
	ps := opts.PixelSize
	if ps < 1 {
		ps = 1
	}
	advance := s.desc.Width*ps + opts.Spacing
	drawn := 0
	for _, r := range text {
		if s.BlitChar(dst, r, x, y, opts) {
			drawn++
		}
		x += advance
	}
	return drawn
}

// TransposeColumnMajor converts a column-major ASC blob into row-major,
// row-padded glyph cells for desc. In the source, bit (row, col) of a
// glyph sits at bit index col·height+row of a continuous stream; the
// result places it MSB-first at byte row·bytesPerRow + col/8.
func TransposeColumnMajor(data []byte, desc hzk.FontDescriptor) ([]byte, error) {
	srcStride := (desc.Width*desc.Height + 7) / 8
	if srcStride == 0 || len(data)%srcStride != 0 {
		return nil, fmt.Errorf("ASCII font %s: %d bytes is not a whole number of column-major cells",
			desc, len(data))
	}
	glyphs := len(data) / srcStride
	dstStride := desc.BytesPerGlyph()
	out := make([]byte, glyphs*dstStride)
	for g := 0; g < glyphs; g++ {
		src := data[g*srcStride : (g+1)*srcStride]
		dst := out[g*dstStride : (g+1)*dstStride]
		for row := 0; row < desc.Height; row++ {
			for col := 0; col < desc.Width; col++ {
				bitIndex := col*desc.Height + row
				if src[bitIndex/8]>>(7-uint(bitIndex)%8)&1 == 0 {
					continue
				}
				dst[row*desc.BytesPerRow()+col/8] |= 1 << (7 - uint(col)%8)
			}
		}
	}
	return out, nil
}
