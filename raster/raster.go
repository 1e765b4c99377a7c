/*
Package raster decodes packed dot-matrix glyphs into pixels.

Glyph bytes are MSB-first, row-padded to whole bytes. The blitter turns
them into per-pixel writes against a caller-owned Surface, with optional
inversion and integer pixel replication; pixels falling outside the
surface are clipped silently. An in-memory Bitmap implementation is
provided for tests and tooling, plus an adapter that exposes a loaded
glyph store as a golang.org/x/image/font Face.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package raster

import (
	"image"
	"image/color"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dotmatrix.fonts'
func tracer() tracing.Trace {
	return tracing.Select("dotmatrix.fonts")
}

// Surface is a caller-owned 2D grid of on/off pixels. The blitter only
// ever writes single pixels inside the surface's bounds; it never resizes
// or reallocates the surface.
type Surface interface {
	Size() (width, height int)
	SetPixel(x, y int, on bool)
}

// Bitmap is an in-memory Surface with readable pixels.
type Bitmap struct {
	width, height int
	pix           []bool
}

// NewBitmap allocates a cleared w×h bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{width: w, height: h, pix: make([]bool, w*h)}
}

// Size returns the bitmap dimensions.
func (b *Bitmap) Size() (int, int) {
	return b.width, b.height
}

// SetPixel writes one pixel; out-of-bounds coordinates are ignored.
func (b *Bitmap) SetPixel(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = on
}

// Pixel reads one pixel; out-of-bounds coordinates read as off.
func (b *Bitmap) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	return b.pix[y*b.width+x]
}

// Image converts the bitmap to a grayscale image, set pixels black on
// white, e.g. for PNG output.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			v := byte(0xFF)
			if b.Pixel(x, y) {
				v = 0
			}
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// String renders the bitmap as rows of '#' and '.', one line per pixel
// row. Handy in test failure output.
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
