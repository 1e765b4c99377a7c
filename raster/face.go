package raster

import (
	"image"

	"github.com/npillmayer/dotmatrix/hzk"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face adapts a glyph store to golang.org/x/image/font.Face, so standard
// font.Drawer machinery can typeset dot-matrix text onto any draw.Image.
// The store should be loaded; code points it cannot resolve report
// ok=false from the Glyph methods, which makes the drawer fall back to
// U+FFFD handling.
type Face struct {
	store   *hzk.GlyphStore
	spacing int // extra advance between glyphs, in pixels
}

var _ font.Face = (*Face)(nil)

// NewFace wraps store as a font.Face with the given inter-glyph spacing.
func NewFace(store *hzk.GlyphStore, spacing int) *Face {
	return &Face{store: store, spacing: spacing}
}

// Close implements font.Face; there is nothing to release.
func (f *Face) Close() error {
	return nil
}

// Metrics implements font.Face. Dot-matrix cells have no baseline
// geometry of their own, so the full cell height counts as ascent.
func (f *Face) Metrics() font.Metrics {
	d := f.store.Descriptor()
	return font.Metrics{
		Height:     fixed.I(d.Height + 2),
		Ascent:     fixed.I(d.Height),
		Descent:    0,
		XHeight:    fixed.I(d.Height / 2),
		CapHeight:  fixed.I(d.Height),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

// Kern implements font.Face. Fixed-cell fonts do not kern.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Glyph implements font.Face.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	glyph, err := f.store.CharGlyph(r)
	if err != nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	d := f.store.Descriptor()
	x := int(dot.X+32) >> 6
	y := int(dot.Y+32) >> 6
	dr = image.Rect(x, y-d.Height, x+d.Width, y)
	mask = glyphMask(glyph, d)
	return dr, mask, image.Point{}, fixed.I(d.Width + f.spacing), true
}

// GlyphBounds implements font.Face.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if _, err := f.store.CharGlyph(r); err != nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	d := f.store.Descriptor()
	bounds = fixed.R(0, -d.Height, d.Width, 0)
	return bounds, fixed.I(d.Width + f.spacing), true
}

// GlyphAdvance implements font.Face.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if !f.store.Loaded() || !canResolve(f.store, r) {
		return 0, false
	}
	d := f.store.Descriptor()
	return fixed.I(d.Width + f.spacing), true
}

func canResolve(store *hzk.GlyphStore, r rune) bool {
	_, err := store.CharGlyph(r)
	return err == nil
}

// glyphMask expands packed glyph rows into an alpha mask, MSB-first.
func glyphMask(glyph []byte, d hzk.FontDescriptor) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, d.Width, d.Height))
	bytesPerRow := d.BytesPerRow()
	for r := 0; r < d.Height; r++ {
		for c := 0; c < d.Width; c++ {
			byteIndex := r*bytesPerRow + c/8
			if byteIndex >= len(glyph) {
				continue
			}
			if (glyph[byteIndex]>>(7-uint(c)%8))&1 == 1 {
				mask.Pix[mask.PixOffset(c, r)] = 0xFF
			}
		}
	}
	return mask
}
