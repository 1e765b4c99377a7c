/*
Package hzk reads glyph bitmaps from HZK-style dot-matrix font files.

An HZK font file is a pure fixed-stride glyph table without header or
footer: one packed 1-bit-per-pixel bitmap per GB2312 code pair, in grid
order. Addressing a glyph is arithmetic over the code pair and the glyph
cell geometry; the two largest cell variants of the family (40px and
48px) physically omit the first 15 GB2312 regions, which shifts their
addressable region index by 15.

The package deals in three layers: a FontDescriptor captures the cell
geometry of one font variant, GlyphOffset turns a GB2312 code into a byte
offset honoring the per-variant region skip, and a GlyphStore owns one
loaded font blob and hands out bounds-checked glyph byte slices. A
Registry collects named stores and tracks the active selection.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package hzk

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dotmatrix.fonts'
func tracer() tracing.Trace {
	return tracing.Select("dotmatrix.fonts")
}

var (
	// ErrInvalidCode flags a GB2312 code pair outside the valid
	// region/position range for a font's layout formula.
	ErrInvalidCode = errors.New("GB2312 code outside valid region/position range")
	// ErrNotLoaded flags a glyph request against a store whose font data
	// has not been loaded yet.
	ErrNotLoaded = errors.New("font data not loaded")
	// ErrOutOfRange flags a computed glyph span that does not fit inside
	// the loaded font data, e.g. for a truncated font file.
	ErrOutOfRange = errors.New("glyph offset outside font data")
)

// LoadError reports a failed attempt to load font data into a store.
// The store stays retryable; a later Load may succeed.
type LoadError struct {
	Font string // font name from the descriptor
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading font %q: %v", e.Font, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Maximum reasonable glyph cell dimensions. Historical dot-matrix fonts
// top out at 48×48; the cap merely guards against descriptors built from
// corrupt configuration.
const MaxCellSize = 128

// FontDescriptor captures the immutable parameters of one dot-matrix
// font variant. Byte strides are derived from the pixel dimensions and
// cannot be set independently.
type FontDescriptor struct {
	Name       string
	Width      int  // glyph cell width in pixels
	Height     int  // glyph cell height in pixels
	RegionSkip bool // file omits the first 15 GB2312 regions
}

// NewDescriptor validates cell geometry and returns a descriptor.
// Inconsistent geometry is a construction-time error, never a runtime
// surprise during offset arithmetic.
func NewDescriptor(name string, width, height int, regionSkip bool) (FontDescriptor, error) {
	if name == "" {
		return FontDescriptor{}, errors.New("font descriptor: empty name")
	}
	if width <= 0 || height <= 0 || width > MaxCellSize || height > MaxCellSize {
		return FontDescriptor{}, fmt.Errorf("font descriptor %q: unusable cell size %d×%d",
			name, width, height)
	}
	return FontDescriptor{Name: name, Width: width, Height: height, RegionSkip: regionSkip}, nil
}

// BytesPerRow returns the packed-bit row stride, ⌈width/8⌉.
func (d FontDescriptor) BytesPerRow() int {
	return (d.Width + 7) / 8
}

// BytesPerGlyph returns the byte size of one glyph cell.
func (d FontDescriptor) BytesPerGlyph() int {
	return d.BytesPerRow() * d.Height
}

func (d FontDescriptor) String() string {
	return fmt.Sprintf("%s[%d×%d]", d.Name, d.Width, d.Height)
}
