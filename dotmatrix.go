/*
Package dotmatrix renders text from legacy HZK dot-matrix font files.

The HZK family stores one packed monochrome bitmap per GB2312 code pair
in a headerless fixed-stride table. This module splits the work into
small packages:

▪︎ gb encodes Unicode code points as GB2312 byte pairs,

▪︎ hzk computes glyph byte offsets (including the region-skip quirk of
the 40px and 48px variants) and owns loaded font blobs,

▪︎ raster decodes packed glyph rows onto a pixel surface, and

▪︎ ascfont handles the flat-indexed ASCII companion fonts.

This root package offers convenience plumbing for the common case: a
registry over the standard font variants found in a directory, and
one-call text rendering.

# Status

Only GB2312 and plain ASCII are addressed; glyphs are drawn with
nearest-neighbor pixel replication, no antialiasing.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package dotmatrix

import (
	"fmt"
	"path/filepath"

	"github.com/npillmayer/dotmatrix/gb"
	"github.com/npillmayer/dotmatrix/hzk"
	"github.com/npillmayer/dotmatrix/internal/fontload"
	"github.com/npillmayer/dotmatrix/raster"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dotmatrix.fonts'
func tracer() tracing.Trace {
	return tracing.Select("dotmatrix.fonts")
}

// StandardDescriptors returns descriptors for the classic HZK font
// variants. The 40px and 48px files omit the first 15 GB2312 regions.
func StandardDescriptors() []hzk.FontDescriptor {
	var descs []hzk.FontDescriptor
	for _, size := range []int{12, 16, 24, 32, 40, 48} {
		d, err := hzk.NewDescriptor(fmt.Sprintf("HZK%d", size), size, size, size >= 40)
		if err != nil {
			panic(err) // static geometry, cannot fail
		}
		descs = append(descs, d)
	}
	return descs
}

// MappingTableFile is the conventional name of the JSON mapping
// resource inside a font directory.
const MappingTableFile = "gb2312_unicode_map.json"

// OpenRegistry scans dir for standard HZK font files and registers the
// ones present, without loading any of them yet. The GB2312 mapping
// table is taken from dir's JSON resource; if that is missing or broken
// the registry falls back to the character tables from golang.org/x/text,
// and as a last resort to ASCII-only coverage — either fallback is
// traced, not fatal.
func OpenRegistry(dir string) (*hzk.Registry, error) {
	table, err := fontload.LoadMappingTable(filepath.Join(dir, MappingTableFile))
	if err != nil {
		tracer().Infof("no usable mapping table in %s (%v), deriving from charmap", dir, err)
		if table, err = gb.TableFromCharmap(); err != nil {
			tracer().Errorf("charmap-derived mapping table failed: %v", err)
			table = nil // ASCII-only
		}
	}
	reg := hzk.NewRegistry(gb.NewEncoder(table))
	registered := 0
	for _, desc := range StandardDescriptors() {
		path := filepath.Join(dir, desc.Name)
		if !fontload.Exists(path) {
			continue
		}
		if _, err := reg.Register(desc, fontload.FileSource(path)); err != nil {
			return nil, err
		}
		registered++
	}
	if registered == 0 {
		return nil, fmt.Errorf("no HZK font files found in %s", dir)
	}
	return reg, nil
}

// RenderText draws text with the registry's current font onto dst and
// returns the number of glyphs drawn. Characters without a glyph leave
// a blank advance. With no current font nothing is drawn.
func RenderText(dst raster.Surface, reg *hzk.Registry, text string, x, y int, opts raster.Options) int {
	store := reg.Current()
	if store == nil {
		tracer().Infof("render: no current font selected")
		return 0
	}
	return raster.BlitText(dst, store, text, x, y, opts)
}
