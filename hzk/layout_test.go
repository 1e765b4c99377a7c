package hzk

import (
	"errors"
	"testing"

	"github.com/npillmayer/dotmatrix/gb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testDescriptor(t *testing.T, name string, size int, skip bool) FontDescriptor {
	t.Helper()
	d, err := NewDescriptor(name, size, size, skip)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDescriptorDerivedStrides(t *testing.T) {
	d := testDescriptor(t, "HZK12", 12, false)
	if d.BytesPerRow() != 2 {
		t.Errorf("12px row stride = %d, want 2", d.BytesPerRow())
	}
	if d.BytesPerGlyph() != 24 {
		t.Errorf("12px glyph size = %d, want 24", d.BytesPerGlyph())
	}
}

func TestDescriptorValidation(t *testing.T) {
	if _, err := NewDescriptor("bad", 0, 16, false); err == nil {
		t.Error("zero width must be a construction-time error")
	}
	if _, err := NewDescriptor("bad", 16, -1, false); err == nil {
		t.Error("negative height must be a construction-time error")
	}
	if _, err := NewDescriptor("", 16, 16, false); err == nil {
		t.Error("empty name must be a construction-time error")
	}
}

func TestOffsetStandardFormula(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	d := testDescriptor(t, "HZK16", 16, false)
	// first grid cell
	offset, err := GlyphOffset(d, gb.Code{High: 0xA1, Low: 0xA1})
	if err != nil {
		t.Fatal(err)
	}
	if offset != 0 {
		t.Errorf("offset of first cell = %d, want 0", offset)
	}
	// 啊, first character of region 16
	offset, err = GlyphOffset(d, gb.Code{High: 0xB0, Low: 0xA1})
	if err != nil {
		t.Fatal(err)
	}
	if offset != 94*15*d.BytesPerGlyph() {
		t.Errorf("offset of 0xB0A1 = %d, want %d", offset, 94*15*d.BytesPerGlyph())
	}
}

func TestOffsetMonotonicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	d := testDescriptor(t, "HZK16", 16, false)
	base, err := GlyphOffset(d, gb.Code{High: 0xB0, Low: 0xA1})
	if err != nil {
		t.Fatal(err)
	}
	next, err := GlyphOffset(d, gb.Code{High: 0xB0, Low: 0xA2})
	if err != nil {
		t.Fatal(err)
	}
	if next-base != d.BytesPerGlyph() {
		t.Errorf("position step = %d, want %d", next-base, d.BytesPerGlyph())
	}
	nextRegion, err := GlyphOffset(d, gb.Code{High: 0xB1, Low: 0xA1})
	if err != nil {
		t.Fatal(err)
	}
	if nextRegion-base != 94*d.BytesPerGlyph() {
		t.Errorf("region step = %d, want %d", nextRegion-base, 94*d.BytesPerGlyph())
	}
}

func TestOffsetRegionSkip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	d := testDescriptor(t, "HZK48", 48, true)
	// first addressable glyph after the 15-region skip
	offset, err := GlyphOffset(d, gb.Code{High: 0xB0, Low: 0xA1})
	if err != nil {
		t.Fatal(err)
	}
	if offset != 0 {
		t.Errorf("offset of 0xB0A1 in a region-skip font = %d, want 0", offset)
	}
	// codes addressing an omitted region are invalid, not negative
	if _, err := GlyphOffset(d, gb.Code{High: 0xA1, Low: 0xA1}); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("omitted region must yield ErrInvalidCode, got %v", err)
	}
}

func TestOffsetInvalidCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	d := testDescriptor(t, "HZK16", 16, false)
	bad := []gb.Code{
		{High: 0xA0, Low: 0xA1}, // region 0
		{High: 0xFF, Low: 0xA1}, // region 95
		{High: 0xB0, Low: 0xA0}, // position 0
		{High: 0xB0, Low: 0xFF}, // position 95
		{High: 0x00, Low: 0x00},
	}
	for _, code := range bad {
		if _, err := GlyphOffset(d, code); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("GlyphOffset(%s) = %v, want ErrInvalidCode", code, err)
		}
	}
}
