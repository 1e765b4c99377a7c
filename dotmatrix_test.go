package dotmatrix

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/dotmatrix/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStandardDescriptors(t *testing.T) {
	descs := StandardDescriptors()
	if len(descs) != 6 {
		t.Fatalf("expected 6 standard variants, have %d", len(descs))
	}
	for _, d := range descs {
		wantSkip := d.Width >= 40
		if d.RegionSkip != wantSkip {
			t.Errorf("%s: region-skip = %v, want %v", d.Name, d.RegionSkip, wantSkip)
		}
	}
}

func TestOpenRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	dir := t.TempDir()
	// a blank but correctly sized HZK16 file
	data := make([]byte, 94*94*32)
	if err := os.WriteFile(filepath.Join(dir, "HZK16"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	reg, err := OpenRegistry(dir)
	if err != nil {
		t.Fatal(err)
	}
	if names := reg.Names(); len(names) != 1 || names[0] != "HZK16" {
		t.Fatalf("registered names = %v, want [HZK16]", names)
	}
	if err := reg.SetCurrent(context.Background(), "HZK16"); err != nil {
		t.Fatal(err)
	}
	// without a JSON resource the mapping table derives from the charmap,
	// so CJK code points must resolve to (blank) glyphs
	store := reg.Current()
	if _, err := store.CharGlyph('中'); err != nil {
		t.Errorf("expected charmap fallback to cover 中: %v", err)
	}
	bmp := raster.NewBitmap(64, 16)
	if drawn := RenderText(bmp, reg, "A中", 0, 0, raster.Options{}); drawn != 2 {
		t.Errorf("drawn = %d, want 2", drawn)
	}
}

func TestOpenRegistryWithoutFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	if _, err := OpenRegistry(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without font files")
	}
}
