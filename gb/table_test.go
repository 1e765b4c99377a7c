package gb

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseTableValueShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	table, err := ParseTable([]byte(`{
		"19990": [192, 165],
		"20013": 54992,
		"22269": {"bytes": [185, 250]}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 3 {
		t.Fatalf("expected 3 entries, have %d", table.Len())
	}
	checks := []struct {
		r    rune
		want Code
	}{
		{19990, Code{0xC0, 0xA5}}, // array form
		{20013, Code{0xD6, 0xD0}}, // packed integer form, 0xD6D0
		{22269, Code{0xB9, 0xFA}}, // object form
	}
	for _, c := range checks {
		code, ok := table.Lookup(c.r)
		if !ok {
			t.Fatalf("Lookup(%#U) missed", c.r)
		}
		if code != c.want {
			t.Errorf("Lookup(%#U) = %s, want %s", c.r, code, c.want)
		}
	}
}

func TestPackedAndArrayFormsEquivalent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	asArray, err := ParseTable([]byte(`{"19990": [192, 165]}`))
	if err != nil {
		t.Fatal(err)
	}
	asPacked, err := ParseTable([]byte(`{"19990": 49317}`)) // 0xC0A5
	if err != nil {
		t.Fatal(err)
	}
	a, _ := asArray.Lookup(19990)
	p, _ := asPacked.Lookup(19990)
	if a != p {
		t.Errorf("array form %s and packed form %s disagree", a, p)
	}
}

func TestParseTableSkipsUnusableEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	table, err := ParseTable([]byte(`{
		"not-a-number": [192, 165],
		"19990": [192],
		"20013": [300, -1],
		"22269": [185, 250]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected only the well-formed entry to survive, have %d", table.Len())
	}
	if _, ok := table.Lookup(22269); !ok {
		t.Error("well-formed entry was dropped")
	}
}

func TestTableFromCharmap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	table, err := TableFromCharmap()
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() < 6000 {
		t.Fatalf("charmap table suspiciously small: %d entries", table.Len())
	}
	code, ok := table.Lookup('中')
	if !ok {
		t.Fatal("expected charmap table to cover 中")
	}
	if (code != Code{0xD6, 0xD0}) {
		t.Errorf("charmap code for 中 = %s, want 0xD6D0", code)
	}
	if _, ok := table.Lookup('A'); ok {
		t.Error("ASCII must not be table-driven")
	}
}

func TestCodePacking(t *testing.T) {
	c := Code{0xB0, 0xA1}
	if c.Packed() != 0xB0A1 {
		t.Errorf("Packed() = %04X", c.Packed())
	}
	if FromPacked(0xB0A1) != c {
		t.Errorf("FromPacked mismatch: %s", FromPacked(0xB0A1))
	}
}
