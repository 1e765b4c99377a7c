package gb

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEncodePrintableASCII(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	enc := NewEncoder(nil)
	spot := []struct {
		r    rune
		want Code
	}{
		{0x20, Code{0xA3, 0xA0}},
		{'A', Code{0xA3, 0xC1}},
		{0x7E, Code{0xA3, 0xFE}},
	}
	for _, s := range spot {
		code, err := enc.Encode(s.r)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", s.r, err)
		}
		if code != s.want {
			t.Errorf("Encode(%q) = %s, want %s", s.r, code, s.want)
		}
	}
	for r := rune(0x20); r <= 0x7E; r++ {
		code, err := enc.Encode(r)
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", r, err)
		}
		want := Code{0xA3, 0xA0 + byte(r-0x20)}
		if code != want {
			t.Errorf("Encode(%q) = %s, want %s", r, code, want)
		}
	}
}

func TestEncodeControlCharQuirk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	enc := NewEncoder(nil)
	// control characters keep the historical linear-offset formula
	code, err := enc.Encode(0x01)
	if err != nil {
		t.Fatalf("Encode(0x01) failed: %v", err)
	}
	if (code != Code{0xA3, 0xA1}) {
		t.Errorf("Encode(0x01) = %s, want 0xA3A1", code)
	}
	// DEL would overflow the low byte; policy is to reject, not wrap
	if _, err := enc.Encode(0x7F); !errors.Is(err, ErrUnencodable) {
		t.Errorf("Encode(0x7F) = %v, want ErrUnencodable", err)
	}
}

func TestEncodeTableLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	table, err := ParseTable([]byte(`{"19990": [192, 165]}`))
	if err != nil {
		t.Fatal(err)
	}
	enc := NewEncoder(table)
	code, err := enc.Encode(19990) // 世
	if err != nil {
		t.Fatalf("Encode(19990) failed: %v", err)
	}
	if (code != Code{0xC0, 0xA5}) {
		t.Errorf("Encode(19990) = %s, want 0xC0A5", code)
	}
	if _, err := enc.Encode(0x4E2D); !errors.Is(err, ErrUnencodable) {
		t.Errorf("expected uncovered code point to be unencodable, got %v", err)
	}
}

func TestCanEncodeAgreesWithEncode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dotmatrix.fonts")
	defer teardown()
	//
	table, err := ParseTable([]byte(`{"19990": [192, 165]}`))
	if err != nil {
		t.Fatal(err)
	}
	enc := NewEncoder(table)
	probe := make([]rune, 0, 200)
	for r := rune(0); r < 0x90; r++ {
		probe = append(probe, r)
	}
	probe = append(probe, 19990, 0x4E2D, 0xFFFD)
	for _, r := range probe {
		_, err := enc.Encode(r)
		if got, want := enc.CanEncode(r), err == nil; got != want {
			t.Errorf("CanEncode(%#U) = %v disagrees with Encode error %v", r, got, err)
		}
	}
}
