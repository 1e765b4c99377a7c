package gb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// MappingTable is a read-only map from Unicode code points to GB2312 code
// pairs, covering the characters beyond ASCII. It is populated exactly
// once and immutable afterwards; an absent entry is an expected state
// (character not covered by GB2312), not a defect of the table.
type MappingTable struct {
	entries map[rune]Code
}

// Lookup returns the code pair for r, if the table covers it.
func (t *MappingTable) Lookup(r rune) (Code, bool) {
	if t == nil {
		return Code{}, false
	}
	c, ok := t.entries[r]
	return c, ok
}

// Len returns the number of covered code points.
func (t *MappingTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// JSON mapping resources are loose about their value shape: a two-element
// byte array [high, low], a packed big-endian integer, or an object with
// a "bytes" field holding the byte array. All three forms are resolved
// into canonical Code pairs here, at parse time, so lookups never
// dispatch on value shape.

type tableEntry struct {
	Bytes []int `json:"bytes"`
}

// ParseTable decodes a JSON mapping resource into a MappingTable.
// Keys are decimal Unicode code points (JSON numbers arrive as strings in
// object position). Entries with an unusable key or value shape are
// skipped with a trace warning; they never fail the whole table.
func ParseTable(data []byte) (*MappingTable, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("GB2312 mapping table: %w", err)
	}
	t := &MappingTable{entries: make(map[rune]Code, len(raw))}
	for key, value := range raw {
		cp, err := strconv.ParseUint(key, 10, 32)
		if err != nil || cp > utf8.MaxRune {
			tracer().Infof("mapping table: skipping unusable key %q", key)
			continue
		}
		code, ok := resolveTableValue(value)
		if !ok {
			tracer().Infof("mapping table: skipping unusable value for key %q", key)
			continue
		}
		t.entries[rune(cp)] = code
	}
	tracer().Debugf("mapping table: %d entries", len(t.entries))
	return t, nil
}

// resolveTableValue canonicalizes one of the three accepted value shapes
// into a Code pair.
func resolveTableValue(value json.RawMessage) (Code, bool) {
	var pair []int
	if err := json.Unmarshal(value, &pair); err == nil {
		return codeFromBytes(pair)
	}
	var packed uint32
	if err := json.Unmarshal(value, &packed); err == nil {
		if packed > 0xFFFF {
			return Code{}, false
		}
		return FromPacked(uint16(packed)), true
	}
	var obj tableEntry
	if err := json.Unmarshal(value, &obj); err == nil && obj.Bytes != nil {
		return codeFromBytes(obj.Bytes)
	}
	return Code{}, false
}

func codeFromBytes(pair []int) (Code, bool) {
	if len(pair) != 2 {
		return Code{}, false
	}
	hi, lo := pair[0], pair[1]
	if hi < 0 || hi > 0xFF || lo < 0 || lo > 0xFF {
		return Code{}, false
	}
	return Code{High: byte(hi), Low: byte(lo)}, true
}

// TableFromCharmap builds a complete mapping table by walking the 94×94
// region/position grid and decoding each candidate byte pair with the
// simplified-Chinese character tables from golang.org/x/text. Grid cells
// without an assigned character are skipped. This covers use-cases where
// no JSON mapping resource is available, and backs the table generator in
// hzk-tools.
func TableFromCharmap() (*MappingTable, error) {
	dec := simplifiedchinese.GBK.NewDecoder()
	t := &MappingTable{entries: make(map[rune]Code, 94*94)}
	buf := make([]byte, 2)
	for qu := 1; qu <= 94; qu++ {
		for wei := 1; wei <= 94; wei++ {
			buf[0] = byte(0xA0 + qu)
			buf[1] = byte(0xA0 + wei)
			decoded, err := dec.Bytes(buf)
			if err != nil {
				continue
			}
			r, size := utf8.DecodeRune(decoded)
			if r == utf8.RuneError || size != len(decoded) {
				continue // unassigned grid cell
			}
			if r < 128 {
				continue // ASCII is handled arithmetically by the encoder
			}
			if _, exists := t.entries[r]; !exists {
				t.entries[r] = Code{High: buf[0], Low: buf[1]}
			}
		}
	}
	tracer().Debugf("charmap-derived mapping table: %d entries", len(t.entries))
	return t, nil
}
