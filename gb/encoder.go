package gb

// Encoder converts Unicode code points into GB2312 code pairs. ASCII is
// handled arithmetically; everything above 127 resolves through the
// injected mapping table. An Encoder is a plain value with no hidden
// global state, so independent encoders (e.g. in tests) never interfere.
type Encoder struct {
	table *MappingTable
}

// NewEncoder creates an encoder backed by table. A nil table is legal and
// degrades coverage to ASCII only.
func NewEncoder(table *MappingTable) *Encoder {
	if table == nil {
		tracer().Infof("GB2312 encoder without mapping table, ASCII coverage only")
	}
	return &Encoder{table: table}
}

// Encode maps a code point to its GB2312 code pair. Code points without a
// representation yield ErrUnencodable.
//
// The ASCII arithmetic replicates the historical dot-matrix quirk of
// mapping control characters with the same linear offset as printable
// characters: low byte = 0xA0 + code for code < 0x20. For DEL (0x7F) that
// same formula would overflow the low byte (0xA0+0x7F > 0xFF); rather
// than silently wrapping, such code points are rejected as unencodable.
func (e *Encoder) Encode(r rune) (Code, error) {
	switch {
	case r < 0:
		return Code{}, ErrUnencodable
	case r < 0x20:
		return Code{High: 0xA3, Low: 0xA0 + byte(r)}, nil
	case r <= 0x7E:
		return Code{High: 0xA3, Low: 0xA0 + byte(r-0x20)}, nil
	case r < 128:
		// 0xA0 + 0x7F does not fit a byte; reject instead of wrapping.
		return Code{}, ErrUnencodable
	}
	if c, ok := e.table.Lookup(r); ok {
		return c, nil
	}
	return Code{}, ErrUnencodable
}

// CanEncode reports whether Encode would succeed for r, without
// constructing the code pair. The branch structure mirrors Encode
// exactly; the two must never disagree.
func (e *Encoder) CanEncode(r rune) bool {
	switch {
	case r < 0:
		return false
	case r < 0x20:
		return true
	case r <= 0x7E:
		return true
	case r < 128:
		return false
	}
	_, ok := e.table.Lookup(r)
	return ok
}
