/*
Package gb maps Unicode code points onto the legacy GB2312 double-byte
encoding.

GB2312 arranges characters in a 94×94 grid of "qu" (region/row) and "wei"
(position/column) codes. On the wire both bytes are offset by 0xA0, so a
valid CJK code pair lies in the range 0xA1–0xFE for either byte. ASCII
characters have full-width GB2312 counterparts in region 3 (high byte
0xA3), which is how dot-matrix font files address them.

The encoder itself never performs I/O. Coverage beyond ASCII comes from a
MappingTable that is built once — from a JSON resource or from the
character tables shipped with golang.org/x/text — and injected into the
encoder, immutable from then on.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package gb

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dotmatrix.fonts'
func tracer() tracing.Trace {
	return tracing.Select("dotmatrix.fonts")
}

// ErrUnencodable flags a code point without a GB2312 representation.
// Callers are expected to recover locally, e.g. by skipping the character
// or substituting a placeholder glyph.
var ErrUnencodable = errors.New("code point not representable in GB2312")

// Code is a GB2312 code pair: a high ("qu"/region) byte and a low
// ("wei"/position) byte. Codes are transient values, produced by an
// Encoder and consumed by glyph layout arithmetic.
type Code struct {
	High byte
	Low  byte
}

// FromPacked splits a packed 16-bit GB2312 value, big-endian semantics:
// high = v>>8, low = v&0xFF.
func FromPacked(v uint16) Code {
	return Code{High: byte(v >> 8), Low: byte(v & 0xFF)}
}

// Packed returns the code as a single big-endian 16-bit value.
func (c Code) Packed() uint16 {
	return uint16(c.High)<<8 | uint16(c.Low)
}

func (c Code) String() string {
	return fmt.Sprintf("0x%02X%02X", c.High, c.Low)
}
