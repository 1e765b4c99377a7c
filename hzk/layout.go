package hzk

import (
	"fmt"

	"github.com/npillmayer/dotmatrix/gb"
)

// GB2312 grid constants. 94 positions per region, both bytes offset by
// 0xA0 on the wire.
const (
	gridSize   = 94
	byteBase   = 0xA0
	regionSkip = 15 // regions omitted from HZK40/HZK48 files
)

// GlyphOffset computes the byte offset of a glyph inside a font file for
// the given descriptor and GB2312 code pair.
//
// Standard variants address the full 94×94 grid:
//
//	qu = high − 0xA0, wei = low − 0xA0
//	offset = (94·(qu−1) + (wei−1)) · bytesPerGlyph
//
// Region-skip variants (HZK40, HZK48) omit the first 15 regions, so the
// region index shifts down before the 94-column stride applies:
//
//	offset = ((high − 0xA1 − 15)·94 + (low − 0xA1)) · bytesPerGlyph
//
// A code pair outside the addressable range yields ErrInvalidCode; a
// negative or out-of-grid offset never escapes to glyph extraction.
func GlyphOffset(d FontDescriptor, code gb.Code) (int, error) {
	qu := int(code.High) - byteBase
	wei := int(code.Low) - byteBase
	if qu < 1 || qu > gridSize || wei < 1 || wei > gridSize {
		return 0, fmt.Errorf("%w: %s", ErrInvalidCode, code)
	}
	if d.RegionSkip {
		if qu <= regionSkip {
			return 0, fmt.Errorf("%w: %s addresses an omitted region", ErrInvalidCode, code)
		}
		return ((qu-1-regionSkip)*gridSize + (wei - 1)) * d.BytesPerGlyph(), nil
	}
	return (gridSize*(qu-1) + (wei - 1)) * d.BytesPerGlyph(), nil
}
