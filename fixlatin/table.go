package fixlatin

import (
	"sync"
	stdlib "unicode/utf8"
)

// cp1252 holds the Windows-1252 characters that differ from ISO-8859-1.
// 0x81, 0x8D, 0x8F, 0x90 and 0x9D are undefined in CP1252 and keep their
// Latin-1 value.
var cp1252 = map[byte][]byte{
	0x80: {0xE2, 0x82, 0xAC}, // EURO SIGN
	0x82: {0xE2, 0x80, 0x9A}, // SINGLE LOW-9 QUOTATION MARK
	0x83: {0xC6, 0x92},       // LATIN SMALL LETTER F WITH HOOK
	0x84: {0xE2, 0x80, 0x9E}, // DOUBLE LOW-9 QUOTATION MARK
	0x85: {0xE2, 0x80, 0xA6}, // HORIZONTAL ELLIPSIS
	0x86: {0xE2, 0x80, 0xA0}, // DAGGER
	0x87: {0xE2, 0x80, 0xA1}, // DOUBLE DAGGER
	0x88: {0xCB, 0x86},       // MODIFIER LETTER CIRCUMFLEX ACCENT
	0x89: {0xE2, 0x80, 0xB0}, // PER MILLE SIGN
	0x8A: {0xC5, 0xA0},       // LATIN CAPITAL LETTER S WITH CARON
	0x8B: {0xE2, 0x80, 0xB9}, // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x8C: {0xC5, 0x92},       // LATIN CAPITAL LIGATURE OE
	0x8E: {0xC5, 0xBD},       // LATIN CAPITAL LETTER Z WITH CARON
	0x91: {0xE2, 0x80, 0x98}, // LEFT SINGLE QUOTATION MARK
	0x92: {0xE2, 0x80, 0x99}, // RIGHT SINGLE QUOTATION MARK
	0x93: {0xE2, 0x80, 0x9C}, // LEFT DOUBLE QUOTATION MARK
	0x94: {0xE2, 0x80, 0x9D}, // RIGHT DOUBLE QUOTATION MARK
	0x95: {0xE2, 0x80, 0xA2}, // BULLET
	0x96: {0xE2, 0x80, 0x93}, // EN DASH
	0x97: {0xE2, 0x80, 0x94}, // EM DASH
	0x98: {0xCB, 0x9C},       // SMALL TILDE
	0x99: {0xE2, 0x84, 0xA2}, // TRADE MARK SIGN
	0x9A: {0xC5, 0xA1},       // LATIN SMALL LETTER S WITH CARON
	0x9B: {0xE2, 0x80, 0xBA}, // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x9C: {0xC5, 0x93},       // LATIN SMALL LIGATURE OE
	0x9E: {0xC5, 0xBE},       // LATIN SMALL LETTER Z WITH CARON
	0x9F: {0xC5, 0xB8},       // LATIN CAPITAL LETTER Y WITH DIAERESIS
}

// entry is the UTF-8 form of one legacy byte.
type entry struct {
	n uint8
	b [3]byte
}

// Table maps each byte in 0x80-0xFF to the UTF-8 encoding of the character
// it stands for in CP1252, falling back to ISO-8859-1 where CP1252 leaves a
// byte undefined. A Table is immutable once built and safe for concurrent
// use.
type Table struct {
	entries [128]entry
}

// NewTable builds a Table. Most callers want DefaultTable instead.
func NewTable() *Table {
	t := &Table{}
	for i := range t.entries {
		e := &t.entries[i]
		e.n = uint8(len(stdlib.AppendRune(e.b[:0], rune(0x80+i))))
	}
	for b, seq := range cp1252 {
		e := &t.entries[b-0x80]
		e.n = uint8(copy(e.b[:], seq))
	}
	return t
}

var defaultTable = sync.OnceValue(NewTable)

// DefaultTable returns the process-wide Table, building it on first use.
func DefaultTable() *Table {
	return defaultTable()
}

// Append appends the UTF-8 form of b to dst. Bytes below 0x80 are appended
// unchanged.
func (t *Table) Append(dst []byte, b byte) []byte {
	if b < 0x80 {
		return append(dst, b)
	}
	e := &t.entries[b-0x80]
	return append(dst, e.b[:e.n]...)
}

// Len returns the number of bytes Append writes for b.
func (t *Table) Len(b byte) int {
	if b < 0x80 {
		return 1
	}
	return int(t.entries[b-0x80].n)
}

// put copies the UTF-8 form of b into dst and reports the number of bytes
// written, or 0 if dst is too small.
func (t *Table) put(dst []byte, b byte) int {
	e := &t.entries[b-0x80]
	if len(dst) < int(e.n) {
		return 0
	}
	return copy(dst, e.b[:e.n])
}
