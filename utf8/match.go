// Package utf8 classifies byte patterns the way a tolerant UTF-8 reader
// sees them: runs of ASCII and lead bytes followed by the right number of
// continuation bytes. It does not decode codepoints.
package utf8

import "github.com/jefersonfdasilv/encoding-fixlatin/ascii"

// Kind is the pattern found at the head of a buffer.
type Kind uint8

const (
	// NoMatch means the head byte is not part of any accepted pattern.
	NoMatch Kind = iota
	// ASCIIRun is one or more bytes in 0x00-0x7F.
	ASCIIRun
	// Seq2 is a lead byte in 0xC0-0xDF and one continuation byte.
	Seq2
	// Seq3 is a lead byte in 0xE0-0xEF and two continuation bytes.
	Seq3
	// Seq4 is a lead byte in 0xF0-0xF7 and three continuation bytes.
	Seq4
	// Seq5 is a lead byte in 0xF8-0xFB and four continuation bytes.
	// Modern UTF-8 stops at four bytes; the long form is kept for tolerance.
	Seq5
	// Short means the buffer ends before the pattern can be decided.
	Short
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case ASCIIRun:
		return "ascii run"
	case Seq2:
		return "2-byte sequence"
	case Seq3:
		return "3-byte sequence"
	case Seq4:
		return "4-byte sequence"
	case Seq5:
		return "5-byte sequence"
	case Short:
		return "short"
	default:
		return "unknown"
	}
}

// MaxSequence is the longest pattern Match accepts.
const MaxSequence = 5

// seqLen is the total sequence length announced by a lead byte, or 0 for
// bytes that cannot start a multi-byte sequence.
var seqLen = [256]uint8{
	// 0x00-0x7F: ASCII, handled as runs
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0x80-0xBF: continuation bytes
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	// 0xC0-0xDF: 2-byte leads, overlong C0/C1 included
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2,
	// 0xE0-0xEF: 3-byte leads
	3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3,
	// 0xF0-0xF7: 4-byte leads
	4, 4, 4, 4, 4, 4, 4, 4,
	// 0xF8-0xFB: 5-byte leads
	5, 5, 5, 5,
	// 0xFC-0xFF: never a lead
	0, 0, 0, 0,
}

// IsContinuation reports whether b is in 0x80-0xBF.
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// SequenceLen returns the length of the multi-byte pattern that lead would
// start, or 0 if lead is not a lead byte.
func SequenceLen(lead byte) int {
	return int(seqLen[lead])
}

// Match classifies the bytes at the head of p and returns the pattern kind
// and its length. Patterns are tried in a fixed order: an ASCII run (as long
// as possible), then 2, 3, 4 and 5-byte sequences. A NoMatch result always
// has length 1 unless p is empty.
//
// If atEOF is false and p ends while the continuation bytes of a lead seen
// so far are all valid, Match returns (Short, 0): more input decides it.
// With atEOF set Match never returns Short.
func Match(p []byte, atEOF bool) (Kind, int) {
	if len(p) == 0 {
		return NoMatch, 0
	}

	if p[0] < 0x80 {
		return ASCIIRun, ascii.RunLength(p)
	}

	n := int(seqLen[p[0]])
	if n == 0 {
		return NoMatch, 1
	}

	for i := 1; i < n; i++ {
		if i == len(p) {
			if atEOF {
				return NoMatch, 1
			}
			return Short, 0
		}
		if !IsContinuation(p[i]) {
			return NoMatch, 1
		}
	}

	return Seq2 + Kind(n-2), n
}
