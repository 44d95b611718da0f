package utf8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		atEOF bool
		kind  Kind
		n     int
	}{
		{name: "empty", in: "", atEOF: true, kind: NoMatch, n: 0},
		{name: "ascii run is greedy", in: "AB\x80", atEOF: true, kind: ASCIIRun, n: 2},
		{name: "ascii run to end", in: "hello", atEOF: false, kind: ASCIIRun, n: 5},
		{name: "nul", in: "\x00", atEOF: true, kind: ASCIIRun, n: 1},
		{name: "2-byte", in: "\xc3\xa9", atEOF: true, kind: Seq2, n: 2},
		{name: "2-byte overlong", in: "\xc0\x80", atEOF: true, kind: Seq2, n: 2},
		{name: "2-byte then ascii", in: "\xc3\xa9abc", atEOF: true, kind: Seq2, n: 2},
		{name: "3-byte", in: "\xe2\x82\xac", atEOF: true, kind: Seq3, n: 3},
		{name: "3-byte surrogate", in: "\xed\xa0\x80", atEOF: true, kind: Seq3, n: 3},
		{name: "4-byte", in: "\xf0\x9f\x98\x80", atEOF: true, kind: Seq4, n: 4},
		{name: "4-byte beyond U+10FFFF", in: "\xf7\xbf\xbf\xbf", atEOF: true, kind: Seq4, n: 4},
		{name: "5-byte", in: "\xfb\xbf\xbf\xbf\xbf", atEOF: true, kind: Seq5, n: 5},
		{name: "5-byte lower bound", in: "\xf8\x88\x80\x80\x80", atEOF: true, kind: Seq5, n: 5},
		{name: "lone continuation", in: "\x80", atEOF: true, kind: NoMatch, n: 1},
		{name: "cp1252 quote", in: "\x93", atEOF: true, kind: NoMatch, n: 1},
		{name: "latin-1 lead without continuations", in: "\xe9", atEOF: true, kind: NoMatch, n: 1},
		{name: "latin-1 lead followed by ascii", in: "\xe9t\xe9", atEOF: true, kind: NoMatch, n: 1},
		{name: "3-byte lead with one continuation", in: "\xe9\xa9x", atEOF: true, kind: NoMatch, n: 1},
		{name: "6-byte lead is never a lead", in: "\xfc\x80\x80\x80\x80\x80", atEOF: true, kind: NoMatch, n: 1},
		{name: "0xff", in: "\xff", atEOF: true, kind: NoMatch, n: 1},
		{name: "two legacy bytes that look like utf-8", in: "\xc3\xa9", atEOF: false, kind: Seq2, n: 2},
		{name: "truncated at eof", in: "\xe2\x82", atEOF: true, kind: NoMatch, n: 1},
		{name: "truncated mid stream", in: "\xe2\x82", atEOF: false, kind: Short, n: 0},
		{name: "lone lead mid stream", in: "\xc3", atEOF: false, kind: Short, n: 0},
		{name: "decided before end of buffer", in: "\xe2x", atEOF: false, kind: NoMatch, n: 1},
		{name: "5-byte truncated mid stream", in: "\xf8\x88\x80\x80", atEOF: false, kind: Short, n: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, n := Match([]byte(tt.in), tt.atEOF)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestSequenceLen(t *testing.T) {
	for b := 0; b < 256; b++ {
		var want int
		switch {
		case b >= 0xC0 && b <= 0xDF:
			want = 2
		case b >= 0xE0 && b <= 0xEF:
			want = 3
		case b >= 0xF0 && b <= 0xF7:
			want = 4
		case b >= 0xF8 && b <= 0xFB:
			want = 5
		}
		if got := SequenceLen(byte(b)); got != want {
			t.Errorf("SequenceLen(%#02x) = %d; want %d", b, got, want)
		}
		if got := IsContinuation(byte(b)); got != (b >= 0x80 && b <= 0xBF) {
			t.Errorf("IsContinuation(%#02x) = %v", b, got)
		}
	}
}

// Every strictly valid UTF-8 string is consumed by Match without a single
// NoMatch step.
func TestMatchAcceptsValid(t *testing.T) {
	for _, s := range []string{"", "a", "Ж", "брэд-ЛГТМ", "☺☻☹", "日本語", "\U0010FFFF", "a\uFFFDb"} {
		assert.True(t, matchesAll([]byte(s)), "%q", s)
	}
	assert.False(t, matchesAll([]byte("caf\xe9")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ascii run", ASCIIRun.String())
	assert.Equal(t, "5-byte sequence", Seq5.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func FuzzMatch(f *testing.F) {
	f.Add([]byte("caf\xe9"), true)
	f.Add([]byte("\xe2\x82"), false)
	f.Add([]byte("\xfb\xbf\xbf\xbf\xbf"), true)

	f.Fuzz(func(t *testing.T, p []byte, atEOF bool) {
		kind, n := Match(p, atEOF)
		switch {
		case len(p) == 0:
			assert.Equal(t, 0, n)
		case kind == Short:
			assert.False(t, atEOF)
			assert.Equal(t, 0, n)
			assert.Less(t, len(p), SequenceLen(p[0]))
		case kind == NoMatch:
			assert.Equal(t, 1, n)
		case kind == ASCIIRun:
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, len(p))
		default:
			assert.Equal(t, SequenceLen(p[0]), n)
			assert.LessOrEqual(t, n, MaxSequence)
		}
	})
}
