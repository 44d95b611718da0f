// Package fixlatin repairs byte streams that mix ASCII, UTF-8, ISO-8859-1
// and Windows-1252 into UTF-8.
//
// Input is scanned once from left to right. At each position the rewriter
// looks for, in order, a run of ASCII bytes or a 2, 3, 4 or 5-byte UTF-8
// shaped sequence, and copies what it finds. Any other byte is taken to be
// CP1252 (or Latin-1 where CP1252 is undefined) and replaced by its UTF-8
// form. Two legacy bytes that happen to look like a UTF-8 sequence are kept
// as that sequence; the rewriter has no way to tell them apart.
package fixlatin

import (
	"github.com/jefersonfdasilv/encoding-fixlatin/utf8"
)

// Rewriter converts mixed-encoding bytes to UTF-8 using a shared Table.
// A Rewriter holds no per-call state and may be used concurrently.
type Rewriter struct {
	table *Table
}

// NewRewriter returns a Rewriter that substitutes legacy bytes using t.
// A nil t selects DefaultTable.
func NewRewriter(t *Table) *Rewriter {
	if t == nil {
		t = DefaultTable()
	}
	return &Rewriter{table: t}
}

// Append appends the repaired form of src to dst and returns the extended
// slice.
func (rw *Rewriter) Append(dst, src []byte) []byte {
	if utf8.Valid(src) {
		return append(dst, src...)
	}

	for len(src) > 0 {
		kind, n := utf8.Match(src, true)
		if kind == utf8.NoMatch {
			dst = rw.table.Append(dst, src[0])
			src = src[1:]
			continue
		}
		dst = append(dst, src[:n]...)
		src = src[n:]
	}
	return dst
}

// Fix returns the repaired form of src in a new slice. A nil src gives nil.
func (rw *Rewriter) Fix(src []byte) []byte {
	if src == nil {
		return nil
	}
	return rw.Append(make([]byte, 0, len(src)+len(src)/8), src)
}

// Fix repairs src with the default table. A nil src gives nil without
// building the table.
func Fix(src []byte) []byte {
	if src == nil {
		return nil
	}
	return NewRewriter(nil).Fix(src)
}

// FixString repairs s with the default table.
func FixString(s string) string {
	if s == "" {
		return s
	}
	return string(NewRewriter(nil).Append(make([]byte, 0, len(s)+len(s)/8), []byte(s)))
}
