package fixlatin

import (
	"golang.org/x/text/transform"

	"github.com/jefersonfdasilv/encoding-fixlatin/utf8"
)

// Transformer is a transform.SpanningTransformer that repairs a stream
// chunk by chunk. Its output equals Fix of the whole input however the
// input is split. The zero value uses DefaultTable.
type Transformer struct {
	transform.NopResetter
	table *Table
}

var _ transform.SpanningTransformer = Transformer{}

// NewTransformer returns a Transformer substituting legacy bytes using t.
// A nil t selects DefaultTable.
func NewTransformer(t *Table) Transformer {
	if t == nil {
		t = DefaultTable()
	}
	return Transformer{table: t}
}

// Transform implements transform.Transformer.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	table := t.table
	if table == nil {
		table = DefaultTable()
	}

	for nSrc < len(src) {
		kind, n := utf8.Match(src[nSrc:], atEOF)
		switch kind {
		case utf8.Short:
			return nDst, nSrc, transform.ErrShortSrc
		case utf8.NoMatch:
			m := table.put(dst[nDst:], src[nSrc])
			if m == 0 {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += m
			nSrc++
		case utf8.ASCIIRun:
			// runs may be split across dst buffers
			m := copy(dst[nDst:], src[nSrc:nSrc+n])
			nDst += m
			nSrc += m
			if m < n {
				return nDst, nSrc, transform.ErrShortDst
			}
		default:
			if len(dst)-nDst < n {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+n])
			nSrc += n
		}
	}
	return nDst, nSrc, nil
}

// Span implements transform.SpanningTransformer. It returns the length of
// the prefix of src that Transform would copy unchanged.
func (t Transformer) Span(src []byte, atEOF bool) (n int, err error) {
	for n < len(src) {
		kind, m := utf8.Match(src[n:], atEOF)
		switch kind {
		case utf8.Short:
			return n, transform.ErrShortSrc
		case utf8.NoMatch:
			return n, transform.ErrEndOfSpan
		}
		n += m
	}
	return n, nil
}
