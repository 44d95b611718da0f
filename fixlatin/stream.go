package fixlatin

import (
	"io"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// NewDecoder returns an encoding.Decoder that repairs mixed-encoding input
// with the default table. Its Bytes, String, Reader and Writer methods all
// produce the same output as Fix.
func NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: NewTransformer(nil)}
}

// NewReader returns a reader whose bytes are the repaired form of r.
func NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, NewTransformer(nil))
}

// NewWriter returns a writer that repairs what is written to it before
// passing it to w. Close must be called to flush a trailing partial
// sequence; it does not close w.
func NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, NewTransformer(nil))
}

// Copy repairs everything read from r into w and returns the number of
// bytes written to w.
func Copy(w io.Writer, r io.Reader) (int64, error) {
	n, err := io.Copy(w, NewReader(r))
	if err != nil {
		return n, errors.Wrap(err, "repair stream")
	}
	return n, nil
}
