package utf8

import (
	segutf8 "github.com/segmentio/asm/utf8"

	"github.com/jefersonfdasilv/encoding-fixlatin/ascii"
)

// Valid reports whether p is entirely well-formed UTF-8 in the strict modern
// sense: no overlong forms, no surrogates, nothing above U+10FFFF.
func Valid(p []byte) bool {
	// speed up the common case
	if ascii.Valid(p) {
		return true
	}

	idx := ascii.IndexNonASCII(p)
	return segutf8.Valid(p[idx:])
}
