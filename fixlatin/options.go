package fixlatin

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// OptionBytesOnly is the option key that asks Rewrite for raw bytes rather
// than text.
const OptionBytesOnly = "bytes_only"

// Options control how Rewrite presents its result. They never change the
// bytes produced.
type Options struct {
	// BytesOnly marks the result as raw bytes instead of decoded text.
	BytesOnly bool
}

// ParseOptions converts named options into Options. Keys are matched after
// replacing '-' with '_', so "bytes-only" is accepted too. An unknown key,
// or two spellings of one option with different values, yields an error
// wrapping ErrInvalidArgument that names the keys.
func ParseOptions(m map[string]bool) (Options, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var opts Options
	seen := map[string]string{}
	for _, k := range keys {
		name := strings.ReplaceAll(k, "-", "_")
		if prev, ok := seen[name]; ok && m[prev] != m[k] {
			return Options{}, errors.Wrapf(ErrInvalidArgument, "options %q and %q conflict", prev, k)
		}
		seen[name] = k

		switch name {
		case OptionBytesOnly:
			opts.BytesOnly = m[k]
		default:
			return Options{}, errors.Wrapf(ErrInvalidArgument, "unknown option %q", k)
		}
	}
	return opts, nil
}
