package fixlatin

// Result is the output of Rewrite: UTF-8 bytes, tagged as decoded text
// unless the bytes_only option was set.
type Result struct {
	data []byte
	text bool
}

// Bytes returns the repaired bytes. The caller must not modify them.
func (r *Result) Bytes() []byte {
	return r.data
}

// String returns the repaired bytes as a string.
func (r *Result) String() string {
	return string(r.data)
}

// IsText reports whether the result is tagged as decoded text.
func (r *Result) IsText() bool {
	return r.text
}

// Len returns the length of the result in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// Rewrite validates options and then repairs input with the default table.
// Options are checked before input is looked at, so an unknown option fails
// even for nil input. A nil input with valid options returns (nil, nil).
func Rewrite(input []byte, options map[string]bool) (*Result, error) {
	opts, err := ParseOptions(options)
	if err != nil {
		return nil, err
	}
	return RewriteWith(input, opts), nil
}

// RewriteWith repairs input using already parsed options. A nil input
// returns nil.
func RewriteWith(input []byte, opts Options) *Result {
	if input == nil {
		return nil
	}
	return &Result{
		data: Fix(input),
		text: !opts.BytesOnly,
	}
}
