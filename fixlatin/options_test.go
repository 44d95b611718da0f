package fixlatin

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name     string
		in       map[string]bool
		expected Options
		wantErr  string
	}{
		{name: "nil", in: nil, expected: Options{}},
		{name: "empty", in: map[string]bool{}, expected: Options{}},
		{name: "bytes_only", in: map[string]bool{"bytes_only": true}, expected: Options{BytesOnly: true}},
		{name: "bytes-only alias", in: map[string]bool{"bytes-only": true}, expected: Options{BytesOnly: true}},
		{name: "explicit false", in: map[string]bool{"bytes_only": false}, expected: Options{}},
		{name: "unknown", in: map[string]bool{"frobnicate": true}, wantErr: `unknown option "frobnicate"`},
		{name: "unknown with valid", in: map[string]bool{"bytes_only": true, "zap": false}, wantErr: `unknown option "zap"`},
		{name: "both spellings agree", in: map[string]bool{"bytes-only": true, "bytes_only": true}, expected: Options{BytesOnly: true}},
		{name: "both spellings conflict", in: map[string]bool{"bytes-only": true, "bytes_only": false}, wantErr: `options "bytes-only" and "bytes_only" conflict`},
		{name: "case matters", in: map[string]bool{"Bytes_Only": true}, wantErr: `unknown option "Bytes_Only"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestParseOptionsReportsFirstUnknownKey(t *testing.T) {
	_, err := ParseOptions(map[string]bool{"zz": true, "aa": true, "mm": true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"aa"`)
}

func TestRewrite(t *testing.T) {
	in := []byte{0x41, 0x42, 0x80}

	res, err := Rewrite(in, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsText())
	assert.Equal(t, []byte{0x41, 0x42, 0xE2, 0x82, 0xAC}, res.Bytes())
	assert.Equal(t, "AB€", res.String())
	assert.Equal(t, 5, res.Len())

	raw, err := Rewrite(in, map[string]bool{"bytes_only": true})
	require.NoError(t, err)
	assert.False(t, raw.IsText())
	assert.Equal(t, res.Bytes(), raw.Bytes(), "bytes_only must not change content")
}

func TestRewriteNilInput(t *testing.T) {
	res, err := Rewrite(nil, map[string]bool{"bytes_only": true})
	assert.NoError(t, err)
	assert.Nil(t, res)
	assert.Nil(t, RewriteWith(nil, Options{}))
}

func TestRewriteUnknownOption(t *testing.T) {
	res, err := Rewrite([]byte("caf\xe9"), map[string]bool{"frobnicate": true})
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "frobnicate")

	// options are checked even when there is nothing to rewrite
	_, err = Rewrite(nil, map[string]bool{"frobnicate": true})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestRewriteEmptyInput(t *testing.T) {
	res, err := Rewrite([]byte{}, nil)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Len())
	assert.Equal(t, "", res.String())
}
