// Package config resolves rewrite options from a TOML file and from
// key[=bool] strings given on the command line.
//
// A config file holds a single [options] table:
//
//	[options]
//	bytes_only = true
package config

import (
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/jefersonfdasilv/encoding-fixlatin/fixlatin"
)

// ErrInvalidOption is returned for malformed option strings and config
// files. It wraps fixlatin.ErrInvalidArgument.
var ErrInvalidOption = errors.Wrap(fixlatin.ErrInvalidArgument, "invalid option")

// File is the layout of a config file.
type File struct {
	Options map[string]bool `toml:"options"`
}

// Parse decodes config file content. Unknown tables and non-boolean option
// values are rejected.
func Parse(content []byte) (map[string]bool, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(content)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrapf(ErrInvalidOption, "decode config: %v", err)
	}
	if f.Options == nil {
		f.Options = map[string]bool{}
	}
	return f.Options, nil
}

// Load reads and parses the config file at path.
func Load(path string) (map[string]bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	opts, err := Parse(content)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return opts, nil
}

// ParseOption splits "key" or "key=value" into a key and a boolean value.
// A bare key means true.
func ParseOption(s string) (string, bool, error) {
	key, value, hasValue := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, errors.Wrapf(ErrInvalidOption, "empty option name in %q", s)
	}
	if !hasValue {
		return key, true, nil
	}

	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return "", false, errors.Wrapf(ErrInvalidOption, "option %q: value %q is not a boolean", key, value)
	}
	return key, v, nil
}

// Resolve merges the options in the file at path (skipped when path is
// empty) with the option strings in flags, which take precedence, and
// validates the result.
func Resolve(path string, flags []string) (fixlatin.Options, error) {
	merged := map[string]bool{}
	if path != "" {
		fromFile, err := Load(path)
		if err != nil {
			return fixlatin.Options{}, err
		}
		for k, v := range fromFile {
			merged[k] = v
		}
	}

	for _, s := range flags {
		k, v, err := ParseOption(s)
		if err != nil {
			return fixlatin.Options{}, err
		}
		merged[k] = v
	}

	return fixlatin.ParseOptions(merged)
}
