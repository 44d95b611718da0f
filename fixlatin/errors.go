package fixlatin

import "github.com/pkg/errors"

// ErrInvalidArgument is returned when a caller passes an option the
// rewriter does not recognize.
var ErrInvalidArgument = errors.New("invalid argument")
