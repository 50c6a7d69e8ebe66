package stream

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrIO matches every error reported by the resolver and the copier.
var ErrIO = errors.New("i/o failure")

// IOError is a failed stream operation.
type IOError struct {
	// Op is one of "open", "read", "write" or "close".
	Op string
	// Stream names the endpoint if it's known.
	Stream string
	Err    error
}

func (e *IOError) Error() string {
	var pathErr *fs.PathError
	switch {
	case errors.As(e.Err, &pathErr):
		// Already names the operation and path.
		return e.Err.Error()
	case e.Stream == "":
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Stream, e.Err)
	}
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports ErrIO as a match.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
