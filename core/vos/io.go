package vos

import (
	"io"
	"os"
)

// StreamSet is a VIO over caller supplied streams.
type StreamSet struct {
	In  io.ReadCloser
	Out io.WriteCloser
	Err io.WriteCloser
}

var _ VIO = (*StreamSet)(nil)

// NewStreamSet builds a VIO from plain readers and writers. Streams that
// already close are used as is; missing ones behave like /dev/null.
func NewStreamSet(stdin io.Reader, stdout, stderr io.Writer) *StreamSet {
	return &StreamSet{
		In:  readCloser(stdin),
		Out: writeCloser(stdout),
		Err: writeCloser(stderr),
	}
}

// NewNullIO is the VIO of a process started without inherited streams:
// stdin reports os.ErrClosed and output is dropped.
func NewNullIO() VIO {
	return NewStreamSet(nil, nil, nil)
}

// Stdin implements VIO.Stdin.
func (s *StreamSet) Stdin() io.ReadCloser { return s.In }

// Stdout implements VIO.Stdout.
func (s *StreamSet) Stdout() io.WriteCloser { return s.Out }

// Stderr implements VIO.Stderr.
func (s *StreamSet) Stderr() io.WriteCloser { return s.Err }

// NopWriteCloser hides the Close method of w, the resolver hands standard
// streams out through it so closing a sink never closes the process stream.
func NopWriteCloser(w io.Writer) io.WriteCloser {
	return unclosable{w}
}

func writeCloser(w io.Writer) io.WriteCloser {
	switch v := w.(type) {
	case nil:
		return nullStream{}
	case io.WriteCloser:
		return v
	default:
		return unclosable{v}
	}
}

func readCloser(r io.Reader) io.ReadCloser {
	switch v := r.(type) {
	case nil:
		return nullStream{}
	case io.ReadCloser:
		return v
	default:
		return io.NopCloser(v)
	}
}

type unclosable struct {
	io.Writer
}

func (unclosable) Close() error { return nil }

// nullStream is both ends of /dev/null for a process without inherited
// streams.
type nullStream struct{}

func (nullStream) Read([]byte) (int, error)    { return 0, os.ErrClosed }
func (nullStream) Write(b []byte) (int, error) { return len(b), nil }
func (nullStream) Close() error                { return nil }
