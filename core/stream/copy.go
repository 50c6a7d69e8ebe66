package stream

import (
	"errors"
	"io"
)

// DefaultBufferSize is used when a Copier has no valid buffer size.
const DefaultBufferSize = 1024

// Copier moves bytes between two handles through a single fixed-size buffer.
type Copier struct {
	BufferSize int
}

// NewCopier creates a copier with the given buffer size, sizes < 1 use
// DefaultBufferSize.
func NewCopier(bufferSize int) *Copier {
	return &Copier{BufferSize: bufferSize}
}

func (c *Copier) bufferSize() int {
	if c == nil || c.BufferSize < 1 {
		return DefaultBufferSize
	}
	return c.BufferSize
}

// Copy reads src until EOF and writes every chunk to dst before reading the
// next one. Content is passed through untouched. Both handles are closed
// exactly once before Copy returns, whatever the outcome. Bytes written
// before a failure stay written.
func (c *Copier) Copy(dst io.WriteCloser, src io.ReadCloser) (written int64, err error) {
	defer func() {
		if closeErr := src.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close", Stream: describe(src), Err: closeErr}
		}
	}()
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close", Stream: describe(dst), Err: closeErr}
		}
	}()

	buf := make([]byte, c.bufferSize())
	for {
		nr, readErr := src.Read(buf)
		if nr > 0 {
			nw, writeErr := dst.Write(buf[:nr])
			if nw < 0 || nw > nr {
				nw = 0
				if writeErr == nil {
					writeErr = errInvalidWrite
				}
			}
			written += int64(nw)
			if writeErr != nil {
				return written, &IOError{Op: "write", Stream: describe(dst), Err: writeErr}
			}
			if nw != nr {
				return written, &IOError{Op: "write", Stream: describe(dst), Err: io.ErrShortWrite}
			}
		}

		switch {
		case readErr == io.EOF:
			return written, nil
		case readErr != nil:
			return written, &IOError{Op: "read", Stream: describe(src), Err: readErr}
		}
	}
}

var errInvalidWrite = errors.New("invalid write result")

func describe(handle interface{}) string {
	switch h := handle.(type) {
	case *Source:
		return endpointName(h.Name, h.Endpoint)
	case *Sink:
		return endpointName(h.Name, h.Endpoint)
	default:
		return ""
	}
}

func endpointName(name Name, endpoint Endpoint) string {
	if endpoint == EndpointFile {
		return name.Text
	}
	return endpoint.String()
}
