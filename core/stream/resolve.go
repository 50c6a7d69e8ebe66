package stream

import (
	"io"
	"os"

	"github.com/josephlewis42/echocat/core/vos"
	"github.com/spf13/afero"
)

// DestinationFileMode is the permission of files created by OpenSink,
// before the umask is applied.
const DestinationFileMode os.FileMode = 0666

// Source is a readable stream handle.
type Source struct {
	io.ReadCloser

	Name     Name
	Endpoint Endpoint
}

// Sink is a writable stream handle.
type Sink struct {
	io.WriteCloser

	Name     Name
	Endpoint Endpoint
}

// Resolver opens symbolic names against a filesystem and a set of standard
// streams.
type Resolver struct {
	FS afero.Fs
	IO vos.VIO
}

// NewResolver creates a resolver for the process.
func NewResolver(virtOS vos.VOS) *Resolver {
	return &Resolver{FS: virtOS, IO: virtOS}
}

// OpenSource opens name for reading. Closing a standard stream handle is a
// no-op so the process streams stay usable.
func (r *Resolver) OpenSource(name Name) (*Source, error) {
	endpoint := name.Endpoint(Read)
	out := &Source{Name: name, Endpoint: endpoint}

	if endpoint.Standard() {
		out.ReadCloser = io.NopCloser(r.IO.Stdin())
		return out, nil
	}

	fd, err := r.FS.Open(name.Text)
	if err != nil {
		return nil, &IOError{Op: "open", Stream: name.Text, Err: err}
	}

	out.ReadCloser = fd
	return out, nil
}

// OpenSink opens name for writing, regular files are created or truncated.
// Closing a standard stream handle is a no-op so the process streams stay
// usable.
func (r *Resolver) OpenSink(name Name) (*Sink, error) {
	endpoint := name.Endpoint(Write)
	out := &Sink{Name: name, Endpoint: endpoint}

	switch endpoint {
	case EndpointStdout:
		out.WriteCloser = vos.NopWriteCloser(r.IO.Stdout())
		return out, nil
	case EndpointStderr:
		out.WriteCloser = vos.NopWriteCloser(r.IO.Stderr())
		return out, nil
	}

	fd, err := r.FS.OpenFile(name.Text, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DestinationFileMode)
	if err != nil {
		return nil, &IOError{Op: "open", Stream: name.Text, Err: err}
	}

	out.WriteCloser = fd
	return out, nil
}
