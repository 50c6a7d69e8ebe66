package stream

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/josephlewis42/echocat/core/vos"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingWriter counts Close calls.
type trackingWriter struct {
	bytes.Buffer
	closed int
}

func (w *trackingWriter) Close() error {
	w.closed++
	return nil
}

type testStreams struct {
	stdin  *bytes.Reader
	stdout *trackingWriter
	stderr *trackingWriter
}

func newTestResolver(stdin string) (*Resolver, *testStreams) {
	streams := &testStreams{
		stdin:  bytes.NewReader([]byte(stdin)),
		stdout: &trackingWriter{},
		stderr: &trackingWriter{},
	}

	return &Resolver{
		FS: afero.NewMemMapFs(),
		IO: vos.NewStreamSet(streams.stdin, streams.stdout, streams.stderr),
	}, streams
}

func TestResolver_OpenSource(t *testing.T) {
	for _, name := range []Name{Unnamed(), Named("-"), Named("stdin")} {
		t.Run(name.String(), func(t *testing.T) {
			resolver, _ := newTestResolver("from stdin")

			src, err := resolver.OpenSource(name)
			require.NoError(t, err)
			assert.Equal(t, EndpointStdin, src.Endpoint)

			data, err := io.ReadAll(src)
			assert.NoError(t, err)
			assert.Equal(t, "from stdin", string(data))
			assert.NoError(t, src.Close())
		})
	}

	t.Run("file", func(t *testing.T) {
		resolver, _ := newTestResolver("")
		require.NoError(t, afero.WriteFile(resolver.FS, "/in.bin", []byte("a\x00b"), 0600))

		src, err := resolver.OpenSource(Named("/in.bin"))
		require.NoError(t, err)
		defer src.Close()

		assert.Equal(t, EndpointFile, src.Endpoint)
		data, err := io.ReadAll(src)
		assert.NoError(t, err)
		assert.Equal(t, []byte("a\x00b"), data)
	})

	t.Run("missing", func(t *testing.T) {
		resolver, _ := newTestResolver("")

		src, err := resolver.OpenSource(Named("/missing.txt"))
		assert.Nil(t, src)
		assert.True(t, errors.Is(err, ErrIO), "ErrIO")
		assert.True(t, errors.Is(err, os.ErrNotExist), "ErrNotExist")

		var ioErr *IOError
		require.True(t, errors.As(err, &ioErr))
		assert.Equal(t, "open", ioErr.Op)
		assert.Contains(t, err.Error(), "/missing.txt")
	})
}

func TestResolver_OpenSink(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		for _, name := range []Name{Unnamed(), Named("-"), Named("stdout")} {
			resolver, streams := newTestResolver("")

			sink, err := resolver.OpenSink(name)
			require.NoError(t, err)
			assert.Equal(t, EndpointStdout, sink.Endpoint)

			io.WriteString(sink, "out")
			assert.NoError(t, sink.Close())

			assert.Equal(t, "out", streams.stdout.String(), name.String())
			assert.Equal(t, 0, streams.stdout.closed, "standard streams stay open")
		}
	})

	t.Run("stderr", func(t *testing.T) {
		resolver, streams := newTestResolver("")

		sink, err := resolver.OpenSink(Named("stderr"))
		require.NoError(t, err)
		assert.Equal(t, EndpointStderr, sink.Endpoint)

		io.WriteString(sink, "err")
		assert.NoError(t, sink.Close())

		assert.Equal(t, "err", streams.stderr.String())
		assert.Empty(t, streams.stdout.String())
		assert.Equal(t, 0, streams.stderr.closed, "standard streams stay open")
	})

	t.Run("file-truncates", func(t *testing.T) {
		resolver, _ := newTestResolver("")
		require.NoError(t, afero.WriteFile(resolver.FS, "/out.txt", []byte("old contents"), 0600))

		sink, err := resolver.OpenSink(Named("/out.txt"))
		require.NoError(t, err)
		assert.Equal(t, EndpointFile, sink.Endpoint)

		io.WriteString(sink, "new")
		assert.NoError(t, sink.Close())

		data, err := afero.ReadFile(resolver.FS, "/out.txt")
		assert.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("file-creates", func(t *testing.T) {
		resolver, _ := newTestResolver("")

		sink, err := resolver.OpenSink(Named("/fresh.txt"))
		require.NoError(t, err)
		assert.NoError(t, sink.Close())

		exists, err := afero.Exists(resolver.FS, "/fresh.txt")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("read-only-fs", func(t *testing.T) {
		resolver, _ := newTestResolver("")
		resolver.FS = afero.NewReadOnlyFs(resolver.FS)

		sink, err := resolver.OpenSink(Named("/out.txt"))
		assert.Nil(t, sink)
		assert.True(t, errors.Is(err, ErrIO))
	})
}
