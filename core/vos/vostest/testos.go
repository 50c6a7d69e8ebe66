package vostest

import (
	"bytes"
	"io"

	"github.com/josephlewis42/echocat/core/config"
	"github.com/josephlewis42/echocat/core/vos"
	"github.com/spf13/afero"
)

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// FS is the filesystem the process sees, it's kept between runs so tests
	// can seed inputs and inspect outputs.
	FS afero.Fs

	// Stdin is empty if nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// PTY is passed to the process, diagnostics are colored if it's set.
	PTY vos.PTY

	ExitStatus int

	Setup func(vos.VOS) error
}

// Command returns a Cmd backed by a fresh in-memory filesystem.
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		FS:      afero.NewMemMapFs(),
	}
}

// CombinedOutput runs the command and returns its standard output and
// standard error interleaved.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	// stdout, stderr
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output runs the command and returns standard output and standard error
// separately.
func (c *Cmd) Output() (stdout, stderr []byte, err error) {
	outBuf, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	c.Stdout = outBuf
	c.Stderr = errBuf

	if err := c.Run(); err != nil {
		return nil, nil, err
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}

// Run starts the comand and waits for it to complete.
func (c *Cmd) Run() error {
	if c.FS == nil {
		c.FS = afero.NewMemMapFs()
	}

	stdin := c.Stdin
	if stdin == nil {
		stdin = bytes.NewReader(nil)
	}

	files := vos.NewStreamSet(stdin, writeCloser{c.Stdout}, writeCloser{c.Stderr})
	proc := vos.NewProcOS(c.FS, files, config.Default(), nil, c.Argv)
	proc.SetPTY(c.PTY)

	if c.Setup != nil {
		if err := c.Setup(proc); err != nil {
			return err
		}
	}

	c.ExitStatus = c.Process(proc)
	return nil
}

type writeCloser struct{ io.Writer }

func (w writeCloser) Write(b []byte) (int, error) {
	if w.Writer == nil {
		return len(b), nil
	}
	return w.Writer.Write(b)
}

func (writeCloser) Close() error {
	return nil
}
