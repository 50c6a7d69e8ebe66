package vos

import (
	"io"

	"github.com/josephlewis42/echocat/core/config"
	"github.com/spf13/afero"
)

// VFS implements a virtual filesystem and is the first layer of the virtual OS.
type VFS = afero.Fs

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VLog records diagnostics on behalf of the running command.
type VLog interface {
	// LogUnknownCommand records that name isn't a known sub-command.
	LogUnknownCommand(name string)
	// LogInvalidInvocation records that the command was called incorrectly.
	LogInvalidInvocation(err error)
	// LogIOFailure records a failure to open, read, write or close a stream.
	LogIOFailure(err error)
}

// PTY describes the terminal attached to the process.
type PTY struct {
	// IsPTY is set if the error stream is an interactive terminal.
	IsPTY bool
}

// ProcessFunc is the entrypoint of a command, it returns the exit status.
type ProcessFunc func(VOS) int

// VOS provides a virtual OS interface.
type VOS interface {
	VIO
	VFS
	VLog

	// Args holds command line arguments, including the command as Args[0].
	Args() []string
	// Config holds the process configuration.
	Config() *config.Configuration

	SetPTY(PTY)
	GetPTY() PTY
	StartProcess(argv []string, attr *ProcAttr) (VOS, error)
}
