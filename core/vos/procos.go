package vos

import (
	"errors"

	"github.com/josephlewis42/echocat/core/config"
	"github.com/josephlewis42/echocat/core/logger"
)

// ProcOS is a single running command.
type ProcOS struct {
	VFS

	VIO

	// Args holds command line arguments, including the command as Args[0].
	ProcArgs []string

	config   *config.Configuration
	recorder logger.Recorder
	pty      PTY
}

var _ VOS = (*ProcOS)(nil)

// NewProcOS creates the root process. With a nil recorder each process writes
// diagnostics to its own stderr, colored when its PTY says stderr is a
// terminal.
func NewProcOS(fs VFS, files VIO, cfg *config.Configuration, recorder logger.Recorder, argv []string) *ProcOS {
	if files == nil {
		files = NewNullIO()
	}

	return &ProcOS{
		VFS:      fs,
		VIO:      files,
		ProcArgs: argv,
		config:   cfg,
		recorder: recorder,
	}
}

// Args implements VOS.Args.
func (p *ProcOS) Args() []string {
	return p.ProcArgs
}

// Config implements VOS.Config.
func (p *ProcOS) Config() *config.Configuration {
	return p.config
}

// SetPTY implements VOS.SetPTY.
func (p *ProcOS) SetPTY(pty PTY) {
	p.pty = pty
}

// GetPTY implements VOS.GetPTY.
func (p *ProcOS) GetPTY() PTY {
	return p.pty
}

func (p *ProcOS) commandName() string {
	if len(p.ProcArgs) == 0 {
		return ""
	}
	return p.ProcArgs[0]
}

func (p *ProcOS) record(event logger.LogType) {
	if p.recorder != nil {
		p.recorder.Record(event)
		return
	}
	logger.NewDiagnosticRecorder(p.Stderr(), p.GetPTY().IsPTY).Record(event)
}

// LogUnknownCommand implements VLog.LogUnknownCommand.
func (p *ProcOS) LogUnknownCommand(name string) {
	p.record(&logger.UnknownCommand{Command: name})
}

// LogInvalidInvocation implements VLog.LogInvalidInvocation.
func (p *ProcOS) LogInvalidInvocation(err error) {
	p.record(&logger.InvalidInvocation{
		Command: p.commandName(),
		Error:   err.Error(),
	})
}

// LogIOFailure implements VLog.LogIOFailure.
func (p *ProcOS) LogIOFailure(err error) {
	p.record(&logger.IOFailure{
		Command: p.commandName(),
		Error:   err.Error(),
	})
}

type ProcAttr struct {
	// Files specifies the open files inherited by the new process.
	// If nil, the process gets /dev/null style streams.
	Files VIO
}

// StartProcess creates a child process with the given arguments. The argv
// slice becomes Args() in the new process, so it starts with the command name.
// The child shares the filesystem, configuration, recorder and PTY.
func (p *ProcOS) StartProcess(argv []string, attr *ProcAttr) (VOS, error) {
	if len(argv) == 0 {
		return nil, errors.New("argv must contain the command name")
	}
	if attr == nil {
		attr = &ProcAttr{}
	}

	out := &ProcOS{
		VFS:      p.VFS,
		VIO:      attr.Files,
		ProcArgs: argv,
		config:   p.config,
		recorder: p.recorder,
		pty:      p.pty,
	}

	if out.VIO == nil {
		out.VIO = NewNullIO()
	}

	return out, nil
}
