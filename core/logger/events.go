package logger

import "fmt"

// LogType is a diagnostic event.
type LogType interface {
	// Message renders the event as a single line without a trailing newline.
	Message() string

	isLogType()
}

// UnknownCommand is recorded when the sub-command token isn't recognized.
type UnknownCommand struct {
	Command string
}

func (e *UnknownCommand) Message() string {
	return fmt.Sprintf("Unknown sub-command: %s", e.Command)
}

// InvalidInvocation is recorded when a command is called with the wrong
// shape of arguments.
type InvalidInvocation struct {
	Command string
	Error   string
}

func (e *InvalidInvocation) Message() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Error)
}

// IOFailure is recorded when opening, reading, writing or closing a stream
// fails.
type IOFailure struct {
	Command string
	Error   string
}

func (e *IOFailure) Message() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Error)
}

func (*UnknownCommand) isLogType()    {}
func (*InvalidInvocation) isLogType() {}
func (*IOFailure) isLogType()         {}

var (
	_ LogType = (*UnknownCommand)(nil)
	_ LogType = (*InvalidInvocation)(nil)
	_ LogType = (*IOFailure)(nil)
)
