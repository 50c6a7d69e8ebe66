package logger

import (
	"io"
	"log"

	"github.com/fatih/color"
)

// DiagnosticPrefix is written before every diagnostic line.
const DiagnosticPrefix = "echocat: "

// Recorder stores events in an external sink.
type Recorder interface {
	Record(event LogType) error
}

// DiagnosticRecorder writes one line per event, usually to the error stream.
type DiagnosticRecorder struct {
	logger *log.Logger
	color  *color.Color
}

var _ Recorder = (*DiagnosticRecorder)(nil)

// NewDiagnosticRecorder creates a recorder writing to w. If colorize is set,
// lines are always colored regardless of the environment; callers decide
// whether w is a terminal.
func NewDiagnosticRecorder(w io.Writer, colorize bool) *DiagnosticRecorder {
	out := &DiagnosticRecorder{logger: log.New(w, "", 0)}

	if colorize {
		out.color = color.New(color.FgRed, color.Bold)
		out.color.EnableColor()
	}

	return out
}

// Record implements Recorder.
func (d *DiagnosticRecorder) Record(event LogType) error {
	msg := DiagnosticPrefix + event.Message()
	if d.color != nil {
		msg = d.color.Sprint(msg)
	}

	return d.logger.Output(2, msg)
}
