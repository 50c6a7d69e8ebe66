// Package logger is a standardized diagnostic event framework for echocat.
//
// Commands don't write error messages themselves; they record an event and
// the configured Recorder decides how it reaches the user.
package logger
