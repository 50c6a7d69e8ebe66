package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/josephlewis42/echocat/core/vos"
)

// CommandFunc is the entrypoint of a sub-command.
type CommandFunc = vos.ProcessFunc

// OperandsFunc validates the operands of a command.
type OperandsFunc func(operands []string) error

// AnyOperands accepts any number of operands.
func AnyOperands(operands []string) error {
	return nil
}

// ExactOperands accepts exactly n operands.
func ExactOperands(n int) OperandsFunc {
	return func(operands []string) error {
		if len(operands) != n {
			if n == 1 {
				return errors.New("wrong number of arguments, one expected")
			}
			return fmt.Errorf("wrong number of arguments, %d expected", n)
		}
		return nil
	}
}

// SimpleCommand is the common frame of a sub-command. Operands are passed
// through verbatim, nothing is interpreted as a flag.
type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// Operands validates the operands, nil accepts anything.
	Operands OperandsFunc
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
}

// Run the command, if the operands are valid call the callback with them.
// Invalid operands are a usage error.
func (s *SimpleCommand) Run(virtOS vos.VOS, callback func(operands []string) int) int {
	var operands []string
	if args := virtOS.Args(); len(args) > 1 {
		operands = args[1:]
	}

	validate := s.Operands
	if validate == nil {
		validate = AnyOperands
	}

	if err := validate(operands); err != nil {
		virtOS.LogInvalidInvocation(err)
		s.PrintHelp(virtOS.Stderr())
		return virtOS.Config().ExitStatus.Usage
	}

	return callback(operands)
}

// scanInt reads a leading decimal integer the way C's atoi does: leading
// whitespace and a sign are allowed, anything after the digits is ignored
// and no digits at all is 0. Out of range values saturate.
func scanInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	// Only fails with a range error, where the saturated value is returned.
	n, _ := strconv.ParseInt(s[:end], 10, 64)
	return n
}
