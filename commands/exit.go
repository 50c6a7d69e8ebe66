package commands

import (
	"github.com/josephlewis42/echocat/core/vos"
)

// Exit terminates with the status given as the first operand. The operand is
// parsed leniently: garbage or a missing operand is 0. The status is
// truncated to the 8 bits a process can report, so -1 is 255 and 256 is 0.
func Exit(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "exit [CODE]",
		Short: "Exit with the status CODE.",
	}

	return cmd.Run(virtOS, func(operands []string) int {
		var code int64
		if len(operands) > 0 {
			code = scanInt(operands[0])
		}

		return ExitStatus(code)
	})
}

// ExitStatus truncates code to a process exit status.
func ExitStatus(code int64) int {
	return int(code & 0xff)
}

var _ CommandFunc = Exit
