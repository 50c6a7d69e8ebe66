package commands

import (
	"fmt"

	"github.com/josephlewis42/echocat/core/vos"
)

// Hello prints the configured greeting.
func Hello(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "hello",
		Short: "Print a greeting.",
	}

	return cmd.Run(virtOS, func([]string) int {
		fmt.Fprintln(virtOS.Stdout(), virtOS.Config().Greeting)
		return 0
	})
}

var _ CommandFunc = Hello
