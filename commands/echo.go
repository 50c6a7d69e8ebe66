package commands

import (
	"fmt"

	"github.com/josephlewis42/echocat/core/vos"
)

// Echo prints its operands separated by spaces. Empty operands are skipped
// and don't produce a separator.
func Echo(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "echo [WORD]...",
		Short: "Display a line of text.",
	}

	return cmd.Run(virtOS, func(operands []string) int {
		w := virtOS.Stdout()
		emitted := 0
		for _, arg := range operands {
			if arg == "" {
				continue
			}

			if emitted > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, arg)
			emitted++
		}

		fmt.Fprintln(w)

		return 0
	})
}

var _ CommandFunc = Echo
