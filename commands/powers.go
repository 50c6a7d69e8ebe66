package commands

import (
	"fmt"

	"github.com/josephlewis42/echocat/core/powers"
	"github.com/josephlewis42/echocat/core/vos"
)

// Powers prints the square and cube of its only operand.
func Powers(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:      "powers NUMBER",
		Short:    "Print the square and cube of NUMBER.",
		Operands: ExactOperands(1),
	}

	return cmd.Run(virtOS, func(operands []string) int {
		x := scanInt(operands[0])

		w := virtOS.Stdout()
		fmt.Fprintf(w, "Square: %d\n", powers.Square(x))
		fmt.Fprintf(w, "Cube: %d\n", powers.Cube(x))

		return 0
	})
}

var _ CommandFunc = Powers
