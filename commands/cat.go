package commands

import (
	"github.com/josephlewis42/echocat/core/stream"
	"github.com/josephlewis42/echocat/core/vos"
)

// Cat copies the stream SOURCE to the stream DESTINATION byte for byte.
func Cat(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cat [SOURCE] [DESTINATION]",
		Short: "Copy SOURCE to DESTINATION, both default to standard streams.",
	}

	return cmd.Run(virtOS, func(operands []string) int {
		ioFailure := virtOS.Config().ExitStatus.IOFailure
		resolver := stream.NewResolver(virtOS)

		src, err := resolver.OpenSource(stream.NameAt(operands, 0))
		if err != nil {
			virtOS.LogIOFailure(err)
			return ioFailure
		}

		dst, err := resolver.OpenSink(stream.NameAt(operands, 1))
		if err != nil {
			src.Close()
			virtOS.LogIOFailure(err)
			return ioFailure
		}

		copier := stream.NewCopier(virtOS.Config().BufferSize)
		if _, err := copier.Copy(dst, src); err != nil {
			virtOS.LogIOFailure(err)
			return ioFailure
		}

		return 0
	})
}

var _ CommandFunc = Cat
