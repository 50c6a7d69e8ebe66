package commands

import (
	"fmt"

	"github.com/josephlewis42/echocat/core/vos"
)

// Kind is the sub-command selected by an invocation.
type Kind int

const (
	KindHello Kind = iota
	KindExit
	KindCat
	KindEcho
	KindPowers
	KindUnknown
)

var kindNames = map[Kind]string{
	KindHello:  "hello",
	KindExit:   "exit",
	KindCat:    "cat",
	KindEcho:   "echo",
	KindPowers: "powers",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Invocation is a parsed command line.
type Invocation struct {
	Kind Kind
	// Token is the sub-command as typed, or "hello" if none was given.
	Token string
	// Operands are the arguments after the token.
	Operands []string
}

// Argv returns the argument vector of the sub-command process.
func (inv Invocation) Argv() []string {
	return append([]string{inv.Token}, inv.Operands...)
}

// Parse classifies the command line, excluding the program name.
func Parse(args []string) Invocation {
	if len(args) == 0 {
		return Invocation{Kind: KindHello, Token: KindHello.String()}
	}

	out := Invocation{Kind: KindUnknown, Token: args[0], Operands: args[1:]}
	for kind, name := range kindNames {
		if name == args[0] {
			out.Kind = kind
		}
	}
	return out
}

// Lookup returns the implementation of a known kind.
func Lookup(kind Kind) (CommandFunc, bool) {
	switch kind {
	case KindHello:
		return Hello, true
	case KindExit:
		return Exit, true
	case KindCat:
		return Cat, true
	case KindEcho:
		return Echo, true
	case KindPowers:
		return Powers, true
	case KindUnknown:
		return nil, false
	default:
		return nil, false
	}
}

// Dispatch runs the sub-command named by virtOS.Args()[1] in a child process
// sharing the parent's streams and returns its exit status.
func Dispatch(virtOS vos.VOS) int {
	var args []string
	if argv := virtOS.Args(); len(argv) > 1 {
		args = argv[1:]
	}

	inv := Parse(args)
	cmd, ok := Lookup(inv.Kind)
	if !ok {
		virtOS.LogUnknownCommand(inv.Token)
		return virtOS.Config().ExitStatus.UnknownCommand
	}

	proc, err := virtOS.StartProcess(inv.Argv(), &vos.ProcAttr{Files: virtOS})
	if err != nil {
		virtOS.LogInvalidInvocation(err)
		return virtOS.Config().ExitStatus.Usage
	}

	return cmd(proc)
}

var _ CommandFunc = Dispatch

// BuiltinCommand is a registered sub-command.
type BuiltinCommand struct {
	Kind Kind
	Name string
	Proc CommandFunc
}

// ListBuiltinCommands returns every sub-command in dispatch order.
func ListBuiltinCommands() []BuiltinCommand {
	var out []BuiltinCommand
	for kind := KindHello; kind < KindUnknown; kind++ {
		proc, _ := Lookup(kind)
		out = append(out, BuiltinCommand{Kind: kind, Name: kind.String(), Proc: proc})
	}
	return out
}
