package stream

import "fmt"

// Name is a symbolic stream name as given on the command line.
type Name struct {
	// Text is the token, it's meaningless unless Given is set.
	Text string
	// Given is false if the operand was absent.
	Given bool
}

// Unnamed is an absent operand, it resolves to the default stream.
func Unnamed() Name {
	return Name{}
}

// Named wraps a command line token.
func Named(text string) Name {
	return Name{Text: text, Given: true}
}

// NameAt returns the operand at index i, or Unnamed if there are too few.
func NameAt(operands []string, i int) Name {
	if i < 0 || i >= len(operands) {
		return Unnamed()
	}
	return Named(operands[i])
}

func (n Name) String() string {
	if !n.Given {
		return "(default)"
	}
	return n.Text
}

// Class is the syntactic category of a Name.
type Class int

const (
	ClassDefault Class = iota
	ClassDash
	ClassStdin
	ClassStdout
	ClassStderr
	ClassPath
)

func (c Class) String() string {
	switch c {
	case ClassDefault:
		return "default"
	case ClassDash:
		return "dash"
	case ClassStdin:
		return "stdin"
	case ClassStdout:
		return "stdout"
	case ClassStderr:
		return "stderr"
	case ClassPath:
		return "path"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Class classifies the name.
func (n Name) Class() Class {
	if !n.Given {
		return ClassDefault
	}

	switch n.Text {
	case "-":
		return ClassDash
	case "stdin":
		return ClassStdin
	case "stdout":
		return ClassStdout
	case "stderr":
		return ClassStderr
	default:
		return ClassPath
	}
}

// Direction is the way bytes flow through a handle.
type Direction int

const (
	Read Direction = iota
	Write
)

func (d Direction) String() string {
	if d == Write {
		return "writing"
	}
	return "reading"
}

// Endpoint is what a name resolves to.
type Endpoint int

const (
	EndpointStdin Endpoint = iota
	EndpointStdout
	EndpointStderr
	EndpointFile
)

func (e Endpoint) String() string {
	switch e {
	case EndpointStdin:
		return "stdin"
	case EndpointStdout:
		return "stdout"
	case EndpointStderr:
		return "stderr"
	case EndpointFile:
		return "file"
	default:
		return fmt.Sprintf("Endpoint(%d)", int(e))
	}
}

// Standard is set for the process's own streams.
func (e Endpoint) Standard() bool {
	return e != EndpointFile
}

// Endpoint resolves the name for the given direction. Pseudo-names never
// become paths: on the read side every one of them is stdin, on the write
// side "stderr" is stderr and the rest are stdout.
func (n Name) Endpoint(dir Direction) Endpoint {
	class := n.Class()
	if class == ClassPath {
		return EndpointFile
	}

	if dir == Read {
		return EndpointStdin
	}

	if class == ClassStderr {
		return EndpointStderr
	}
	return EndpointStdout
}
