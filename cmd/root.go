package cmd

import (
	"io"
	"os"

	"github.com/josephlewis42/echocat/commands"
	"github.com/josephlewis42/echocat/core/config"
	"github.com/josephlewis42/echocat/core/vos"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// newRootCmd creates the command that hands its arguments to the dispatcher
// and stores the resulting exit status in status.
func newRootCmd(fs afero.Fs, status *int) *cobra.Command {
	return &cobra.Command{
		Use:   "echocat [hello | exit CODE | cat [SOURCE] [DESTINATION] | echo [WORD]... | powers NUMBER]",
		Short: "Relay bytes between streams, echo words or exit with a status.",
		Long: `Runs exactly one sub-command. Stream names "-", "stdin", "stdout" and
"stderr" refer to the standard streams, anything else is a file path.`,
		Args: cobra.ArbitraryArgs,
		// Operands are passed verbatim, "-" and "--help" included.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*status = run(cmd, fs, args)
			return nil
		},
	}
}

// executeRoot runs root with args. Cobra registers hidden shell completion
// commands on every Execute, so those tokens skip cobra and go straight to
// the dispatcher like any other first argument.
func executeRoot(root *cobra.Command, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return root.RunE(root, args)
		}
	}

	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	root.SetArgs(args)
	return root.Execute()
}

func run(cmd *cobra.Command, fs afero.Fs, args []string) int {
	files := vos.NewStreamSet(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	argv := append([]string{cmd.Name()}, args...)
	// A nil recorder reports diagnostics on the process's own stderr.
	proc := vos.NewProcOS(fs, files, config.Default(), nil, argv)
	proc.SetPTY(vos.PTY{IsPTY: isTerminal(cmd.ErrOrStderr())})

	return commands.Dispatch(proc)
}

func isTerminal(w io.Writer) bool {
	fd, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(fd.Fd()) || isatty.IsCygwinTerminal(fd.Fd())
}

var exitStatus int

// rootCmd represents the base command, sub-commands are dispatched by
// the commands package rather than cobra.
var rootCmd = newRootCmd(afero.NewOsFs(), &exitStatus)

// Execute runs the root command and exits the process with the sub-command's
// status. This is called by main.main(). It only needs to happen once to the
// rootCmd.
func Execute() {
	cobra.CheckErr(executeRoot(rootCmd, os.Args[1:]))
	os.Exit(exitStatus)
}
