package main

import (
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// handler runs one subcommand and returns its exit code
type handler func(args []string, stdin io.Reader, stdout, stderr io.Writer) int

// command is a subcommand together with its help text
type command struct {
	run   handler
	usage string
}

// commandTable lists every subcommand by name
func commandTable() map[string]command {
	return map[string]command{
		CmdNameRender:   {run: runRender, usage: HelpRenderUsage},
		CmdNameValidate: {run: runValidate, usage: HelpValidateUsage},
		CmdNameTokens:   {run: runTokens, usage: HelpTokensUsage},
		CmdNameVersion: {
			run: func(args []string, _ io.Reader, stdout, stderr io.Writer) int {
				return runVersion(args, stdout, stderr)
			},
			usage: HelpVersionUsage,
		},
		CmdNameHelp: {
			run: func(args []string, _ io.Reader, stdout, _ io.Writer) int {
				return runHelp(args, stdout)
			},
			usage: HelpHelpUsage,
		},
	}
}

// run dispatches args[0] to its subcommand. Unknown names print the main
// usage with a usage-error exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return runHelp(nil, stdout)
	}
	cmd, ok := commandTable()[args[0]]
	if !ok {
		return runHelp(args[:1], stdout)
	}
	return cmd.run(args[1:], stdin, stdout, stderr)
}
