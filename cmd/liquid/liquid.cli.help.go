package main

import (
	"fmt"
	"io"
)

// runHelp prints the main usage, or the usage of the command named in args
func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	cmd, ok := commandTable()[args[0]]
	if !ok {
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, args[0])
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}
	fmt.Fprintln(stdout, cmd.usage)
	return ExitCodeSuccess
}
