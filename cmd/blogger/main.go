package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		printErr(err)
		os.Exit(1)
	}
}

// printErr renders err to stderr, color-escaped when stderr is a terminal,
// matching the original CLI's `\x1b[93m...\x1b[0m` warning-yellow styling.
func printErr(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[93m%s\x1b[0m\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
