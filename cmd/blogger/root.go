package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "blogger",
		Short:        "blogger compiles the declarative blog-authoring language into an HTML fragment",
		SilenceUsage: true,
	}
	root.AddCommand(newLexCommand())
	root.AddCommand(newParseCommand())
	root.AddCommand(newCompileCommand())
	return root
}
