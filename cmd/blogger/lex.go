package main

import (
	"fmt"

	"github.com/shivam-909/blogger/berrors"
	"github.com/shivam-909/blogger/bfs"
	"github.com/shivam-909/blogger/lexer"
	"github.com/spf13/cobra"
)

func newLexCommand() *cobra.Command {
	var src string
	cmd := &cobra.Command{
		Use:   "lex",
		Short: "tokenises input and prints one token kind per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			if src == "" {
				return berrors.FromCommand("expected flag --src")
			}
			content, err := bfs.ReadFileToString(src)
			if err != nil {
				return berrors.FromIO(err)
			}
			l := lexer.New(content)
			for {
				tok, err, done := l.Next()
				if err != nil {
					return berrors.FromLexer(err)
				}
				if done {
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), tok.Kind.String())
			}
		},
	}
	cmd.Flags().StringVar(&src, "src", "", "path to the source file")
	return cmd
}
