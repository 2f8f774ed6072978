package main

import (
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/shivam-909/blogger/berrors"
	"github.com/shivam-909/blogger/bfs"
	"github.com/shivam-909/blogger/lexer"
	"github.com/shivam-909/blogger/parser"
	"github.com/spf13/cobra"
)

func newParseCommand() *cobra.Command {
	var src string
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "tokenises and parses input, printing the AST",
		RunE: func(cmd *cobra.Command, args []string) error {
			if src == "" {
				return berrors.FromCommand("expected flag --src")
			}
			content, err := bfs.ReadFileToString(src)
			if err != nil {
				return berrors.FromIO(err)
			}
			l := lexer.New(content)
			p := parser.New(l, content)
			program, err := p.Parse()
			if err != nil {
				return berrors.FromParser(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), litter.Sdump(program))
			return nil
		},
	}
	cmd.Flags().StringVar(&src, "src", "", "path to the source file")
	return cmd
}
