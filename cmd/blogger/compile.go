package main

import (
	"github.com/shivam-909/blogger/berrors"
	"github.com/shivam-909/blogger/bfs"
	"github.com/shivam-909/blogger/codegen"
	"github.com/shivam-909/blogger/lexer"
	"github.com/shivam-909/blogger/parser"
	"github.com/spf13/cobra"
)

func newCompileCommand() *cobra.Command {
	var src, dst string
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "compiles input into an HTML fragment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if src == "" {
				return berrors.FromCommand("expected flag --src")
			}
			if dst == "" {
				return berrors.FromCommand("expected flag --dst")
			}
			content, err := bfs.ReadFileToString(src)
			if err != nil {
				return berrors.FromIO(err)
			}
			out, err := bfs.CreateWriteBuffer(dst)
			if err != nil {
				return berrors.FromIO(err)
			}
			defer out.Close()

			l := lexer.New(content)
			p := parser.New(l, content)
			program, err := p.Parse()
			if err != nil {
				return berrors.FromParser(err)
			}
			if err := codegen.New(program).Compile(out); err != nil {
				return berrors.FromCodegen(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&src, "src", "", "path to the source file")
	cmd.Flags().StringVar(&dst, "dst", "", "path to the output file")
	return cmd
}
