// Package codegen is the stateless emitter: it walks a Program's preorder
// AST traversal and writes fixed HTML-fragment lines for each node to a
// byte sink (asides and lists span several lines; a ListStatement writes
// nothing itself, its List node does), propagating sink errors unchanged.
package codegen

import (
	"fmt"
	"io"

	"github.com/shivam-909/blogger/ast"
)

// Generator wraps the Program to be compiled.
type Generator struct {
	program *ast.Program
}

// New returns a Generator for program.
func New(program *ast.Program) *Generator {
	return &Generator{program: program}
}

// Compile walks the program in its fixed preorder and writes the
// corresponding HTML fragment lines to dst. Any error returned by dst is
// returned unchanged.
func (g *Generator) Compile(dst io.Writer) error {
	w := &stickyWriter{w: dst}
	it := ast.NewIterator(g.program)
	for {
		node, ok := it.Next()
		if !ok {
			break
		}
		emit(w, node)
	}
	return w.Err()
}

func emit(w *stickyWriter, node ast.Node) {
	switch v := node.(type) {
	case ast.ArticleDeclaration:
		w.WriteString(fmt.Sprintf("<h1 className='text-4xl font-bold'>%s</h1>\n", v.Name))
	case ast.SectionDeclaration:
		w.WriteString("<br/>\n")
	case ast.Paragraph:
		w.WriteString("<br/>\n")
	case ast.Heading:
		w.WriteString(fmt.Sprintf("<h3 className='text-3xl'>%s</h3>\n", v.Text))
	case ast.TextBlock:
		w.WriteString(fmt.Sprintf("<p>%s</p>\n", v.Text))
	case ast.CodeBlock:
		w.WriteString(fmt.Sprintf("<pre className='w-full overflow-x-auto'><code>{`%s`}</code></pre>\n", v.Text))
	case ast.Aside:
		w.WriteString("<div className='p-8 bg-opacity-10 bg-black italic'>\n")
		w.WriteString(fmt.Sprintf("<p>%s</p>\n", v.Text))
		w.WriteString("</div>\n")
	case ast.List:
		emitList(w, v)
	}
}

func emitList(w *stickyWriter, l ast.List) {
	tag := "ul"
	if l.Kind == ast.Ordered {
		tag = "ol"
	}
	w.WriteString(fmt.Sprintf("<%s class='list-disc list-inside'>\n", tag))
	for _, item := range l.Items {
		w.WriteString(fmt.Sprintf("<li>%s</li>\n", item))
	}
	w.WriteString(fmt.Sprintf("</%s>\n", tag))
}
