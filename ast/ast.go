// Package ast declares the structures used to represent a parsed blogger
// program: a single article declaration referencing named sections, each a
// sequence of paragraphs of statements.
package ast

// Node is implemented by every AST node type.
type Node interface {
	node()
}

// Statement is implemented by the five paragraph-statement variants.
type Statement interface {
	Node
	stmt()
}

// Program is the parser's output: one article plus every section it (or
// the source) declared, keyed by name.
type Program struct {
	Article  ArticleDeclaration
	Sections map[string]SectionDeclaration
}

func (*Program) node() {}

// ArticleDeclaration is the program's single root. SectionCalls preserves
// declaration order; resolving a name against Program.Sections is the
// traversal's job, not this struct's.
type ArticleDeclaration struct {
	Name         string
	SectionCalls []string
}

func (ArticleDeclaration) node() {}

// SectionDeclaration is a named, ordered sequence of paragraphs.
type SectionDeclaration struct {
	Name       string
	Paragraphs []Paragraph
}

func (SectionDeclaration) node() {}

// Paragraph is an ordered sequence of statements.
type Paragraph struct {
	Statements []Statement
}

func (Paragraph) node() {}

// Heading is a `h1`/`h2`/`h3` statement. Level is captured but the emitter
// currently always renders an <h3>.
type Heading struct {
	Level string
	Text  string
}

func (Heading) node() {}
func (Heading) stmt() {}

// TextBlock is a bare backtick-delimited paragraph statement.
type TextBlock struct {
	Text string
}

func (TextBlock) node() {}
func (TextBlock) stmt() {}

// CodeBlock is a `code{...}` statement; its content is always a TextBlock.
type CodeBlock struct {
	Text string
}

func (CodeBlock) node() {}
func (CodeBlock) stmt() {}

// Aside is an `aside{...}` statement.
type Aside struct {
	Text string
}

func (Aside) node() {}
func (Aside) stmt() {}

// ListStatement wraps an Ordered or Unordered List as a Statement.
type ListStatement struct {
	List List
}

func (ListStatement) node() {}
func (ListStatement) stmt() {}

// ListKind discriminates List's two variants.
type ListKind int

const (
	Ordered ListKind = iota
	Unordered
)

// List is an `ol{...}` or `ul{...}` statement: an ordered sequence of item
// texts, each drawn from a `li{...}` production.
type List struct {
	Kind  ListKind
	Items []string
}

func (List) node() {}
