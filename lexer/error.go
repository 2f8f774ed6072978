package lexer

import (
	"fmt"

	"github.com/shivam-909/blogger/diag"
)

// ErrorKind tags the closed set of lexer failure modes.
type ErrorKind int

const (
	UnexpectedChar ErrorKind = iota
	UnterminatedBlock
	UnexpectedEOF
)

// Error reports a lexer failure anchored to a Span of the source.
type Error struct {
	Kind ErrorKind
	Char rune
	Span diag.Span
	Src  string
}

func (e *Error) Error() string {
	snippet := e.Span.Snippet(e.Src)
	switch e.Kind {
	case UnexpectedChar:
		return fmt.Sprintf("Lexer Error: Unexpected character %q at: %s", e.Char, snippet)
	case UnterminatedBlock:
		return fmt.Sprintf("Lexer Error: Unterminated block\n%s", snippet)
	case UnexpectedEOF:
		return "Lexer Error: Unexpected EOF"
	default:
		return "Lexer Error"
	}
}
