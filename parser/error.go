package parser

import (
	"fmt"

	"github.com/shivam-909/blogger/diag"
)

// Error reports a parse failure anchored to a Span, owning its own copy of
// the source so it outlives the parser's borrow.
type Error struct {
	Msg  string
	Span diag.Span
	Src  string
}

func newError(msg string, span diag.Span, src string) *Error {
	return &Error{Msg: msg, Span: span, Src: src}
}

func (e *Error) Error() string {
	return fmt.Sprintf("Parse error: %s at %s", e.Msg, e.Span.Snippet(e.Src))
}
