// Package berrors is the closed error taxonomy every command-level failure
// is ultimately wrapped into: IO, Parser, Codegen, Regex, Lexer, and
// Command. Component packages (lexer, parser, codegen, regex) raise their
// own concrete error types; this package gives the CLI one shape to
// render regardless of which stage failed.
package berrors

import "fmt"

// Kind tags the taxonomy's variants.
type Kind int

const (
	IOError Kind = iota
	ParseError
	CodegenError
	RegexError
	LexerError
	CommandError
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "IO error"
	case ParseError:
		return "Parser error"
	case CodegenError:
		return "Codegen error"
	case RegexError:
		return "Regex error"
	case LexerError:
		return "Lexer error"
	case CommandError:
		return "Command error"
	default:
		return "Blogger error"
	}
}

// Error wraps a lower-level failure with the Kind the CLI should render it
// under, preserving the original error for errors.Unwrap/errors.As.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Kind == IOError && e.Err != nil {
		return fmt.Sprintf("Blogger Error: IO error: %s", e.Err)
	}
	return fmt.Sprintf("Blogger Error: %s", e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap tags err with kind, using err's own message unless msg is given.
func Wrap(kind Kind, err error, msg string) *Error {
	if msg == "" && err != nil {
		msg = err.Error()
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func FromIO(err error) *Error {
	return &Error{Kind: IOError, Msg: err.Error(), Err: err}
}

func FromLexer(err error) *Error {
	return &Error{Kind: LexerError, Msg: err.Error(), Err: err}
}

func FromParser(err error) *Error {
	return &Error{Kind: ParseError, Msg: err.Error(), Err: err}
}

func FromCodegen(err error) *Error {
	return &Error{Kind: CodegenError, Msg: err.Error(), Err: err}
}

func FromRegex(err error) *Error {
	return &Error{Kind: RegexError, Msg: err.Error(), Err: err}
}

func FromCommand(msg string) *Error {
	return &Error{Kind: CommandError, Msg: msg}
}
