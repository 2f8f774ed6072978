package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/shivam-909/blogger/diag"
)

type mode int

const (
	modeNormal mode = iota
	modeBlock
)

// Lexer pulls tokens one at a time from a borrowed source string, using an
// ordered list of TokenSpecs as its atomic recognizers. It never buffers
// more than the current candidate window.
type Lexer struct {
	src   string
	pos   diag.Position
	specs []TokenSpec
	mode  mode
}

// New returns a Lexer over src using the shared built-in token specs.
func New(src string) *Lexer {
	return &Lexer{src: src, specs: defaultSpecs}
}

// Next returns the next token, or (Token{}, nil, true) at end of input.
// A non-nil error means the lexer encountered malformed input and must not
// be called again.
func (l *Lexer) Next() (Token, error, bool) {
	l.skipWhitespace()
	if l.pos.Offset >= len(l.src) {
		return Token{}, nil, true
	}
	var tok Token
	var err error
	if l.mode == modeNormal {
		tok, err = l.lexNormal()
	} else {
		tok, err = l.lexBlock()
	}
	return tok, err, false
}

func (l *Lexer) lexNormal() (Token, error) {
	start := l.pos
	kind, matchedLen, ok := l.bestMatch()
	if !ok {
		r := l.peekChar()
		return Token{}, &Error{
			Kind: UnexpectedChar,
			Char: r,
			Span: diag.NewSpan(start, l.pos),
			Src:  l.src,
		}
	}
	if kind.Tag == TagTextBlock && kind.Text == "`" {
		l.mode = modeBlock
		return l.lexBlock()
	}
	_ = matchedLen
	return Token{Kind: kind, Span: diag.NewSpan(start, l.pos)}, nil
}

// lexBlock consumes a verbatim text-block literal: everything up to (but
// not including) the next backtick, preserving whitespace exactly.
func (l *Lexer) lexBlock() (Token, error) {
	start := l.pos
	remaining := l.src[l.pos.Offset:]
	relEnd := indexRune(remaining, '`')
	if relEnd < 0 {
		return Token{}, &Error{
			Kind: UnterminatedBlock,
			Span: diag.NewSpan(start, l.pos),
			Src:  l.src,
		}
	}
	text := remaining[:relEnd]
	for range text {
		l.advanceChar()
	}
	l.advanceChar() // consume the closing backtick
	l.mode = modeNormal
	return Token{Kind: TokenKind{Tag: TagTextBlock, Text: text}, Span: diag.NewSpan(start, l.pos)}, nil
}

// bestMatch implements the expanding-window longest-match scan: grow the
// candidate window one rune at a time while any spec accepts it whole,
// remembering the most recent acceptance, and stop at the first length
// with zero acceptances.
func (l *Lexer) bestMatch() (TokenKind, int, bool) {
	remaining := l.src[l.pos.Offset:]
	var candidate []rune
	var lastKind TokenKind
	lastLen := -1

	for _, r := range remaining {
		candidate = append(candidate, r)
		window := string(candidate)
		matched := false
		for _, spec := range l.specs {
			if kind, ok := spec.TryMatch(window); ok {
				lastKind = kind
				lastLen = len(candidate)
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}

	if lastLen < 0 {
		return TokenKind{}, 0, false
	}
	for i := 0; i < lastLen; i++ {
		l.advanceChar()
	}
	return lastKind, lastLen, true
}

func (l *Lexer) skipWhitespace() {
	for {
		r := l.peekChar()
		if r == utf8.RuneError && l.pos.Offset >= len(l.src) {
			return
		}
		if !unicode.IsSpace(r) {
			return
		}
		l.advanceChar()
	}
}

func (l *Lexer) peekChar() rune {
	if l.pos.Offset >= len(l.src) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos.Offset:])
	return r
}

func (l *Lexer) advanceChar() {
	if l.pos.Offset >= len(l.src) {
		return
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos.Offset:])
	l.pos = l.pos.Advance(r)
}

func indexRune(s string, target rune) int {
	for i, r := range s {
		if r == target {
			return i
		}
	}
	return -1
}
