// Package lexer implements the table-driven longest-match tokenizer: an
// ordered list of token specs, each pairing a regex.Matcher with a
// kind-constructor, consulted by an expanding-window scan over the source.
package lexer

import (
	"github.com/shivam-909/blogger/diag"
	"github.com/shivam-909/blogger/regex"
)

// TokenKind tags the closed set of token kinds the lexer can produce.
// Heading, TextBlock, and Ident carry their matched text; the rest are
// constant.
type TokenKind struct {
	Tag   Tag
	Level string
	Text  string
}

// Tag discriminates TokenKind without requiring callers to compare embedded
// strings for the constant-kind cases.
type Tag int

const (
	TagArticle Tag = iota
	TagSection
	TagParagraph
	TagAside
	TagCode
	TagOList
	TagUList
	TagLItem
	TagLBrace
	TagRBrace
	TagLParen
	TagRParen
	TagHeading
	TagTextBlock
	TagIdent
)

func (k TokenKind) String() string {
	switch k.Tag {
	case TagArticle:
		return "Article"
	case TagSection:
		return "Section"
	case TagParagraph:
		return "Paragraph"
	case TagAside:
		return "Aside"
	case TagCode:
		return "Code"
	case TagOList:
		return "OList"
	case TagUList:
		return "UList"
	case TagLItem:
		return "LItem"
	case TagLBrace:
		return "LBrace"
	case TagRBrace:
		return "RBrace"
	case TagLParen:
		return "LParen"
	case TagRParen:
		return "RParen"
	case TagHeading:
		return "Heading(" + k.Level + ")"
	case TagTextBlock:
		return "TextBlock(" + k.Text + ")"
	case TagIdent:
		return "Ident(" + k.Text + ")"
	default:
		return "Unknown"
	}
}

// Token pairs a TokenKind with the Span of source it was lexed from.
type Token struct {
	Kind TokenKind
	Span diag.Span
}

// TokenSpec pairs a compiled matcher with the constructor invoked on a
// successful whole-string match against the candidate window.
type TokenSpec struct {
	Matcher *regex.Matcher
	ToKind  func(s string) TokenKind
}

// TryMatch reports the TokenKind produced for s if the spec's matcher
// accepts s as a whole string.
func (ts TokenSpec) TryMatch(s string) (TokenKind, bool) {
	if ts.Matcher.Matches(s) {
		return ts.ToKind(s), true
	}
	return TokenKind{}, false
}

// mustCompile panics on a bad pattern; all patterns here are compile-time
// constants, so a failure indicates a programming error in this package,
// not bad user input.
func mustCompile(pattern string) *regex.Matcher {
	m, err := regex.Compile(pattern)
	if err != nil {
		panic("lexer: invalid built-in pattern " + pattern + ": " + err.Error())
	}
	return m
}

// defaultSpecs is built once at package init and shared, read-only, by
// every Lexer: each spec's Matcher has its epsilon-closure cache
// precomputed and immutable, so concurrent Lexers may share it without
// synchronization (see regex.Matcher).
var defaultSpecs = tokenSpecs()

// tokenSpecs returns the ordered list of token specs. Order matters only
// for structural keywords ahead of the Ident catch-all, which must be
// last: see the lexer's expanding-window longest-match discipline in
// Lexer.bestMatch.
func tokenSpecs() []TokenSpec {
	return []TokenSpec{
		{mustCompile("\\{"), func(string) TokenKind { return TokenKind{Tag: TagLBrace} }},
		{mustCompile("\\}"), func(string) TokenKind { return TokenKind{Tag: TagRBrace} }},
		{mustCompile("\\("), func(string) TokenKind { return TokenKind{Tag: TagLParen} }},
		{mustCompile("\\)"), func(string) TokenKind { return TokenKind{Tag: TagRParen} }},
		{mustCompile("(s.e.c.t.i.o.n)"), func(string) TokenKind { return TokenKind{Tag: TagSection} }},
		{mustCompile("(a.r.t.i.c.l.e)"), func(string) TokenKind { return TokenKind{Tag: TagArticle} }},
		{mustCompile("(p.a.r.a.g.r.a.p.h)"), func(string) TokenKind { return TokenKind{Tag: TagParagraph} }},
		{mustCompile("(h.[1-3])"), func(s string) TokenKind { return TokenKind{Tag: TagHeading, Level: s} }},
		{mustCompile("(a.s.i.d.e)"), func(string) TokenKind { return TokenKind{Tag: TagAside} }},
		{mustCompile("(o.l)"), func(string) TokenKind { return TokenKind{Tag: TagOList} }},
		{mustCompile("(u.l)"), func(string) TokenKind { return TokenKind{Tag: TagUList} }},
		{mustCompile("(l.i)"), func(string) TokenKind { return TokenKind{Tag: TagLItem} }},
		{mustCompile("(c.o.d.e)"), func(string) TokenKind { return TokenKind{Tag: TagCode} }},
		{mustCompile("(`)"), func(s string) TokenKind { return TokenKind{Tag: TagTextBlock, Text: s} }},
		{mustCompile("(([a-z]|[A-Z]|[0-9])*)"), func(s string) TokenKind { return TokenKind{Tag: TagIdent, Text: s} }},
	}
}
