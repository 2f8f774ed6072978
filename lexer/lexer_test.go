package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTokens(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src)
	var toks []Token
	for {
		tok, err, done := l.Next()
		require.NoError(t, err)
		if done {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexerKeywords(t *testing.T) {
	toks := allTokens(t, "article section paragraph aside code ol ul li { } ( )")
	want := []Tag{
		TagArticle, TagSection, TagParagraph, TagAside, TagCode,
		TagOList, TagUList, TagLItem, TagLBrace, TagRBrace, TagLParen, TagRParen,
	}
	require.Len(t, toks, len(want))
	for i, tag := range want {
		assert.Equal(t, tag, toks[i].Kind.Tag, "token %d", i)
	}
}

func TestLexerHeadingLevel(t *testing.T) {
	toks := allTokens(t, "h1 h2 h3")
	require.Len(t, toks, 3)
	assert.Equal(t, "h1", toks[0].Kind.Level)
	assert.Equal(t, "h2", toks[1].Kind.Level)
	assert.Equal(t, "h3", toks[2].Kind.Level)
}

func TestLexerIdentFallback(t *testing.T) {
	toks := allTokens(t, "hello World42")
	require.Len(t, toks, 2)
	assert.Equal(t, TagIdent, toks[0].Kind.Tag)
	assert.Equal(t, "hello", toks[0].Kind.Text)
	assert.Equal(t, "World42", toks[1].Kind.Text)
}

func TestLexerIdentLongestMatchBeatsKeywordPrefix(t *testing.T) {
	// "articles" is not the keyword "article": longest match must consume
	// the whole identifier rather than stopping at the keyword boundary.
	toks := allTokens(t, "articles")
	require.Len(t, toks, 1)
	assert.Equal(t, TagIdent, toks[0].Kind.Tag)
	assert.Equal(t, "articles", toks[0].Kind.Text)
}

func TestLexerTextBlock(t *testing.T) {
	toks := allTokens(t, "`hello, world`")
	require.Len(t, toks, 1)
	assert.Equal(t, TagTextBlock, toks[0].Kind.Tag)
	assert.Equal(t, "hello, world", toks[0].Kind.Text)
}

func TestLexerTextBlockPreservesWhitespaceAndNewlines(t *testing.T) {
	toks := allTokens(t, "`line one\n  line two`")
	require.Len(t, toks, 1)
	assert.Equal(t, "line one\n  line two", toks[0].Kind.Text)
}

func TestLexerUnterminatedBlock(t *testing.T) {
	l := New("`oops")
	_, err, done := l.Next()
	require.False(t, done)
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnterminatedBlock, lexErr.Kind)
}

func TestLexerUnexpectedChar(t *testing.T) {
	l := New("@")
	_, err, done := l.Next()
	require.False(t, done)
	require.Error(t, err)
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, UnexpectedChar, lexErr.Kind)
	assert.Equal(t, '@', lexErr.Char)
}

func TestLexerRoundTripsStructuralProgram(t *testing.T) {
	src := "article Home{intro}section intro{paragraph{h1{Title}}}"
	toks := allTokens(t, src)
	require.NotEmpty(t, toks)
	assert.Equal(t, TagArticle, toks[0].Kind.Tag)
	want := []string{
		"Article", "Ident(Home)", "LBrace", "Ident(intro)", "RBrace",
		"Section", "Ident(intro)", "LBrace",
		"Paragraph", "LBrace",
		"Heading(h1)", "LBrace", "Ident(Title)", "RBrace",
		"RBrace", "RBrace",
	}
	var got []string
	for _, tok := range toks {
		got = append(got, tok.Kind.String())
	}
	assert.Equal(t, want, got)
}

func TestLexerEmptySourceYieldsNoTokens(t *testing.T) {
	toks := allTokens(t, "")
	assert.Empty(t, toks)

	toks = allTokens(t, "   \n\t  ")
	assert.Empty(t, toks)
}
