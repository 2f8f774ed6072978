// Package parser implements the recursive-descent parser that turns a
// lexer.Lexer's token stream into an ast.Program, enforcing the grammar's
// global invariants (exactly one article, unique section names) as it goes.
// Section-call names are not resolved here.
package parser

import (
	"fmt"

	"github.com/shivam-909/blogger/ast"
	"github.com/shivam-909/blogger/diag"
	"github.com/shivam-909/blogger/lexer"
)

// Parser consumes tokens from a lexer.Lexer and holds a reference to the
// full source for error rendering.
type Parser struct {
	lex    *lexer.Lexer
	source string

	havePeek bool
	peekTok  lexer.Token
	peekErr  error
	peekEOF  bool
}

// New wraps lex, lexing from source, into a Parser.
func New(lex *lexer.Lexer, source string) *Parser {
	return &Parser{lex: lex, source: source}
}

// Parse runs the full grammar over the token stream and returns the
// resulting Program, or the first error encountered.
func (p *Parser) Parse() (*ast.Program, error) {
	var article *ast.ArticleDeclaration
	sections := make(map[string]ast.SectionDeclaration)

	for {
		tok, ok, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch tok.Kind.Tag {
		case lexer.TagArticle:
			if article != nil {
				return nil, newError("Multiple article declarations found", tok.Span, p.source)
			}
			a, err := p.parseArticleDeclaration()
			if err != nil {
				return nil, err
			}
			article = a
		case lexer.TagSection:
			sec, err := p.parseSectionDeclaration()
			if err != nil {
				return nil, err
			}
			if _, exists := sections[sec.Name]; exists {
				return nil, newError(fmt.Sprintf("Duplicate section: %s", sec.Name), tok.Span, p.source)
			}
			sections[sec.Name] = sec
		default:
			return nil, newError(fmt.Sprintf("Unexpected token at program level: %s", tok.Kind), tok.Span, p.source)
		}
	}

	if article == nil {
		return nil, newError("Missing article declaration", diag.Span{}, p.source)
	}
	return &ast.Program{Article: *article, Sections: sections}, nil
}

func (p *Parser) parseArticleDeclaration() (*ast.ArticleDeclaration, error) {
	if err := p.expectTag(lexer.TagArticle); err != nil {
		return nil, err
	}
	tok, ok, err := p.peekToken()
	if err != nil {
		return nil, err
	}
	var name string
	if ok && tok.Kind.Tag == lexer.TagLBrace {
		name = ""
	} else {
		name, err = p.expectIdent()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectTag(lexer.TagLBrace); err != nil {
		return nil, err
	}
	var calls []string
	for {
		tok, ok, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if !ok || tok.Kind.Tag == lexer.TagRBrace {
			break
		}
		ident, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		calls = append(calls, ident)
	}
	if err := p.expectTag(lexer.TagRBrace); err != nil {
		return nil, err
	}
	return &ast.ArticleDeclaration{Name: name, SectionCalls: calls}, nil
}

func (p *Parser) parseSectionDeclaration() (ast.SectionDeclaration, error) {
	if err := p.expectTag(lexer.TagSection); err != nil {
		return ast.SectionDeclaration{}, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return ast.SectionDeclaration{}, err
	}
	if err := p.expectTag(lexer.TagLBrace); err != nil {
		return ast.SectionDeclaration{}, err
	}
	var paragraphs []ast.Paragraph
	for {
		tok, ok, err := p.peekToken()
		if err != nil {
			return ast.SectionDeclaration{}, err
		}
		if !ok || tok.Kind.Tag == lexer.TagRBrace {
			break
		}
		para, err := p.parseParagraph()
		if err != nil {
			return ast.SectionDeclaration{}, err
		}
		paragraphs = append(paragraphs, para)
	}
	if err := p.expectTag(lexer.TagRBrace); err != nil {
		return ast.SectionDeclaration{}, err
	}
	return ast.SectionDeclaration{Name: name, Paragraphs: paragraphs}, nil
}

func (p *Parser) parseParagraph() (ast.Paragraph, error) {
	if err := p.expectTag(lexer.TagParagraph); err != nil {
		return ast.Paragraph{}, err
	}
	if err := p.expectTag(lexer.TagLBrace); err != nil {
		return ast.Paragraph{}, err
	}
	var stmts []ast.Statement
	for {
		tok, ok, err := p.peekToken()
		if err != nil {
			return ast.Paragraph{}, err
		}
		if !ok || tok.Kind.Tag == lexer.TagRBrace {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return ast.Paragraph{}, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expectTag(lexer.TagRBrace); err != nil {
		return ast.Paragraph{}, err
	}
	return ast.Paragraph{Statements: stmts}, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok, ok, err := p.peekToken()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newError("Unexpected end of input while parsing statement", diag.Span{}, p.source)
	}
	switch tok.Kind.Tag {
	case lexer.TagHeading:
		headingTok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if err := p.expectTag(lexer.TagLBrace); err != nil {
			return nil, err
		}
		content, err := p.parseHeadingContent()
		if err != nil {
			return nil, err
		}
		if err := p.expectTag(lexer.TagRBrace); err != nil {
			return nil, err
		}
		return ast.Heading{Level: headingTok.Kind.Level, Text: content}, nil

	case lexer.TagTextBlock:
		tbTok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		return ast.TextBlock{Text: tbTok.Kind.Text}, nil

	case lexer.TagCode:
		if _, err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.expectTag(lexer.TagLBrace); err != nil {
			return nil, err
		}
		tbTok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if err := p.expectTag(lexer.TagRBrace); err != nil {
			return nil, err
		}
		if tbTok.Kind.Tag != lexer.TagTextBlock {
			return nil, newError("Expected text block inside code block", tbTok.Span, p.source)
		}
		return ast.CodeBlock{Text: tbTok.Kind.Text}, nil

	case lexer.TagAside:
		return p.parseAside()

	case lexer.TagOList, lexer.TagUList:
		list, err := p.parseList()
		if err != nil {
			return nil, err
		}
		return ast.ListStatement{List: list}, nil

	default:
		return nil, newError(fmt.Sprintf("Unexpected token in statement: %s", tok.Kind), tok.Span, p.source)
	}
}

func (p *Parser) parseHeadingContent() (string, error) {
	tok, err := p.nextToken()
	if err != nil {
		return "", err
	}
	switch tok.Kind.Tag {
	case lexer.TagIdent, lexer.TagTextBlock:
		return tok.Kind.Text, nil
	default:
		return "", newError(fmt.Sprintf("Expected heading content, found %s", tok.Kind), tok.Span, p.source)
	}
}

func (p *Parser) parseAside() (ast.Statement, error) {
	if err := p.expectTag(lexer.TagAside); err != nil {
		return nil, err
	}
	if err := p.expectTag(lexer.TagLBrace); err != nil {
		return nil, err
	}
	tok, err := p.nextToken()
	if err != nil {
		return nil, err
	}
	var content string
	switch tok.Kind.Tag {
	case lexer.TagTextBlock, lexer.TagIdent:
		content = tok.Kind.Text
	default:
		return nil, newError(fmt.Sprintf("Expected TextBlock or Ident in aside, found %s", tok.Kind), tok.Span, p.source)
	}
	if err := p.expectTag(lexer.TagRBrace); err != nil {
		return nil, err
	}
	return ast.Aside{Text: content}, nil
}

func (p *Parser) parseList() (ast.List, error) {
	listTok, err := p.nextToken()
	if err != nil {
		return ast.List{}, err
	}
	var kind ast.ListKind
	switch listTok.Kind.Tag {
	case lexer.TagOList:
		kind = ast.Ordered
	case lexer.TagUList:
		kind = ast.Unordered
	default:
		return ast.List{}, newError(fmt.Sprintf("Expected OList or UList, found %s", listTok.Kind), listTok.Span, p.source)
	}
	if err := p.expectTag(lexer.TagLBrace); err != nil {
		return ast.List{}, err
	}
	var items []string
	for {
		tok, ok, err := p.peekToken()
		if err != nil {
			return ast.List{}, err
		}
		if !ok || tok.Kind.Tag == lexer.TagRBrace {
			break
		}
		item, err := p.parseListItem()
		if err != nil {
			return ast.List{}, err
		}
		items = append(items, item)
	}
	if err := p.expectTag(lexer.TagRBrace); err != nil {
		return ast.List{}, err
	}
	return ast.List{Kind: kind, Items: items}, nil
}

func (p *Parser) parseListItem() (string, error) {
	if err := p.expectTag(lexer.TagLItem); err != nil {
		return "", err
	}
	if err := p.expectTag(lexer.TagLBrace); err != nil {
		return "", err
	}
	tok, err := p.nextToken()
	if err != nil {
		return "", err
	}
	var item string
	switch tok.Kind.Tag {
	case lexer.TagTextBlock, lexer.TagIdent:
		item = tok.Kind.Text
	default:
		return "", newError(fmt.Sprintf("Expected TextBlock or Ident in list item, found %s", tok.Kind), tok.Span, p.source)
	}
	if err := p.expectTag(lexer.TagRBrace); err != nil {
		return "", err
	}
	return item, nil
}

func (p *Parser) expectTag(tag lexer.Tag) error {
	tok, err := p.nextToken()
	if err != nil {
		return err
	}
	if tok.Kind.Tag != tag {
		return newError(fmt.Sprintf("Expected %s but found %s", tagName(tag), tok.Kind), tok.Span, p.source)
	}
	return nil
}

func (p *Parser) expectIdent() (string, error) {
	tok, err := p.nextToken()
	if err != nil {
		return "", err
	}
	if tok.Kind.Tag != lexer.TagIdent {
		return "", newError(fmt.Sprintf("Expected identifier, found %s", tok.Kind), tok.Span, p.source)
	}
	return tok.Kind.Text, nil
}

// peekToken buffers (at most) one token of lookahead.
func (p *Parser) peekToken() (lexer.Token, bool, error) {
	if !p.havePeek {
		tok, err, done := p.lex.Next()
		p.peekTok, p.peekErr, p.peekEOF = tok, err, done
		p.havePeek = true
	}
	if p.peekErr != nil {
		return lexer.Token{}, false, p.peekErr
	}
	if p.peekEOF {
		return lexer.Token{}, false, nil
	}
	return p.peekTok, true, nil
}

func (p *Parser) nextToken() (lexer.Token, error) {
	tok, ok, err := p.peekToken()
	if err != nil {
		return lexer.Token{}, err
	}
	if !ok {
		return lexer.Token{}, newError("Unexpected end of input", diag.Span{}, p.source)
	}
	p.havePeek = false
	return tok, nil
}

func tagName(tag lexer.Tag) string {
	return lexer.TokenKind{Tag: tag}.String()
}
