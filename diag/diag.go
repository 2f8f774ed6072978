// Package diag provides the UTF-8-aware source cursor and span rendering
// shared by every component that reports an error anchored to a source
// location.
package diag

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Position is an opaque cursor into a source string: a byte offset plus
// the 0-indexed line and column (in codepoints, not bytes) it corresponds
// to.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Advance returns the Position reached after consuming the rune r at the
// receiver's position. Every rune advances Offset by its UTF-8 byte width.
// Newlines increment Line and reset Column; every other rune advances
// Column by one.
func (p Position) Advance(r rune) Position {
	next := Position{
		Offset: p.Offset + utf8.RuneLen(r),
		Line:   p.Line,
		Column: p.Column + 1,
	}
	if r == '\n' {
		next.Line = p.Line + 1
		next.Column = 0
	}
	return next
}

// Span is an inclusive start, exclusive end range of Positions.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a Span from start to end.
func NewSpan(start, end Position) Span {
	return Span{Start: start, End: end}
}

// Snippet renders a multi-line, carat-underlined view of the source line
// containing the span's start, for embedding in error messages.
func (s Span) Snippet(src string) string {
	lines := strings.Split(src, "\n")
	var line string
	if s.Start.Line >= 0 && s.Start.Line < len(lines) {
		line = strings.TrimLeft(lines[s.Start.Line], " \t")
	}
	underline := make([]byte, 0, len([]rune(line)))
	for i := range []rune(line) {
		if i >= s.Start.Column && i <= s.End.Column {
			underline = append(underline, '^')
		} else {
			underline = append(underline, '-')
		}
	}
	var b strings.Builder
	b.WriteString("\nLine: ")
	b.WriteString(strconv.Itoa(s.Start.Line))
	b.WriteString(", Column: ")
	b.WriteString(strconv.Itoa(s.Start.Column))
	b.WriteString("\n>> '")
	b.WriteString(line)
	b.WriteString("'\n   ")
	b.Write(underline)
	return b.String()
}
