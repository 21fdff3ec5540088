// Package lexer defines lexical primitives of equation notation.
//
// Every primitive takes a source.Cursor and returns a new cursor past consumed input.
// Primitives never change their input cursor, so a caller may backtrack by reusing it.
package lexer

import (
	"github.com/ava12/eqdef"
	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/source"
)

// CommentMarker starts a line comment.
const CommentMarker = "//"

func IsLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func IsBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsSpace reports whether b is a blank, a line feed, or a carriage return.
func IsSpace(b byte) bool {
	return IsBlank(b) || b == '\n' || b == '\r'
}

func isNotLineFeed(b byte) bool {
	return b != '\n'
}

func emptyIdentifierError(c source.Cursor) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.EmptyIdentifierError, "identifier expected")
}

// Identifier fetches the longest run of latin letters.
// If required is true and there are no letters at cursor position, EmptyIdentifierError is returned,
// otherwise an empty span is a valid result.
func Identifier(c source.Cursor, required bool) (source.Span, source.Cursor, error) {
	next := c.SkipWhile(IsLetter)
	if required && next.Offset() == c.Offset() {
		return source.Span{}, c, emptyIdentifierError(c)
	}

	return c.SpanTo(next), next, nil
}

func SkipSpace(c source.Cursor) source.Cursor {
	return c.SkipWhile(IsBlank)
}

func SkipMultispace(c source.Cursor) source.Cursor {
	return c.SkipWhile(IsSpace)
}

// CommentLine fetches optional blanks, comment marker, and the rest of the line up to (not including) line feed.
// Returns false and the original cursor if there is no comment marker.
func CommentLine(c source.Cursor) (*ast.LineComment, source.Cursor, bool) {
	start := SkipSpace(c)
	if !start.HasPrefix(CommentMarker) {
		return nil, c, false
	}

	textStart := start.Skip(len(CommentMarker))
	end := textStart.SkipWhile(isNotLineFeed)
	return &ast.LineComment{
		Marker: start.SpanTo(textStart),
		Text:   textStart.SpanTo(end),
	}, end, true
}

// Quantifier fetches optional quantifier suffix. Returns ast.One and the original cursor if there is no suffix.
func Quantifier(c source.Cursor) (ast.Quantifier, source.Cursor) {
	b, ok := c.Peek()
	if ok {
		switch b {
		case '+':
			return ast.OneOrMore, c.Skip(1)
		case '*':
			return ast.ZeroOrMore, c.Skip(1)
		}
	}

	return ast.One, c
}

// Literal fetches exact text. Returns false and the original cursor if input does not start with text.
func Literal(c source.Cursor, text string) (source.Span, source.Cursor, bool) {
	if text == "" || !c.HasPrefix(text) {
		return source.Span{}, c, false
	}

	next := c.Skip(len(text))
	return c.SpanTo(next), next, true
}
