package source

import (
	"strings"
)

// Cursor is an immutable input position inside a Source.
// Recognizers take a cursor and return a new one, so backtracking is simply reusing an older value.
type Cursor struct {
	src *Source
	pos int
}

func (c Cursor) Source() *Source {
	return c.src
}

func (c Cursor) SourceName() string {
	if c.src == nil {
		return ""
	}
	return c.src.Name()
}

func (c Cursor) Offset() int {
	return c.pos
}

// Line returns 1-based line number or 0 if cursor has no source.
func (c Cursor) Line() int {
	if c.src == nil {
		return 0
	}
	l, _ := c.src.LineCol(c.pos)
	return l
}

// Col returns 1-based column number or 0 if cursor has no source.
func (c Cursor) Col() int {
	if c.src == nil {
		return 0
	}
	_, col := c.src.LineCol(c.pos)
	return col
}

func (c Cursor) Rest() string {
	if c.src == nil {
		return ""
	}
	return c.src.content[c.pos:]
}

func (c Cursor) IsEof() bool {
	return c.src == nil || c.pos >= len(c.src.content)
}

// Peek returns the next byte and true, or 0 and false at the end of input.
func (c Cursor) Peek() (byte, bool) {
	if c.IsEof() {
		return 0, false
	}
	return c.src.content[c.pos], true
}

func (c Cursor) HasPrefix(prefix string) bool {
	return strings.HasPrefix(c.Rest(), prefix)
}

// Skip returns cursor advanced by size bytes, clamped to the end of content.
func (c Cursor) Skip(size int) Cursor {
	if c.src == nil || size <= 0 {
		return c
	}

	c.pos += size
	if c.pos > len(c.src.content) {
		c.pos = len(c.src.content)
	}
	return c
}

// SkipWhile returns cursor advanced past all leading bytes matching f.
func (c Cursor) SkipWhile(f func(byte) bool) Cursor {
	if c.src == nil {
		return c
	}

	content := c.src.content
	for c.pos < len(content) && f(content[c.pos]) {
		c.pos++
	}
	return c
}

// SpanTo returns span between c and end; end must point into the same source at or after c.
func (c Cursor) SpanTo(end Cursor) Span {
	return Span{c.src, c.pos, end.pos}
}

// Span is a non-owning view of source content between two byte offsets.
// Span keeps a reference to its source, text is sliced from source content without copying.
type Span struct {
	src        *Source
	start, end int
}

func (s Span) Source() *Source {
	return s.src
}

func (s Span) Text() string {
	if s.src == nil {
		return ""
	}
	return s.src.content[s.start:s.end]
}

func (s Span) Start() int {
	return s.start
}

func (s Span) End() int {
	return s.end
}

func (s Span) Len() int {
	return s.end - s.start
}

func (s Span) IsEmpty() bool {
	return s.end <= s.start
}

func (s Span) Cursor() Cursor {
	return Cursor{s.src, s.start}
}

func (s Span) Line() int {
	return s.Cursor().Line()
}

func (s Span) Col() int {
	return s.Cursor().Col()
}

func (s Span) String() string {
	return s.Text()
}
