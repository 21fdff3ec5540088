// Package source defines source text, immutable input cursor, and text spans used by lexer and parser.
package source

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Source holds named source text and line start offsets.
// Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    string
	lineStarts []int

	contBytes []int // offsets of UTF-8 continuation bytes, nil for ASCII content
	valid     bool
}

// New creates new Source.
func New(name, content string) *Source {
	s := &Source{name: name, content: content}
	lineCnt := strings.Count(content, "\n") + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	s.valid = utf8.ValidString(content)
	if s.valid {
		for i := 0; i < len(content); i++ {
			if content[i]&0xc0 == 0x80 {
				s.contBytes = append(s.contBytes, i)
			}
		}
	}

	return s
}

// NormalizeNls converts CR LF and single CR line breaks to LF.
func NormalizeNls(content string) string {
	if strings.IndexByte(content, '\r') < 0 {
		return content
	}
	return strings.ReplaceAll(strings.ReplaceAll(content, "\r\n", "\n"), "\r", "\n")
}

func NewBytes(name string, content []byte) *Source {
	return New(name, string(content))
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() string {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol returns 1-based line and column (in runes) for byte offset.
// Offsets beyond content bounds are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, s.runeCount(lineStart, pos) + 1
}

func (s *Source) runeCount(start, end int) int {
	if !s.valid {
		return utf8.RuneCountInString(s.content[start:end])
	}

	return end - start - (sort.SearchInts(s.contBytes, end) - sort.SearchInts(s.contBytes, start))
}

// Pos returns byte offset for 1-based line and column (in bytes).
// Returns 0 for non-positive line or column, content length for positions beyond the end.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

func (s *Source) findLineIndex(pos int) int {
	return sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
}

func (s *Source) Start() Cursor {
	return Cursor{s, 0}
}

// Span returns a span of content between two byte offsets.
func (s *Source) Span(start, end int) Span {
	return Span{s, start, end}
}
