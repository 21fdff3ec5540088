/*
Package eqdef parses grammar equations written in a small textual notation.

Consists of subpackages:
  - ast: types of the syntax tree (program, statements, expressions, symbols);
  - source: source text, immutable input cursor and non-owning text spans;
  - lexer: lexical primitives (identifiers, blanks, comments, quantifiers, literals);
  - parser: recursive grammar turning source text into ast.Program;
  - render: debug, JSON, and YAML output of parse results;
  - cmd/eqdef: console utility dumping parse results of a file.

Description is a list of equations, each one is either a bracketed sequence of quantified terminals,
a single quantified terminal, or a binary alternative of two expressions:

	// line comment
	URI = [scheme host path*].
	Bits = bit+.
	Flag = (on | [off now]).

Terminal is a run of latin letters. Quantifier suffix is either + (one or more) or * (zero or more),
no suffix means exactly one. Comment lines start with // and may precede any equation.

Typical usage is:

	src := source.New("grammar.eq", text)
	program, rest, e := parser.New(parser.Options{}).Parse(src)

Syntax tree keeps spans pointing into src, so src must outlive the tree.
*/
package eqdef

import (
	"fmt"
)

// Error codes used by subpackages:
const (
	// EmptyIdentifierError indicates that identifier scan found no letters where at least one is required.
	EmptyIdentifierError = iota + 1

	// InvalidSymbolError indicates that no terminal symbol could be scanned.
	InvalidSymbolError

	// UnterminatedSequenceError indicates that "[" was never closed or the sequence contains no symbols.
	UnterminatedSequenceError

	// MalformedOptionalError indicates that "(", "|", or ")" is missing or a nested expression failed.
	MalformedOptionalError

	// MalformedStatementError indicates that "=" or "." is missing or the pattern name is empty.
	MalformedStatementError

	// EmptyProgramError indicates that not even one statement could be parsed.
	EmptyProgramError

	// DepthLimitError indicates that expression nesting exceeds configured limit.
	DepthLimitError
)

var codeNames = map[int]string{
	EmptyIdentifierError:      "EmptyIdentifier",
	InvalidSymbolError:        "InvalidSymbol",
	UnterminatedSequenceError: "UnterminatedSequence",
	MalformedOptionalError:    "MalformedOptional",
	MalformedStatementError:   "MalformedStatement",
	EmptyProgramError:         "EmptyProgram",
	DepthLimitError:           "DepthLimit",
}

// CodeName returns the name of error kind or "Unknown".
func CodeName(code int) string {
	name, has := codeNames[code]
	if !has {
		return "Unknown"
	}
	return name
}

// Error is the error type returned by the parsing engine.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source or 0.
	Line int

	// Col contains column number in source or 0.
	Col int

	// Offset contains byte offset of failure point in source.
	Offset int

	// Remainder contains unconsumed input starting at failure point.
	Remainder string

	// Cause contains nested recognizer error or nil.
	Cause error
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Cursor implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
	// Offset returns byte offset in source.
	Offset() int
	// Rest returns source content starting at Offset.
	Rest() string
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{Code: code, Message: msg, SourceName: name, Line: line, Col: col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns nested recognizer error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Kind returns the name of error code.
func (e *Error) Kind() string {
	return CodeName(e.Code)
}

// Wrap sets nested error and returns e.
func (e *Error) Wrap(cause error) *Error {
	e.Cause = cause
	return e
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	e := NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
	e.Offset = pos.Offset()
	e.Remainder = pos.Rest()
	return e
}
