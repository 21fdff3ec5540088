package parser

import (
	"errors"

	"github.com/ava12/eqdef"
	"github.com/ava12/eqdef/lexer"
	"github.com/ava12/eqdef/source"
)

// leadError marks a failure at the very first token of a rule, i.e. the rule is not applicable at all.
// Ordered alternatives ignore such failures when choosing which error to report,
// so the reported error is built only when it is actually needed.
type leadError struct {
	c     source.Cursor
	build func(source.Cursor) *eqdef.Error
	e     error
}

func (le *leadError) Error() string {
	return le.Unwrap().Error()
}

func (le *leadError) Unwrap() error {
	if le.e != nil {
		return le.e
	}
	return le.build(le.c)
}

func lead(e error) error {
	if e == nil || isLead(e) {
		return e
	}
	return &leadError{e: e}
}

func leadAt(c source.Cursor, build func(source.Cursor) *eqdef.Error) error {
	return &leadError{c: c, build: build}
}

func isLead(e error) bool {
	_, is := e.(*leadError)
	return is
}

// publicError strips lead markers so callers always get *eqdef.Error.
func publicError(e error) error {
	if le, is := e.(*leadError); is {
		return le.Unwrap()
	}
	return e
}

func errorOffset(e error) int {
	var ee *eqdef.Error
	if errors.As(e, &ee) {
		return ee.Offset
	}
	return -1
}

func errorCode(e error) int {
	var ee *eqdef.Error
	if errors.As(e, &ee) {
		return ee.Code
	}
	return 0
}

func isFatal(e error) bool {
	return !isLead(e) && errorCode(e) == eqdef.DepthLimitError
}

func invalidSymbolError(c source.Cursor, cause error) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.InvalidSymbolError, "symbol expected").Wrap(cause)
}

func symbolError(c source.Cursor) *eqdef.Error {
	_, _, e := lexer.Identifier(c, true)
	return invalidSymbolError(c, e)
}

func noExprError(c source.Cursor) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.InvalidSymbolError, "expected '[', '(' or symbol")
}

func sequenceStartError(c source.Cursor) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.UnterminatedSequenceError, "'[' expected")
}

func noSymbolsError(c source.Cursor) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.UnterminatedSequenceError, "empty sequence")
}

func unterminatedSequenceError(c source.Cursor, opening source.Span) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.UnterminatedSequenceError,
		"']' expected to close '[' at line %d col %d", opening.Line(), opening.Col())
}

func optionalTokenError(c source.Cursor, token string) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.MalformedOptionalError, "%q expected", token)
}

func optionalStartError(c source.Cursor) *eqdef.Error {
	return optionalTokenError(c, lBraceTok)
}

func optionalOperandError(c source.Cursor, cause error) *eqdef.Error {
	var pos eqdef.SourcePos = c
	var ee *eqdef.Error
	if errors.As(cause, &ee) {
		pos = causePos{ee}
	}
	return eqdef.FormatErrorPos(pos, eqdef.MalformedOptionalError, "malformed alternative operand").Wrap(cause)
}

func statementTokenError(c source.Cursor, token string) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.MalformedStatementError, "%q expected", token)
}

func commentError(c source.Cursor) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.MalformedStatementError, "comment expected")
}

func patternNameError(c source.Cursor) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.MalformedStatementError, "pattern name expected")
}

func emptyProgramError(c source.Cursor, cause error) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.EmptyProgramError, "no statements found").Wrap(cause)
}

func depthLimitError(c source.Cursor, limit int) *eqdef.Error {
	return eqdef.FormatErrorPos(c, eqdef.DepthLimitError, "expression nesting exceeds %d levels", limit)
}

// causePos reports position of a nested error.
type causePos struct {
	e *eqdef.Error
}

func (cp causePos) SourceName() string { return cp.e.SourceName }
func (cp causePos) Line() int          { return cp.e.Line }
func (cp causePos) Col() int           { return cp.e.Col }
func (cp causePos) Offset() int        { return cp.e.Offset }
func (cp causePos) Rest() string       { return cp.e.Remainder }
