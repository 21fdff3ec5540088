// Package parser converts equation descriptions to syntax trees.
//
// Grammar is:
//
//	statement-list = statement-item, {statement-item};
//	statement-item = comment-line, {comment-line}, statement | statement;
//	statement = pattern-name, "=", expr, ".";
//	expr = sequence | variable | optional;   # tried in this order
//	sequence = "[", quantified-symbol, {blanks, quantified-symbol}, "]";
//	optional = "(", expr, "|", expr, ")";
//	variable = quantified-symbol;
//	quantified-symbol = identifier, ["+" | "*"];
//
// Any whitespace including line breaks may surround statements, "=" sign, and optional operands.
// Only blanks (spaces and tabs) are allowed inside sequences and before the final dot.
//
// Parser is immutable, stateless, and safe for concurrent use.
package parser

import (
	"log/slog"

	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/source"
)

// DefaultMaxDepth is the default limit of nested alternatives.
const DefaultMaxDepth = 256

// Options configure Parser.
type Options struct {
	// MaxDepth limits expression nesting, non-positive value means DefaultMaxDepth.
	MaxDepth int

	// Logger receives debug records of failed alternatives and parsed statements, may be nil.
	Logger *slog.Logger
}

// Parser holds parsing options.
type Parser struct {
	maxDepth int
	log      *slog.Logger
}

// New creates new Parser.
func New(opts Options) *Parser {
	p := &Parser{maxDepth: opts.MaxDepth, log: opts.Logger}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p
}

// MaxDepth returns effective nesting limit.
func (p *Parser) MaxDepth() int {
	return p.maxDepth
}

var defaultParser = New(Options{})

// Parse parses source using default options.
func Parse(src *source.Source) (*ast.Program, source.Cursor, error) {
	return defaultParser.Parse(src)
}

// ParseString parses a string using default options.
func ParseString(name, content string) (*ast.Program, string, error) {
	return defaultParser.ParseString(name, content)
}

// Parse parses the whole source as a statement list.
// Returns program and a cursor pointing at unconsumed input on success.
// Unconsumed input is not an error, caller decides whether it is acceptable.
// Returns nil program and *eqdef.Error with EmptyProgramError (or DepthLimitError) code on failure,
// the cause of failure is available via errors.Unwrap.
func (p *Parser) Parse(src *source.Source) (*ast.Program, source.Cursor, error) {
	start := src.Start()
	prog, rest, e := p.statementList(start)
	if e != nil {
		return nil, start, publicError(e)
	}

	p.trace("parsed program", rest, "statements", len(prog.Statements), "rest", len(rest.Rest()))
	return prog, rest, nil
}

// ParseString parses named string content and returns program and unconsumed part of content.
func (p *Parser) ParseString(name, content string) (*ast.Program, string, error) {
	prog, rest, e := p.Parse(source.New(name, content))
	if e != nil {
		return nil, content, e
	}
	return prog, rest.Rest(), nil
}

// ParseBytes parses named byte content and returns program and unconsumed part of content.
func (p *Parser) ParseBytes(name string, content []byte) (*ast.Program, string, error) {
	return p.ParseString(name, string(content))
}

// ParseStatement parses a single statement starting exactly at cursor.
func (p *Parser) ParseStatement(c source.Cursor) (ast.Statement, source.Cursor, error) {
	s, next, e := p.statement(c)
	return s, next, publicError(e)
}

// ParseExpr parses a single expression starting exactly at cursor.
func (p *Parser) ParseExpr(c source.Cursor) (ast.SequentialExpression, source.Cursor, error) {
	expr, next, e := p.expr(c, 0)
	return expr, next, publicError(e)
}

// ParseQuantifiedSymbol parses a terminal with optional quantifier suffix starting exactly at cursor.
func (p *Parser) ParseQuantifiedSymbol(c source.Cursor) (ast.QuantifiedSymbol, source.Cursor, error) {
	qs, next, e := quantifiedSymbol(c)
	return qs, next, publicError(e)
}

// ParseComment parses a comment line and following whitespace starting at cursor.
func (p *Parser) ParseComment(c source.Cursor) (ast.Comment, source.Cursor, error) {
	cm, next, e := comment(c)
	return cm, next, publicError(e)
}

func (p *Parser) trace(msg string, c source.Cursor, args ...any) {
	if p.log == nil {
		return
	}
	args = append(args, "line", c.Line(), "col", c.Col())
	p.log.Debug(msg, args...)
}

func (p *Parser) traceFailure(rule string, c source.Cursor, e error) {
	if p.log == nil {
		return
	}
	p.trace("alternative failed", c, "rule", rule, "lead", isLead(e), "error", publicError(e).Error())
}
