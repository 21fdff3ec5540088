package parser

import (
	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/lexer"
	"github.com/ava12/eqdef/source"
)

const (
	lSquareTok = "["
	rSquareTok = "]"
	lBraceTok  = "("
	rBraceTok  = ")"
	pipeTok    = "|"
	equTok     = "="
	dotTok     = "."
)

// expr tries sequence, variable, and optional in this order.
// The order must be kept even though current lead tokens do not overlap.
func (p *Parser) expr(c source.Cursor, depth int) (ast.SequentialExpression, source.Cursor, error) {
	if depth > p.maxDepth {
		return nil, c, depthLimitError(c, p.maxDepth)
	}

	return firstOf(p, c, func(c source.Cursor) error { return noExprError(c) },
		alternative[ast.SequentialExpression]{"sequence", p.exprSequence},
		alternative[ast.SequentialExpression]{"variable", p.exprVariable},
		alternative[ast.SequentialExpression]{"optional", func(c source.Cursor) (ast.SequentialExpression, source.Cursor, error) {
			return p.exprOptional(c, depth)
		}},
	)
}

func (p *Parser) exprSequence(c source.Cursor) (ast.SequentialExpression, source.Cursor, error) {
	opening, next, ok := lexer.Literal(c, lSquareTok)
	if !ok {
		return nil, c, leadAt(c, sequenceStartError)
	}

	next = lexer.SkipSpace(next)
	symbols, next, e := separatedBlanks1(next, quantifiedSymbol)
	if e != nil {
		return nil, c, noSymbolsError(next).Wrap(e)
	}

	next = lexer.SkipSpace(next)
	_, next, ok = lexer.Literal(next, rSquareTok)
	if !ok {
		return nil, c, unterminatedSequenceError(next, opening)
	}

	return &ast.Sequence{Symbols: symbols, Span: opening}, next, nil
}

func (p *Parser) exprVariable(c source.Cursor) (ast.SequentialExpression, source.Cursor, error) {
	if !startsSymbol(c) {
		return nil, c, leadAt(c, symbolError)
	}

	qs, next, e := quantifiedSymbol(c)
	if e != nil {
		return nil, c, lead(e)
	}

	return &ast.Variable{Symbol: qs}, next, nil
}

func (p *Parser) exprOptional(c source.Cursor, depth int) (ast.SequentialExpression, source.Cursor, error) {
	opening, next, ok := lexer.Literal(c, lBraceTok)
	if !ok {
		return nil, c, leadAt(c, optionalStartError)
	}

	lhs, next, e := p.optionalOperand(next, depth)
	if e != nil {
		return nil, c, e
	}

	_, next, ok = lexer.Literal(next, pipeTok)
	if !ok {
		return nil, c, optionalTokenError(next, pipeTok)
	}

	rhs, next, e := p.optionalOperand(next, depth)
	if e != nil {
		return nil, c, e
	}

	_, next, ok = lexer.Literal(next, rBraceTok)
	if !ok {
		return nil, c, optionalTokenError(next, rBraceTok)
	}

	return &ast.Optional{Lhs: lhs, Rhs: rhs, Span: opening}, next, nil
}

// optionalOperand parses an expression surrounded by optional whitespace.
func (p *Parser) optionalOperand(c source.Cursor, depth int) (ast.SequentialExpression, source.Cursor, error) {
	start := lexer.SkipMultispace(c)
	expr, next, e := p.expr(start, depth+1)
	if e != nil {
		if isFatal(e) {
			return nil, c, e
		}
		return nil, c, optionalOperandError(start, e)
	}

	return expr, lexer.SkipMultispace(next), nil
}
