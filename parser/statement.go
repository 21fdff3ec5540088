package parser

import (
	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/lexer"
	"github.com/ava12/eqdef/source"
)

func (p *Parser) statementList(c source.Cursor) (*ast.Program, source.Cursor, error) {
	list, next, e := many1(c, p.statementItem)
	if e != nil {
		if isFatal(e) {
			return nil, c, e
		}
		return nil, c, emptyProgramError(c, publicError(e))
	}

	return &ast.Program{Statements: list}, next, nil
}

// statementItem fetches a statement preceded by comment lines or a bare statement, both surrounded by whitespace.
func (p *Parser) statementItem(c source.Cursor) (ast.Statement, source.Cursor, error) {
	return firstOf(p, c, nil,
		alternative[ast.Statement]{"commented-statement", p.commentedStatement},
		alternative[ast.Statement]{"statement", p.bareStatement},
	)
}

func (p *Parser) commentedStatement(c source.Cursor) (ast.Statement, source.Cursor, error) {
	next := lexer.SkipMultispace(c)
	comments, next, e := many1(next, comment)
	if e != nil {
		return nil, c, e
	}

	p.trace("skipped comments", next, "count", len(comments))
	return p.bareStatement(next)
}

func (p *Parser) bareStatement(c source.Cursor) (ast.Statement, source.Cursor, error) {
	s, next, e := p.statement(lexer.SkipMultispace(c))
	if e != nil {
		return nil, c, e
	}

	return s, lexer.SkipMultispace(next), nil
}

// comment fetches a comment line with trailing whitespace.
func comment(c source.Cursor) (ast.Comment, source.Cursor, error) {
	lc, next, ok := lexer.CommentLine(c)
	if !ok {
		return nil, c, leadAt(c, commentError)
	}

	return lc, lexer.SkipMultispace(next), nil
}

func (p *Parser) statement(c source.Cursor) (ast.Statement, source.Cursor, error) {
	lhs, next, e := statementLhs(c)
	if e != nil {
		return nil, c, e
	}

	next = lexer.SkipMultispace(next)
	_, next, ok := lexer.Literal(next, equTok)
	if !ok {
		return nil, c, statementTokenError(next, equTok)
	}

	next = lexer.SkipMultispace(next)
	rhs, next, e := p.statementRhs(next)
	if e != nil {
		return nil, c, e
	}

	next = lexer.SkipSpace(next)
	_, next, ok = lexer.Literal(next, dotTok)
	if !ok {
		return nil, c, statementTokenError(next, dotTok)
	}

	s := &ast.Equivalence{Lhs: lhs, Rhs: rhs}
	p.trace("parsed statement", c, "name", lhs.Pos().Text())
	return s, next, nil
}

func statementLhs(c source.Cursor) (ast.StatementLhs, source.Cursor, error) {
	name, next, e := lexer.Identifier(c, false)
	if e != nil {
		return nil, c, e
	}

	if name.IsEmpty() {
		return nil, c, patternNameError(c)
	}

	return &ast.PatternName{Name: name}, next, nil
}

func (p *Parser) statementRhs(c source.Cursor) (ast.StatementRhs, source.Cursor, error) {
	expr, next, e := p.expr(c, 0)
	if e != nil {
		return nil, c, e
	}

	return &ast.Expr{Expr: expr}, next, nil
}
