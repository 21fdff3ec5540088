package parser

import (
	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/lexer"
	"github.com/ava12/eqdef/source"
)

func startsSymbol(c source.Cursor) bool {
	b, ok := c.Peek()
	return ok && lexer.IsLetter(b)
}

func symbol(c source.Cursor) (ast.Symbol, source.Cursor, error) {
	value, next, e := lexer.Identifier(c, true)
	if e != nil {
		return nil, c, invalidSymbolError(c, e)
	}

	return &ast.Terminal{Value: value}, next, nil
}

func quantifiedSymbol(c source.Cursor) (ast.QuantifiedSymbol, source.Cursor, error) {
	sym, next, e := symbol(c)
	if e != nil {
		return ast.QuantifiedSymbol{}, c, e
	}

	q, next := lexer.Quantifier(next)
	return ast.QuantifiedSymbol{Symbol: sym, Quantifier: q}, next, nil
}
