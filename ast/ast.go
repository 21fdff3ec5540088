// Package ast defines syntax tree of equation descriptions.
//
// Variant families (Statement, StatementLhs, StatementRhs, SequentialExpression, Symbol, Comment)
// are closed: each is an interface with an unexported marker method implemented only by types of this package.
// All text is kept as source.Span values pointing into parsed source.
package ast

import (
	"github.com/ava12/eqdef/source"
)

// Node is implemented by every tree node.
type Node interface {
	Pos() source.Span
}

// Program is a non-empty list of statements in source order.
type Program struct {
	Statements []Statement
}

// Pos returns position of the first statement.
func (p *Program) Pos() source.Span {
	if len(p.Statements) == 0 {
		return source.Span{}
	}
	return p.Statements[0].Pos()
}

// Statement is a single equation.
type Statement interface {
	Node
	statement()
}

// Equivalence is the "name = expression." statement.
type Equivalence struct {
	Lhs StatementLhs
	Rhs StatementRhs
}

func (*Equivalence) statement() {}

func (e *Equivalence) Pos() source.Span {
	return e.Lhs.Pos()
}

type StatementLhs interface {
	Node
	statementLhs()
}

type PatternName struct {
	Name source.Span
}

func (*PatternName) statementLhs() {}

func (pn *PatternName) Pos() source.Span {
	return pn.Name
}

// StatementRhs is the right-hand side of a statement.
// Structured (object) patterns are reserved for a future case.
type StatementRhs interface {
	Node
	statementRhs()
}

type Expr struct {
	Expr SequentialExpression
}

func (*Expr) statementRhs() {}

func (e *Expr) Pos() source.Span {
	return e.Expr.Pos()
}

// SequentialExpression is one of Variable, Sequence, or Optional.
type SequentialExpression interface {
	Node
	sequentialExpression()
}

type Variable struct {
	Symbol QuantifiedSymbol
}

// Sequence is an ordered list of at least one quantified symbol.
type Sequence struct {
	Symbols []QuantifiedSymbol
	Span    source.Span
}

// Optional is a binary alternative, operand positions are preserved.
type Optional struct {
	Lhs, Rhs SequentialExpression
	Span     source.Span
}

func (*Variable) sequentialExpression() {}
func (*Sequence) sequentialExpression() {}
func (*Optional) sequentialExpression() {}

func (v *Variable) Pos() source.Span {
	return v.Symbol.Pos()
}

func (s *Sequence) Pos() source.Span {
	return s.Span
}

func (o *Optional) Pos() source.Span {
	return o.Span
}

// QuantifiedSymbol pairs a symbol with its quantifier.
type QuantifiedSymbol struct {
	Symbol     Symbol
	Quantifier Quantifier
}

func (qs QuantifiedSymbol) Pos() source.Span {
	if qs.Symbol == nil {
		return source.Span{}
	}
	return qs.Symbol.Pos()
}

type Symbol interface {
	Node
	symbol()
}

// Terminal is a literal identifier-shaped token.
type Terminal struct {
	Value source.Span
}

// NonTerminal is a reference to another equation.
// The notation has no syntax for it yet, parser never returns this type.
type NonTerminal struct {
	Name source.Span
}

func (*Terminal) symbol()    {}
func (*NonTerminal) symbol() {}

func (t *Terminal) Pos() source.Span {
	return t.Value
}

func (nt *NonTerminal) Pos() source.Span {
	return nt.Name
}

// Quantifier tells how many times a symbol may occur.
type Quantifier int

const (
	// One means exactly one occurrence, no suffix.
	One Quantifier = iota
	// OneOrMore is denoted by "+" suffix.
	OneOrMore
	// ZeroOrMore is denoted by "*" suffix.
	ZeroOrMore
)

func (q Quantifier) String() string {
	switch q {
	case One:
		return "One"
	case OneOrMore:
		return "OneOrMore"
	case ZeroOrMore:
		return "ZeroOrMore"
	default:
		return "Unknown"
	}
}

// Suffix returns the notation suffix of quantifier.
func (q Quantifier) Suffix() string {
	switch q {
	case OneOrMore:
		return "+"
	case ZeroOrMore:
		return "*"
	default:
		return ""
	}
}

// Comment is recognized and skipped by parser, it never becomes a part of Program.
type Comment interface {
	Node
	comment()
}

// LineComment holds text after "//" up to the end of line.
type LineComment struct {
	Text   source.Span
	Marker source.Span
}

func (*LineComment) comment() {}

func (lc *LineComment) Pos() source.Span {
	return lc.Marker
}
