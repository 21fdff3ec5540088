package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump returns one-line debug representation of a node, e.g.
//
//	Equivalence(PatternName("Bit"), Expr(Optional(Variable(a, One), Variable(b, One))))
//
// Equal trees always have equal dumps.
func Dump(n Node) string {
	var sb strings.Builder
	dumpNode(&sb, n)
	return sb.String()
}

func dumpNode(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Program:
		sb.WriteString("Program([")
		for i, s := range n.Statements {
			if i > 0 {
				sb.WriteString(", ")
			}
			dumpNode(sb, s)
		}
		sb.WriteString("])")

	case *Equivalence:
		sb.WriteString("Equivalence(")
		dumpNode(sb, n.Lhs)
		sb.WriteString(", ")
		dumpNode(sb, n.Rhs)
		sb.WriteString(")")

	case *PatternName:
		sb.WriteString("PatternName(" + strconv.Quote(n.Name.Text()) + ")")

	case *Expr:
		sb.WriteString("Expr(")
		dumpNode(sb, n.Expr)
		sb.WriteString(")")

	case *Variable:
		sb.WriteString("Variable(")
		dumpSymbol(sb, n.Symbol)
		sb.WriteString(")")

	case *Sequence:
		sb.WriteString("Sequence([")
		for i, qs := range n.Symbols {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("(")
			dumpSymbol(sb, qs)
			sb.WriteString(")")
		}
		sb.WriteString("])")

	case *Optional:
		sb.WriteString("Optional(")
		dumpNode(sb, n.Lhs)
		sb.WriteString(", ")
		dumpNode(sb, n.Rhs)
		sb.WriteString(")")

	case QuantifiedSymbol:
		sb.WriteString("(")
		dumpSymbol(sb, n)
		sb.WriteString(")")

	case *Terminal:
		sb.WriteString("Terminal(" + strconv.Quote(n.Value.Text()) + ")")

	case *NonTerminal:
		sb.WriteString("NonTerminal(" + strconv.Quote(n.Name.Text()) + ")")

	case *LineComment:
		sb.WriteString("Line(" + strconv.Quote(n.Text.Text()) + ")")

	case nil:
		sb.WriteString("nil")

	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}

func dumpSymbol(sb *strings.Builder, qs QuantifiedSymbol) {
	switch s := qs.Symbol.(type) {
	case *Terminal:
		sb.WriteString(s.Value.Text())
	case *NonTerminal:
		sb.WriteString("<" + s.Name.Text() + ">")
	default:
		sb.WriteString("nil")
	}
	sb.WriteString(", " + qs.Quantifier.String())
}
