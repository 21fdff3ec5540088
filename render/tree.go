package render

import (
	"errors"
	"fmt"

	"github.com/ava12/eqdef"
	"github.com/ava12/eqdef/ast"
)

// Result is a serializable parse result.
type Result struct {
	Status  string     `json:"status" yaml:"status"`
	Source  string     `json:"source,omitempty" yaml:"source,omitempty"`
	Rest    string     `json:"rest" yaml:"rest"`
	Program *Node      `json:"program,omitempty" yaml:"program,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty" yaml:"error,omitempty"`
}

const (
	StatusDone  = "done"
	StatusError = "error"
)

// Node is a kind-tagged syntax tree node.
type Node struct {
	Kind       string  `json:"kind" yaml:"kind"`
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Value      string  `json:"value,omitempty" yaml:"value,omitempty"`
	Quantifier string  `json:"quantifier,omitempty" yaml:"quantifier,omitempty"`
	Line       int     `json:"line" yaml:"line"`
	Col        int     `json:"col" yaml:"col"`
	Children   []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// ErrorInfo describes an error and its causes.
type ErrorInfo struct {
	Kind    string     `json:"kind" yaml:"kind"`
	Message string     `json:"message" yaml:"message"`
	Line    int        `json:"line,omitempty" yaml:"line,omitempty"`
	Col     int        `json:"col,omitempty" yaml:"col,omitempty"`
	Cause   *ErrorInfo `json:"cause,omitempty" yaml:"cause,omitempty"`
}

// NewResult builds serializable result of parsing named source.
// Program is ignored if e is not nil.
func NewResult(name string, prog *ast.Program, rest string, e error) *Result {
	if e != nil {
		return &Result{Status: StatusError, Source: name, Rest: rest, Error: NewErrorInfo(e)}
	}
	return &Result{Status: StatusDone, Source: name, Rest: rest, Program: Tree(prog)}
}

// NewErrorInfo converts an error chain, only *eqdef.Error causes are followed.
func NewErrorInfo(e error) *ErrorInfo {
	if e == nil {
		return nil
	}

	var ee *eqdef.Error
	if !errors.As(e, &ee) {
		return &ErrorInfo{Kind: "Unknown", Message: e.Error()}
	}

	return &ErrorInfo{
		Kind:    ee.Kind(),
		Message: ee.Message,
		Line:    ee.Line,
		Col:     ee.Col,
		Cause:   NewErrorInfo(ee.Cause),
	}
}

// Tree converts syntax tree to kind-tagged nodes.
// Pattern names and expression wrappers are folded into their statements.
func Tree(n ast.Node) *Node {
	switch n := n.(type) {
	case nil:
		return nil

	case *ast.Program:
		res := newNode("Program", n)
		for _, s := range n.Statements {
			res.Children = append(res.Children, Tree(s))
		}
		return res

	case *ast.Equivalence:
		res := newNode("Equivalence", n)
		res.Name = n.Lhs.Pos().Text()
		if rhs, is := n.Rhs.(*ast.Expr); is {
			res.Children = []*Node{Tree(rhs.Expr)}
		} else {
			res.Children = []*Node{Tree(n.Rhs)}
		}
		return res

	case *ast.PatternName:
		res := newNode("PatternName", n)
		res.Name = n.Name.Text()
		return res

	case *ast.Expr:
		return Tree(n.Expr)

	case *ast.Variable:
		res := newNode("Variable", n)
		res.Children = []*Node{Tree(n.Symbol)}
		return res

	case *ast.Sequence:
		res := newNode("Sequence", n)
		for _, qs := range n.Symbols {
			res.Children = append(res.Children, Tree(qs))
		}
		return res

	case *ast.Optional:
		res := newNode("Optional", n)
		res.Children = []*Node{Tree(n.Lhs), Tree(n.Rhs)}
		return res

	case ast.QuantifiedSymbol:
		res := Tree(n.Symbol)
		if res != nil {
			res.Quantifier = n.Quantifier.String()
		}
		return res

	case *ast.Terminal:
		res := newNode("Terminal", n)
		res.Value = n.Value.Text()
		return res

	case *ast.NonTerminal:
		res := newNode("NonTerminal", n)
		res.Name = n.Name.Text()
		return res

	case *ast.LineComment:
		res := newNode("LineComment", n)
		res.Value = n.Text.Text()
		return res

	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}

func newNode(kind string, n ast.Node) *Node {
	pos := n.Pos()
	return &Node{Kind: kind, Line: pos.Line(), Col: pos.Col()}
}
