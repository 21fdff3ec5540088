package ast_test

import (
	"strings"
	"testing"

	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/internal/test"
	"github.com/ava12/eqdef/parser"
	"github.com/ava12/eqdef/source"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, _, e := parser.ParseString("", src)
	test.ExpectNoError(t, e)
	return prog
}

func TestQuantifier(t *testing.T) {
	samples := []struct {
		q            ast.Quantifier
		name, suffix string
	}{
		{ast.One, "One", ""},
		{ast.OneOrMore, "OneOrMore", "+"},
		{ast.ZeroOrMore, "ZeroOrMore", "*"},
		{ast.Quantifier(10), "Unknown", ""},
	}

	for _, s := range samples {
		test.ExpectString(t, s.name, s.q.String())
		test.ExpectString(t, s.suffix, s.q.Suffix())
	}
}

func TestDump(t *testing.T) {
	src := source.New("", "abc x")
	abc := src.Span(0, 3)
	x := src.Span(4, 5)

	samples := []struct {
		node     ast.Node
		expected string
	}{
		{nil, "nil"},
		{&ast.Terminal{Value: abc}, `Terminal("abc")`},
		{&ast.NonTerminal{Name: abc}, `NonTerminal("abc")`},
		{ast.QuantifiedSymbol{Symbol: &ast.Terminal{Value: x}, Quantifier: ast.OneOrMore}, "(x, OneOrMore)"},
		{ast.QuantifiedSymbol{Symbol: &ast.NonTerminal{Name: x}}, "(<x>, One)"},
		{&ast.Variable{Symbol: ast.QuantifiedSymbol{Symbol: &ast.NonTerminal{Name: abc}, Quantifier: ast.ZeroOrMore}}, "Variable(<abc>, ZeroOrMore)"},
		{&ast.PatternName{Name: abc}, `PatternName("abc")`},
		{&ast.LineComment{Marker: abc, Text: x}, `Line("x")`},
	}

	for _, s := range samples {
		test.ExpectString(t, s.expected, ast.Dump(s.node))
	}
}

func TestDumpProgram(t *testing.T) {
	prog := parse(t, "A = ([a b+] | c*).\nB = d.")
	expected := `Program([` +
		`Equivalence(PatternName("A"), Expr(Optional(Sequence([(a, One), (b, OneOrMore)]), Variable(c, ZeroOrMore)))), ` +
		`Equivalence(PatternName("B"), Expr(Variable(d, One)))])`
	test.ExpectString(t, expected, ast.Dump(prog))
}

type visited struct {
	names []string
}

func (v *visited) visitor(limit int) ast.NodeVisitor {
	return func(n ast.Node, level int) bool {
		switch n := n.(type) {
		case *ast.Terminal:
			v.names = append(v.names, n.Value.Text())
		case *ast.PatternName:
			v.names = append(v.names, "="+n.Name.Text())
		}
		return limit < 0 || level < limit
	}
}

func TestWalk(t *testing.T) {
	prog := parse(t, "A = ([a b] | c).\nB = d.")
	samples := []struct {
		mode     ast.WalkMode
		limit    int
		expected string
	}{
		{ast.WalkLtr, -1, "=A a b c =B d"},
		{ast.WalkRtl, -1, "d =B c b a =A"},
		{ast.WalkLtr, 2, "=A =B"},
		{ast.WalkLtr, 0, ""},
	}

	for _, s := range samples {
		v := &visited{}
		ast.Walk(prog, s.mode, v.visitor(s.limit))
		test.ExpectString(t, s.expected, strings.Join(v.names, " "))
	}
}

func TestWalkNil(t *testing.T) {
	called := false
	ast.Walk(nil, ast.WalkLtr, func(ast.Node, int) bool {
		called = true
		return true
	})
	test.Assert(t, !called, "visitor must not be called for nil node")
}

func TestChildren(t *testing.T) {
	prog := parse(t, "A = [a b c].")
	eq := prog.Statements[0].(*ast.Equivalence)
	test.ExpectInt(t, 1, len(ast.Children(prog)))
	test.ExpectInt(t, 2, len(ast.Children(eq)))

	seq := eq.Rhs.(*ast.Expr).Expr
	children := ast.Children(seq)
	test.ExpectInt(t, 3, len(children))
	test.ExpectString(t, "(b, One)", ast.Dump(children[1]))
	test.ExpectInt(t, 0, len(ast.Children(ast.Terminals(prog)[0])))
}

func TestTerminalsAndDepth(t *testing.T) {
	samples := []struct {
		src       string
		terminals string
		depth     int
	}{
		{"A = a.", "a", 5},
		{"A = [a b].", "a b", 5},
		{"A = (a | [b c]).", "a b c", 6},
		{"A = ((a | b) | c).\nB = d.", "a b c d", 7},
	}

	for _, s := range samples {
		prog := parse(t, s.src)
		var names []string
		for _, term := range ast.Terminals(prog) {
			names = append(names, term.Value.Text())
		}
		test.ExpectString(t, s.terminals, strings.Join(names, " "))
		test.ExpectInt(t, s.depth, ast.Depth(prog))
	}
}

func TestPos(t *testing.T) {
	prog := parse(t, "A = (a | b).")
	test.ExpectInt(t, 0, prog.Pos().Start())

	opt := prog.Statements[0].(*ast.Equivalence).Rhs.(*ast.Expr).Expr.(*ast.Optional)
	test.ExpectInt(t, 4, opt.Pos().Start())
	test.ExpectInt(t, 5, opt.Lhs.Pos().Start())
	test.ExpectInt(t, 9, opt.Rhs.Pos().Start())
	test.ExpectInt(t, 0, (&ast.Program{}).Pos().Len())
}
