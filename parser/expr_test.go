package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/ava12/eqdef"
	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/internal/test"
	"github.com/ava12/eqdef/source"
)

func start(text string) source.Cursor {
	return source.New("", text).Start()
}

type exprSample struct {
	src, dump, rest string
}

func checkExprSamples(t *testing.T, p *Parser, samples []exprSample) {
	t.Helper()
	for _, s := range samples {
		expr, next, e := p.ParseExpr(start(s.src))
		if e != nil {
			t.Fatalf("source %q: unexpected error: %s", s.src, e)
		}
		test.ExpectString(t, s.dump, ast.Dump(expr))
		test.ExpectString(t, s.rest, next.Rest())
	}
}

func checkExprErrors(t *testing.T, p *Parser, samples []string, code int) {
	t.Helper()
	for _, src := range samples {
		c := start(src)
		expr, next, e := p.ParseExpr(c)
		if e == nil {
			t.Fatalf("source %q: error expected, got %s", src, ast.Dump(expr))
		}
		test.ExpectErrorCode(t, code, e)
		test.ExpectInt(t, c.Offset(), next.Offset())
	}
}

func TestQuantifiedSymbol(t *testing.T) {
	samples := []exprSample{
		{"a ", "(a, One)", " "},
		{"asd+", "(asd, OneOrMore)", ""},
		{"asd*", "(asd, ZeroOrMore)", ""},
		{"a+*", "(a, OneOrMore)", "*"},
		{"a +", "(a, One)", " +"},
		{"ab1", "(ab, One)", "1"},
	}

	p := New(Options{})
	for _, s := range samples {
		qs, next, e := p.ParseQuantifiedSymbol(start(s.src))
		test.ExpectNoError(t, e)
		test.ExpectString(t, s.dump, ast.Dump(qs))
		test.ExpectString(t, s.rest, next.Rest())
	}
}

func TestInvalidSymbol(t *testing.T) {
	p := New(Options{})
	for _, src := range []string{"", " a", "+", "1a", "[a]"} {
		_, _, e := p.ParseQuantifiedSymbol(start(src))
		test.ExpectErrorCode(t, eqdef.InvalidSymbolError, e)
		test.ExpectErrorCode(t, eqdef.EmptyIdentifierError, errors.Unwrap(e))
	}
}

func TestSequenceExpr(t *testing.T) {
	checkExprSamples(t, New(Options{}), []exprSample{
		{"[a b c]", "Sequence([(a, One), (b, One), (c, One)])", ""},
		{"[a]", "Sequence([(a, One)])", ""},
		{"[ a ]", "Sequence([(a, One)])", ""},
		{"[\ta  \t b*\t]", "Sequence([(a, One), (b, ZeroOrMore)])", ""},
		{"[a+ b]rest", "Sequence([(a, OneOrMore), (b, One)])", "rest"},
		{"[a b] [c]", "Sequence([(a, One), (b, One)])", " [c]"},
	})
}

func TestUnterminatedSequence(t *testing.T) {
	checkExprErrors(t, New(Options{}), []string{
		"[]",
		"[ ]",
		"[",
		"[a",
		"[a b",
		"[a\nb]",
		"[a,b]",
		"[a1]",
		"[a b c ",
		"[a | b]",
	}, eqdef.UnterminatedSequenceError)
}

func TestVariableExpr(t *testing.T) {
	checkExprSamples(t, New(Options{}), []exprSample{
		{"a", "Variable(a, One)", ""},
		{"URL.", "Variable(URL, One)", "."},
		{"bit+ ", "Variable(bit, OneOrMore)", " "},
		{"x*|", "Variable(x, ZeroOrMore)", "|"},
	})
}

func TestOptionalExpr(t *testing.T) {
	checkExprSamples(t, New(Options{}), []exprSample{
		{"(a | b)", "Optional(Variable(a, One), Variable(b, One))", ""},
		{"(a|b)", "Optional(Variable(a, One), Variable(b, One))", ""},
		{"( a+ |\n\tb* )", "Optional(Variable(a, OneOrMore), Variable(b, ZeroOrMore))", ""},
		{"(a | [b c])", "Optional(Variable(a, One), Sequence([(b, One), (c, One)]))", ""},
		{"([a b] | c)", "Optional(Sequence([(a, One), (b, One)]), Variable(c, One))", ""},
		{"((a | b) | c)", "Optional(Optional(Variable(a, One), Variable(b, One)), Variable(c, One))", ""},
		{"(a | (b | (c | d)))", "Optional(Variable(a, One), Optional(Variable(b, One), Optional(Variable(c, One), Variable(d, One))))", ""},
		{"(b | a).", "Optional(Variable(b, One), Variable(a, One))", "."},
	})
}

func TestMalformedOptional(t *testing.T) {
	checkExprErrors(t, New(Options{}), []string{
		"(a)",
		"(a b)",
		"(a |",
		"(a | b",
		"(a | b c)",
		"(a || b)",
		"(| b)",
		"(a | )",
		"(a | [b)",
		"(a | b | c)",
	}, eqdef.MalformedOptionalError)
}

func TestOptionalOperandCause(t *testing.T) {
	_, _, e := New(Options{}).ParseExpr(start("(a | [b)"))
	ee := test.ExpectErrorCode(t, eqdef.MalformedOptionalError, e)
	test.ExpectErrorCode(t, eqdef.UnterminatedSequenceError, errors.Unwrap(e))
	test.ExpectInt(t, 7, ee.Offset)
	test.ExpectString(t, ")", ee.Remainder)
}

func TestNoExpression(t *testing.T) {
	checkExprErrors(t, New(Options{}), []string{"", " a", "1", "|", ")", "]", "."}, eqdef.InvalidSymbolError)
}

func TestAlternativeOrder(t *testing.T) {
	p := New(Options{})

	// lead tokens decide: no alternative may fall back to another one after consuming input
	_, next, e := p.ParseExpr(start("[a b"))
	test.ExpectErrorCode(t, eqdef.UnterminatedSequenceError, e)
	test.ExpectInt(t, 0, next.Offset())

	_, _, e = p.ParseExpr(start("(a b)"))
	test.ExpectErrorCode(t, eqdef.MalformedOptionalError, e)

	// variable is tried before optional, both failures at the same place are reported as a missing symbol
	_, _, e = p.ParseExpr(start("?"))
	ee := test.ExpectErrorCode(t, eqdef.InvalidSymbolError, e)
	test.Assert(t, strings.Contains(ee.Message, "expected '[', '(' or symbol"), "unexpected message %q", ee.Message)
}

func TestDepthLimit(t *testing.T) {
	p := New(Options{MaxDepth: 2})
	checkExprSamples(t, p, []exprSample{
		{"((a | b) | c)", "Optional(Optional(Variable(a, One), Variable(b, One)), Variable(c, One))", ""},
	})
	checkExprErrors(t, p, []string{"(((a | b) | c) | d)", "(a | (b | (c | d)))"}, eqdef.DepthLimitError)

	_, _, e := p.ParseString("", "A = a.\nB = (a | (b | (c | d))).\n")
	test.ExpectErrorCode(t, eqdef.DepthLimitError, e)
}

func TestDeepNesting(t *testing.T) {
	depth := 200
	src := strings.Repeat("(a | ", depth) + "b" + strings.Repeat(")", depth)
	expr, next, e := New(Options{}).ParseExpr(start(src))
	test.ExpectNoError(t, e)
	test.Assert(t, next.IsEof(), "EoF expected")
	test.ExpectInt(t, depth, len(ast.Terminals(expr))-1)

	_, _, e = New(Options{MaxDepth: depth - 1}).ParseExpr(start(src))
	test.ExpectErrorCode(t, eqdef.DepthLimitError, e)
}
