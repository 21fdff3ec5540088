package parser

import (
	"testing"

	"github.com/ava12/eqdef"
	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/internal/test"
)

func TestStatement(t *testing.T) {
	samples := []exprSample{
		{"URI = [a b c].", uriStatement, ""},
		{"Bit = (a | b).x", `Equivalence(PatternName("Bit"), Expr(Optional(Variable(a, One), Variable(b, One))))`, "x"},
		{"URI = URL.", `Equivalence(PatternName("URI"), Expr(Variable(URL, One)))`, ""},
		{"A=a.", `Equivalence(PatternName("A"), Expr(Variable(a, One)))`, ""},
		{"A\n=\n\ta .\n", `Equivalence(PatternName("A"), Expr(Variable(a, One)))`, "\n"},
		{"A = a*\t. B = b.", `Equivalence(PatternName("A"), Expr(Variable(a, ZeroOrMore)))`, " B = b."},
	}

	p := New(Options{})
	for _, s := range samples {
		st, next, e := p.ParseStatement(start(s.src))
		if e != nil {
			t.Fatalf("source %q: unexpected error: %s", s.src, e)
		}
		test.ExpectString(t, s.dump, ast.Dump(st))
		test.ExpectString(t, s.rest, next.Rest())
	}
}

func checkStatementErrors(t *testing.T, samples []string, code int) {
	t.Helper()
	p := New(Options{})
	for _, src := range samples {
		c := start(src)
		st, next, e := p.ParseStatement(c)
		if e != nil {
			test.ExpectErrorCode(t, code, e)
			test.ExpectInt(t, c.Offset(), next.Offset())
			continue
		}
		t.Fatalf("source %q: error expected, got %s", src, ast.Dump(st))
	}
}

func TestMalformedStatement(t *testing.T) {
	checkStatementErrors(t, []string{
		"",
		"= a.",
		" A = a.",
		"A a.",
		"A1 = a.",
		"A = a",
		"A = a\n.",
		"A = a;",
		"A = a b.",
		"// A = a.",
	}, eqdef.MalformedStatementError)
}

func TestStatementExprErrors(t *testing.T) {
	checkStatementErrors(t, []string{"A = [a.", "A = [].", "A = [a\n]."}, eqdef.UnterminatedSequenceError)
	checkStatementErrors(t, []string{"A = (a).", "A = (a | b."}, eqdef.MalformedOptionalError)
	checkStatementErrors(t, []string{"A = .", "A = 1.", "A == a."}, eqdef.InvalidSymbolError)
}

func TestStatementErrorPosition(t *testing.T) {
	_, _, e := New(Options{}).ParseStatement(start("A = a b."))
	ee := test.ExpectErrorCode(t, eqdef.MalformedStatementError, e)
	test.ExpectInt(t, 6, ee.Offset)
	test.ExpectString(t, "b.", ee.Remainder)
	test.ExpectInt(t, 1, ee.Line)
	test.ExpectInt(t, 7, ee.Col)
}

func TestComment(t *testing.T) {
	cm, next, e := comment(start("  // x\n\n A"))
	test.ExpectNoError(t, e)
	lc, is := cm.(*ast.LineComment)
	test.Assert(t, is, "line comment expected, got %T", cm)
	test.ExpectString(t, " x", lc.Text.Text())
	test.ExpectString(t, "A", next.Rest())

	_, next, e = comment(start("A = a."))
	test.Assert(t, isLead(e), "lead error expected, got %v", e)
	test.ExpectErrorCode(t, eqdef.MalformedStatementError, e)
	test.ExpectInt(t, 0, next.Offset())
}
