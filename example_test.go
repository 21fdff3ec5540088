package eqdef_test

import (
	"errors"
	"fmt"

	"github.com/ava12/eqdef"
	"github.com/ava12/eqdef/ast"
	"github.com/ava12/eqdef/parser"
)

func Example() {
	input := `// digits
Bits = bit+.
URI = [scheme host path*].
Flag = (on | [off now]).
trailing text`

	program, rest, e := parser.New(parser.Options{}).ParseString("example", input)
	if e != nil {
		fmt.Println(e)
		return
	}

	for _, s := range program.Statements {
		eq := s.(*ast.Equivalence)
		fmt.Print(eq.Lhs.Pos().Text(), ":")
		for _, t := range ast.Terminals(eq) {
			fmt.Print(" ", t.Value.Text())
		}
		fmt.Println()
	}
	fmt.Printf("rest: %q\n", rest)

	// Output:
	// Bits: bit
	// URI: scheme host path
	// Flag: on off now
	// rest: "trailing text"
}

func ExampleError() {
	_, _, e := parser.ParseString("example", "Flag = (on | off.")

	var pe *eqdef.Error
	if errors.As(e, &pe) {
		fmt.Println(pe.Kind())
	}
	if errors.As(errors.Unwrap(e), &pe) {
		fmt.Println(pe.Kind(), pe.Line, pe.Col)
		fmt.Println(pe.Error())
	}

	// Output:
	// EmptyProgram
	// MalformedOptional 1 17
	// ")" expected in example at line 1 col 17
}
