package lang

import (
	"context"
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// FuzzParseString checks that the parser never panics, that errors point
// inside the input, and that every accepted document survives a canonical
// format round trip.
func FuzzParseString(f *testing.F) {
	f.Add("")
	f.Add("x = 1")
	f.Add("import ../../a/b")
	f.Add("f(a, b) = a + b * -c")
	f.Add("f(a = 1, b = 2) = m.g(x = a) / (b - 1)")
	f.Add("x(a, b=2) = a + b")
	f.Add("import = import(import = 1)")
	f.Add("a = 1e\nb = 2.")
	f.Add("a = f(1,,2)")
	f.Add("a = --(((1)))")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		ctx := context.Background()

		doc, err := ParseString(ctx, input)
		if err != nil {
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("error %T is not a *SyntaxError", err)
			}

			if se.Pos.Offset < 0 || se.Pos.Offset > len(input) {
				t.Fatalf("error offset %d outside input of length %d", se.Pos.Offset, len(input))
			}

			if len(se.Expected) == 0 {
				t.Fatalf("error without expectations: %v", err)
			}

			return
		}

		formatted := doc.String()

		again, err := ParseString(ctx, formatted)
		if err != nil {
			t.Fatalf("canonical output does not parse: %v\ninput: %q\nformatted: %q", err, input, formatted)
		}

		if diff := cmp.Diff(doc, again, ignorePos); diff != "" {
			t.Fatalf("round trip changed the tree:\n%s", diff)
		}
	})
}

// FuzzParseExpr checks the same properties for single expressions.
func FuzzParseExpr(f *testing.F) {
	f.Add("1+2*3")
	f.Add("(1+2)*3")
	f.Add("--5")
	f.Add("f(a=1,2)")
	f.Add("m.f()")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		e, err := ParseExpr(context.Background(), input)
		if err != nil {
			return
		}

		again, err := ParseExpr(context.Background(), FormatExpr(e))
		if err != nil {
			t.Fatalf("canonical output does not parse: %v", err)
		}

		if diff := diffExpr(e, again); diff != "" {
			t.Fatalf("round trip changed the tree:\n%s", diff)
		}
	})
}
