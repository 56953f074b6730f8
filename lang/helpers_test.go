package lang

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ignorePos compares trees structurally.
var ignorePos = cmpopts.IgnoreTypes(Position{})

func num(lexeme string) *Number {
	v, _ := strconv.ParseFloat(lexeme, 64)

	return &Number{Value: v, Lexeme: lexeme}
}

func ref(name string) *Call { return &Call{Name: FuncName{Func: name}} }

func call(name string, args CallArgs) *Call {
	return &Call{Name: FuncName{Func: name}, Args: args}
}

func bin(op BinaryOp, l, r Expr) *Binary { return &Binary{Op: op, Left: l, Right: r} }

func neg(e Expr) *Neg { return &Neg{Inner: e} }

func paren(e Expr) *Paren { return &Paren{Inner: e} }

func mustParse(t testing.TB, src string) *Document {
	t.Helper()

	doc, err := ParseString(context.Background(), src)
	if err != nil {
		t.Fatalf("ParseString(%q): %v", src, err)
	}

	return doc
}

func mustSyntaxError(t testing.TB, err error) *SyntaxError {
	t.Helper()

	if err == nil {
		t.Fatal("expected a syntax error, got nil")
	}

	if !errors.Is(err, ErrSyntax) {
		t.Errorf("errors.Is(%v, ErrSyntax) = false", err)
	}

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error %T is not a *SyntaxError", err)
	}

	return se
}

func diffExpr(want, got Expr) string { return cmp.Diff(want, got, ignorePos) }
