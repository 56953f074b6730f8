package lang

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/funcad/log"
)

func TestParseString_Statements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Statement
	}{
		{
			name:  "empty",
			input: "",
			want:  []Statement{},
		},
		{
			name:  "whitespace only",
			input: " \n\t\r\n",
			want:  []Statement{},
		},
		{
			name:  "import with parents",
			input: "import ../../a/b",
			want:  []Statement{&Import{Up: 2, Path: []string{"a", "b"}}},
		},
		{
			name:  "import without space before parent",
			input: "import../a",
			want:  []Statement{&Import{Up: 1, Path: []string{"a"}}},
		},
		{
			name:  "constant",
			input: "x = 1",
			want:  []Statement{&FuncDef{Name: "x", Body: num("1")}},
		},
		{
			name:  "function",
			input: "f(a, b) = a + b",
			want: []Statement{&FuncDef{
				Name: "f",
				Args: []*ArgDef{{Name: "a"}, {Name: "b"}},
				Body: bin(OpAdd, ref("a"), ref("b")),
			}},
		},
		{
			name:  "function with defaults",
			input: "f(a = 1, b = -2) = a * b",
			want: []Statement{&FuncDef{
				Name: "f",
				Args: []*ArgDef{
					{Name: "a", Default: num("1")},
					{Name: "b", Default: neg(num("2"))},
				},
				Body: bin(OpMul, ref("a"), ref("b")),
			}},
		},
		{
			name:  "import as definition name",
			input: "import = 1",
			want:  []Statement{&FuncDef{Name: "import", Body: num("1")}},
		},
		{
			name:  "import as function name",
			input: "import(x) = x",
			want: []Statement{&FuncDef{
				Name: "import",
				Args: []*ArgDef{{Name: "x"}},
				Body: ref("x"),
			}},
		},
		{
			name:  "keyword prefix",
			input: "importa = 1",
			want:  []Statement{&FuncDef{Name: "importa", Body: num("1")}},
		},
		{
			name:  "keyword followed by parent directory",
			input: "import../lib",
			want:  []Statement{&Import{Up: 1, Path: []string{"lib"}}},
		},
		{
			name:  "statements without separators",
			input: "a = 1 b = a * 2",
			want: []Statement{
				&FuncDef{Name: "a", Body: num("1")},
				&FuncDef{Name: "b", Body: bin(OpMul, ref("a"), num("2"))},
			},
		},
		{
			name:  "interleaved",
			input: "import lib\nx = lib.f(n = 2)\nimport ../other\ny = x",
			want: []Statement{
				&Import{Path: []string{"lib"}},
				&FuncDef{Name: "x", Body: &Call{
					Name: FuncName{Module: "lib", Func: "f"},
					Args: NamedArgs{{Name: "n", Value: num("2")}},
				}},
				&Import{Up: 1, Path: []string{"other"}},
				&FuncDef{Name: "y", Body: ref("x")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mustParse(t, tt.input)
			if diff := cmp.Diff(tt.want, doc.Statements, ignorePos); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseString_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		line     int
		column   int
		expected []Token
		found    string
	}{
		{
			name:     "mixed argument definitions",
			input:    "x(a, b=2) = a + b",
			line:     1,
			column:   7,
			expected: []Token{TokenRParen, TokenComma},
			found:    "'='",
		},
		{
			name:     "missing default",
			input:    "x(a=1, b) = a + b",
			line:     1,
			column:   9,
			expected: []Token{TokenAssign},
			found:    "')'",
		},
		{
			name:     "empty argument definitions",
			input:    "f() = 1",
			line:     1,
			column:   3,
			expected: []Token{TokenIdentifier},
			found:    "')'",
		},
		{
			name:     "import followed by assignment",
			input:    "import a = 1",
			line:     1,
			column:   10,
			expected: []Token{TokenEOF, TokenIdentifier, TokenImport},
			found:    "'='",
		},
		{
			name:     "leading digit",
			input:    "1abc = 2",
			line:     1,
			column:   1,
			expected: []Token{TokenEOF, TokenIdentifier, TokenImport},
			found:    "'1'",
		},
		{
			name:     "underscore",
			input:    "a_b = 1",
			line:     1,
			column:   2,
			expected: []Token{TokenAssign, TokenLParen},
			found:    "'_'",
		},
		{
			name:     "missing operand on second line",
			input:    "a = 1\nb = *\n",
			line:     2,
			column:   5,
			expected: []Token{TokenIdentifier, TokenNumber, TokenLParen, TokenMinus},
			found:    "'*'",
		},
		{
			name:     "trailing operator",
			input:    "a = 1 +",
			line:     1,
			column:   8,
			expected: []Token{TokenIdentifier, TokenNumber, TokenLParen, TokenMinus},
			found:    "end of input",
		},
		{
			name:     "trailing comma in call",
			input:    "a = f(1, )",
			line:     1,
			column:   10,
			expected: []Token{TokenIdentifier, TokenNumber, TokenLParen, TokenMinus},
			found:    "')'",
		},
		{
			name:     "named after positional",
			input:    "a = f(1, b = 2)",
			line:     1,
			column:   12,
			expected: []Token{TokenLParen, TokenRParen, TokenComma, TokenPlus, TokenMinus, TokenStar, TokenSlash},
			found:    "'='",
		},
		{
			name:     "space inside import keyword",
			input:    "im port a/b",
			line:     1,
			column:   4,
			expected: []Token{TokenAssign, TokenLParen},
			found:    "'p'",
		},
		{
			name:     "space inside number",
			input:    "x = 1 . 5",
			line:     1,
			column:   7,
			expected: []Token{TokenEOF, TokenIdentifier, TokenImport, TokenPlus, TokenMinus, TokenStar, TokenSlash},
			found:    "'.'",
		},
		{
			name:     "space inside qualified name",
			input:    "x = m . f",
			line:     1,
			column:   7,
			expected: []Token{TokenEOF, TokenIdentifier, TokenImport, TokenLParen, TokenPlus, TokenMinus, TokenStar, TokenSlash},
			found:    "'.'",
		},
		{
			name:     "space inside parent directory",
			input:    "import .. /a",
			line:     1,
			column:   8,
			expected: []Token{TokenIdentifier, TokenParent, TokenAssign, TokenLParen},
			found:    "'.'",
		},
		{
			name:     "space after path separator",
			input:    "import a/ b",
			line:     1,
			column:   10,
			expected: []Token{TokenIdentifier},
			found:    "' '",
		},
		{
			name:     "end of input after trailing newline",
			input:    "x = (1\n",
			line:     1,
			column:   7,
			expected: []Token{TokenRParen, TokenPlus, TokenMinus, TokenStar, TokenSlash},
			found:    "end of input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := ParseString(context.Background(), tt.input)
			if doc != nil {
				t.Errorf("got a document alongside the error")
			}

			se := mustSyntaxError(t, err)
			if se.Pos.Line != tt.line || se.Pos.Column != tt.column {
				t.Errorf("position = %s, want %d:%d (%v)", se.Pos, tt.line, tt.column, err)
			}

			if !slices.Equal(se.Expected, tt.expected) {
				t.Errorf("expected = %v, want %v", se.Expected, tt.expected)
			}

			if se.Found != tt.found {
				t.Errorf("found = %s, want %s", se.Found, tt.found)
			}
		})
	}
}

func TestSyntaxError_Message(t *testing.T) {
	_, err := ParseString(context.Background(), "x(a, b=2) = a + b")

	want := `syntax error at line 1, column 7: expected ")" or ",", found '='` + "\n" +
		"  1 | x(a, b=2) = a + b\n" +
		"            ^"

	if err.Error() != want {
		t.Errorf("got:\n%s\nwant:\n%s", err.Error(), want)
	}
}

func TestSyntaxError_Snippet(t *testing.T) {
	_, err := ParseString(context.Background(), "a = 1\nb = *\n")

	se := mustSyntaxError(t, err)

	want := "  2 | b = *\n          ^"
	if got := se.Snippet(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSyntaxError_SnippetAtEnd(t *testing.T) {
	_, err := ParseString(context.Background(), "x = (1\n\n")

	se := mustSyntaxError(t, err)
	if se.Pos.Offset != 6 {
		t.Errorf("offset = %d, want 6", se.Pos.Offset)
	}

	want := "  1 | x = (1\n" + strings.Repeat(" ", 12) + "^"
	if got := se.Snippet(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseString_Positions(t *testing.T) {
	doc := mustParse(t, "import a\n\nf(x = 1) =\n  x")

	im := doc.Statements[0].(*Import)
	def := doc.Statements[1].(*FuncDef)

	checks := []struct {
		name string
		got  Position
		want Position
	}{
		{"import", im.Pos(), Position{Offset: 0, Line: 1, Column: 1}},
		{"def", def.Pos(), Position{Offset: 10, Line: 3, Column: 1}},
		{"arg", def.Args[0].Pos(), Position{Offset: 12, Line: 3, Column: 3}},
		{"default", def.Args[0].Default.Pos(), Position{Offset: 16, Line: 3, Column: 7}},
		{"body", def.Body.Pos(), Position{Offset: 23, Line: 4, Column: 3}},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s position = %+v, want %+v", c.name, c.got, c.want)
		}
	}
}

func TestDocument_Accessors(t *testing.T) {
	doc := mustParse(t, "import ../../a/b\nk = 1\nimport c\nf(x) = x\nk = 2")

	var aliases []string
	for im := range doc.Imports() {
		aliases = append(aliases, im.Alias())
	}

	if !slices.Equal(aliases, []string{"b", "c"}) {
		t.Errorf("aliases = %v", aliases)
	}

	var names []string
	for def := range doc.Definitions() {
		names = append(names, def.Name)
	}

	if !slices.Equal(names, []string{"k", "f", "k"}) {
		t.Errorf("definitions = %v", names)
	}

	k, ok := doc.Definition("k")
	if !ok || !k.IsConstant() || FormatExpr(k.Body) != "1" {
		t.Errorf("Definition(k) = %v, %v", k, ok)
	}

	f, ok := doc.Definition("f")
	if !ok || f.IsConstant() {
		t.Errorf("Definition(f) = %v, %v", f, ok)
	}

	if _, ok := doc.Definition("missing"); ok {
		t.Error("Definition(missing) found a definition")
	}

	first := doc.Statements[0].(*Import)
	if first.String() != "../../a/b" {
		t.Errorf("Import.String() = %q", first.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(context.Background(), strings.NewReader("x = 1\ny = x"))
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Statements) != 2 {
		t.Errorf("got %d statements, want 2", len(doc.Statements))
	}

	_, err = ParseReader(context.Background(), failingReader{})
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("error = %v, want ErrReadInput", err)
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error = %v does not wrap the read error", err)
	}

	if errors.Is(err, ErrSyntax) {
		t.Error("read failure reported as a syntax error")
	}
}

func TestParseString_WithLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON))

	ctx := context.Background()

	if _, err := ParseString(ctx, "a = 1\nb = 2", WithLogger(logger)); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{`"msg":"parse start"`, `"msg":"parse complete"`, `"statement_count":2`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}

	buf.Reset()

	if _, err := ParseString(ctx, "a = ", WithLogger(logger)); err == nil {
		t.Fatal("expected an error")
	}

	if out := buf.String(); !strings.Contains(out, `"msg":"parse failed"`) || !strings.Contains(out, `"line":1`) {
		t.Errorf("failure not logged:\n%s", out)
	}
}

func TestParseString_Concurrent(t *testing.T) {
	const src = "import ../lib\nf(a, b) = a * (b + 1) - lib.g(x = -a)\nc = f(1, 2)"

	want := mustParse(t, src)

	var wg sync.WaitGroup

	for range 16 {
		wg.Go(func() {
			got, err := ParseString(context.Background(), src)
			if err != nil {
				t.Error(err)

				return
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("concurrent parse differs:\n%s", diff)
			}
		})
	}

	wg.Wait()
}
