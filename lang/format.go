package lang

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format writes the document in canonical source form, one statement per
// line. Parsing the output yields a document equal to d, ignoring positions.
func (d *Document) Format(_ context.Context, w io.Writer) error {
	var buf strings.Builder

	for _, st := range d.Statements {
		writeStatement(&buf, st)
		buf.WriteByte('\n')
	}

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return ErrFormat.Wrap(err)
	}

	return nil
}

// String returns the canonical source form of d.
func (d *Document) String() string {
	var buf strings.Builder

	_ = d.Format(context.Background(), &buf)

	return buf.String()
}

// FormatJSON writes the document as JSON. A positive indent pretty-prints
// with that many spaces per level.
func (d *Document) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(d.ToMap(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(d.ToMap())
	}

	if err != nil {
		return ErrFormat.Wrap(err)
	}

	if _, err = w.Write(append(data, '\n')); err != nil {
		return ErrFormat.Wrap(err)
	}

	return nil
}

// FormatYAML writes the document as YAML. A non-positive indent selects
// flow style.
func (d *Document) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent), yaml.IndentSequence(true))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, d.ToMap(), opts...)
	if err != nil {
		return ErrFormat.Wrap(err)
	}

	if _, err = w.Write(data); err != nil {
		return ErrFormat.Wrap(err)
	}

	return nil
}

// FormatTree writes an indented outline of the document, one node per line
// with its position.
func (d *Document) FormatTree(_ context.Context, w io.Writer) error {
	var buf strings.Builder

	writeTree(&buf, d, 0)

	if _, err := io.WriteString(w, buf.String()); err != nil {
		return ErrFormat.Wrap(err)
	}

	return nil
}

// FormatExpr returns the canonical source form of e.
func FormatExpr(e Expr) string {
	var buf strings.Builder

	writeExpr(&buf, e)

	return buf.String()
}

// FormatStatement returns the canonical source form of st.
func FormatStatement(st Statement) string {
	var buf strings.Builder

	writeStatement(&buf, st)

	return buf.String()
}

func writeStatement(buf *strings.Builder, st Statement) {
	switch st := st.(type) {
	case *Import:
		buf.WriteString(keywordImport)
		buf.WriteByte(' ')
		buf.WriteString(st.String())

	case *FuncDef:
		buf.WriteString(st.Name)

		if st.Args != nil {
			buf.WriteByte('(')

			for i, arg := range st.Args {
				if i > 0 {
					buf.WriteString(", ")
				}

				buf.WriteString(arg.Name)

				if arg.Default != nil {
					buf.WriteString(" = ")
					writeExpr(buf, arg.Default)
				}
			}

			buf.WriteByte(')')
		}

		buf.WriteString(" = ")
		writeExpr(buf, st.Body)
	}
}

// writeExpr never adds parentheses; grouping comes only from Paren nodes.
func writeExpr(buf *strings.Builder, e Expr) {
	switch e := e.(type) {
	case *Number:
		buf.WriteString(e.text())

	case *Call:
		buf.WriteString(e.Name.String())
		writeCallArgs(buf, e.Args)

	case *Paren:
		buf.WriteByte('(')
		writeExpr(buf, e.Inner)
		buf.WriteByte(')')

	case *Neg:
		buf.WriteByte('-')
		writeExpr(buf, e.Inner)

	case *Binary:
		writeExpr(buf, e.Left)
		buf.WriteByte(' ')
		buf.WriteString(e.Op.Symbol())
		buf.WriteByte(' ')
		writeExpr(buf, e.Right)
	}
}

func writeCallArgs(buf *strings.Builder, args CallArgs) {
	switch args := args.(type) {
	case EmptyArgs:
		buf.WriteString("()")

	case PositionalArgs:
		buf.WriteByte('(')

		for i, arg := range args {
			if i > 0 {
				buf.WriteString(", ")
			}

			writeExpr(buf, arg)
		}

		buf.WriteByte(')')

	case NamedArgs:
		buf.WriteByte('(')

		for i, arg := range args {
			if i > 0 {
				buf.WriteString(", ")
			}

			buf.WriteString(arg.Name)
			buf.WriteString(" = ")
			writeExpr(buf, arg.Value)
		}

		buf.WriteByte(')')
	}
}

// text returns the literal as written, or a formatted value for numbers
// built without a lexeme.
func (n *Number) text() string {
	if n.Lexeme != "" {
		return n.Lexeme
	}

	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Inspect returns a compact structural rendering of n, for example
// "Binary(add, 1, Binary(mul, 2, 3))".
func Inspect(n Node) string {
	var buf strings.Builder

	writeInspect(&buf, n)

	return buf.String()
}

func writeInspect(buf *strings.Builder, n Node) {
	list := func(nodes []Node) {
		for i, c := range nodes {
			if i > 0 {
				buf.WriteString(", ")
			}

			writeInspect(buf, c)
		}
	}

	switch n := n.(type) {
	case *Document:
		buf.WriteString("Document(")
		list(children(n))
		buf.WriteByte(')')

	case *Import:
		buf.WriteString("Import(")
		buf.WriteString(strconv.Itoa(n.Up))
		buf.WriteString(", [")
		buf.WriteString(strings.Join(n.Path, " "))
		buf.WriteString("])")

	case *FuncDef:
		buf.WriteString("FuncDef(")
		buf.WriteString(n.Name)

		if n.Args != nil {
			buf.WriteString(", [")

			for i, arg := range n.Args {
				if i > 0 {
					buf.WriteString(", ")
				}

				writeInspect(buf, arg)
			}

			buf.WriteByte(']')
		}

		buf.WriteString(", ")
		writeInspect(buf, n.Body)
		buf.WriteByte(')')

	case *ArgDef:
		buf.WriteString(n.Name)

		if n.Default != nil {
			buf.WriteByte('=')
			writeInspect(buf, n.Default)
		}

	case *Number:
		buf.WriteString(n.text())

	case *Call:
		buf.WriteString("Call(")
		buf.WriteString(n.Name.String())

		switch args := n.Args.(type) {
		case EmptyArgs:
			buf.WriteString(", ()")
		case PositionalArgs:
			buf.WriteString(", [")
			list(children(n))
			buf.WriteByte(']')
		case NamedArgs:
			buf.WriteString(", {")

			for i, arg := range args {
				if i > 0 {
					buf.WriteString(", ")
				}

				writeInspect(buf, &arg)
			}

			buf.WriteByte('}')
		}

		buf.WriteByte(')')

	case *NamedArg:
		buf.WriteString(n.Name)
		buf.WriteString(": ")
		writeInspect(buf, n.Value)

	case *Paren:
		buf.WriteString("Paren(")
		writeInspect(buf, n.Inner)
		buf.WriteByte(')')

	case *Neg:
		buf.WriteString("Neg(")
		writeInspect(buf, n.Inner)
		buf.WriteByte(')')

	case *Binary:
		buf.WriteString("Binary(")
		buf.WriteString(n.Op.String())
		buf.WriteString(", ")
		writeInspect(buf, n.Left)
		buf.WriteString(", ")
		writeInspect(buf, n.Right)
		buf.WriteByte(')')
	}
}

func writeTree(buf *strings.Builder, n Node, depth int) {
	buf.WriteString(strings.Repeat("  ", depth))
	buf.WriteString(treeLabel(n))

	if _, ok := n.(*Document); !ok {
		buf.WriteString(" @")
		buf.WriteString(n.Pos().String())
	}

	buf.WriteByte('\n')

	for _, c := range children(n) {
		writeTree(buf, c, depth+1)
	}
}

func treeLabel(n Node) string {
	switch n := n.(type) {
	case *Document:
		return "Document"
	case *Import:
		return "Import " + n.String() + " as " + n.Alias()
	case *FuncDef:
		if n.IsConstant() {
			return "Const " + n.Name
		}

		return "Func " + n.Name
	case *ArgDef:
		return "Arg " + n.Name
	case *Number:
		return "Number " + n.text()
	case *Call:
		switch n.Args.(type) {
		case EmptyArgs:
			return "Call " + n.Name.String() + " ()"
		case PositionalArgs:
			return "Call " + n.Name.String() + " positional"
		case NamedArgs:
			return "Call " + n.Name.String() + " named"
		}

		return "Ref " + n.Name.String()
	case *NamedArg:
		return "Named " + n.Name
	case *Paren:
		return "Paren"
	case *Neg:
		return "Neg"
	case *Binary:
		return "Binary " + n.Op.String()
	}

	return "?"
}
