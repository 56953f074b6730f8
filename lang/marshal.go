package lang

import (
	"encoding/json"
	"math"
)

// MarshalJSON implements json.Marshaler for Document.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ToMap())
}

// ToMap converts the document to nested maps and slices suitable for generic
// encoders. Every node map carries a "type" key and its "pos" as
// "line:column".
func (d *Document) ToMap() map[string]any {
	statements := make([]any, len(d.Statements))
	for i, st := range d.Statements {
		statements[i] = statementMap(st)
	}

	return map[string]any{"statements": statements}
}

func statementMap(st Statement) map[string]any {
	switch st := st.(type) {
	case *Import:
		return map[string]any{
			"type":  "import",
			"pos":   st.At.String(),
			"up":    st.Up,
			"path":  st.Path,
			"alias": st.Alias(),
		}

	case *FuncDef:
		m := map[string]any{
			"type": "def",
			"pos":  st.At.String(),
			"name": st.Name,
			"body": ExprToMap(st.Body),
		}

		if st.Args != nil {
			args := make([]any, len(st.Args))
			for i, arg := range st.Args {
				a := map[string]any{"name": arg.Name, "pos": arg.At.String()}
				if arg.Default != nil {
					a["default"] = ExprToMap(arg.Default)
				}

				args[i] = a
			}

			m["args"] = args
		}

		return m
	}

	return nil
}

// ExprToMap converts an expression to nested maps in the same shape used by
// [Document.ToMap].
func ExprToMap(e Expr) map[string]any {
	switch e := e.(type) {
	case *Number:
		m := map[string]any{
			"type":   "number",
			"pos":    e.At.String(),
			"lexeme": e.text(),
		}

		// JSON has no representation for infinities.
		if !math.IsInf(e.Value, 0) && !math.IsNaN(e.Value) {
			m["value"] = e.Value
		}

		return m

	case *Call:
		m := map[string]any{
			"type": "call",
			"pos":  e.At.String(),
			"func": e.Name.Func,
		}

		if e.Name.Module != "" {
			m["module"] = e.Name.Module
		}

		switch args := e.Args.(type) {
		case EmptyArgs:
			m["form"] = "empty"

		case PositionalArgs:
			values := make([]any, len(args))
			for i, arg := range args {
				values[i] = ExprToMap(arg)
			}

			m["form"] = "positional"
			m["args"] = values

		case NamedArgs:
			values := make([]any, len(args))
			for i, arg := range args {
				values[i] = map[string]any{
					"name":  arg.Name,
					"pos":   arg.At.String(),
					"value": ExprToMap(arg.Value),
				}
			}

			m["form"] = "named"
			m["args"] = values

		default:
			m["form"] = "ref"
		}

		return m

	case *Paren:
		return map[string]any{
			"type":  "paren",
			"pos":   e.At.String(),
			"inner": ExprToMap(e.Inner),
		}

	case *Neg:
		return map[string]any{
			"type":  "neg",
			"pos":   e.At.String(),
			"inner": ExprToMap(e.Inner),
		}

	case *Binary:
		return map[string]any{
			"type":  "binary",
			"pos":   e.At.String(),
			"op":    e.Op.String(),
			"left":  ExprToMap(e.Left),
			"right": ExprToMap(e.Right),
		}
	}

	return nil
}
