package lang

// Walk traverses the tree rooted at n depth-first in source order. fn is
// called for each node before its children; returning false skips the
// children.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for _, child := range children(n) {
		Walk(child, fn)
	}
}

func children(n Node) []Node {
	switch n := n.(type) {
	case *Document:
		out := make([]Node, len(n.Statements))
		for i, st := range n.Statements {
			out[i] = st
		}

		return out

	case *FuncDef:
		out := make([]Node, 0, len(n.Args)+1)
		for _, arg := range n.Args {
			out = append(out, arg)
		}

		return append(out, n.Body)

	case *ArgDef:
		if n.Default != nil {
			return []Node{n.Default}
		}

	case *Call:
		switch args := n.Args.(type) {
		case PositionalArgs:
			out := make([]Node, len(args))
			for i, arg := range args {
				out[i] = arg
			}

			return out

		case NamedArgs:
			out := make([]Node, len(args))
			for i := range args {
				out[i] = &args[i]
			}

			return out
		}

	case *NamedArg:
		return []Node{n.Value}

	case *Paren:
		return []Node{n.Inner}

	case *Neg:
		return []Node{n.Inner}

	case *Binary:
		return []Node{n.Left, n.Right}
	}

	return nil
}
