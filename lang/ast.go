package lang

//go:generate go tool stringer --linecomment --type BinaryOp,Token --output token_string.go

import (
	"iter"
	"strconv"
	"strings"
)

// Position identifies a location in source text.
// Offset is a byte offset; Line and Column are 1-based, and Column counts
// runes.
type Position struct {
	Offset int `json:"offset" yaml:"offset"`
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// String returns the position formatted as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Node is implemented by every AST node.
type Node interface {
	// Pos returns the position of the first character of the node.
	Pos() Position
}

// Document is an ordered sequence of statements, such as one source file.
type Document struct {
	Statements []Statement
}

// Pos returns the position of the first statement, or the start of input
// for an empty document.
func (d *Document) Pos() Position {
	if len(d.Statements) == 0 {
		return Position{Line: 1, Column: 1}
	}

	return d.Statements[0].Pos()
}

// Statement is either an [*Import] or a [*FuncDef].
type Statement interface {
	Node
	statementNode()
}

// Import is an import directive: import ../../a/b.
type Import struct {
	// Up is the number of leading "../" parent directory steps.
	Up int
	// Path holds the identifiers following the parent steps, in order.
	Path []string

	At Position
}

// FuncDef is a function or constant definition: name(args) = body.
type FuncDef struct {
	Name string
	// Args is nil for constant definitions.
	Args []*ArgDef
	Body Expr

	At Position
}

// ArgDef is a single parameter in a function definition with an optional
// default value.
type ArgDef struct {
	Name    string
	Default Expr // nil when absent

	At Position
}

func (*Import) statementNode()  {}
func (*FuncDef) statementNode() {}

// Pos implements [Node].
func (n *Import) Pos() Position { return n.At }

// Pos implements [Node].
func (n *FuncDef) Pos() Position { return n.At }

// Pos implements [Node].
func (n *ArgDef) Pos() Position { return n.At }

// Alias returns the name used to qualify calls into the imported document,
// which is the last path segment.
func (n *Import) Alias() string {
	if len(n.Path) == 0 {
		return ""
	}

	return n.Path[len(n.Path)-1]
}

// String returns the file name as written in source, e.g. "../a/b".
func (n *Import) String() string {
	return strings.Repeat("../", n.Up) + strings.Join(n.Path, "/")
}

// IsConstant reports whether the definition has no argument list.
func (n *FuncDef) IsConstant() bool { return n.Args == nil }

// Expr is one of [*Number], [*Call], [*Paren], [*Neg], or [*Binary].
type Expr interface {
	Node
	exprNode()
}

// Number is a numeric literal.
type Number struct {
	Value  float64
	Lexeme string // exact source text

	At Position
}

// Call is a function call or reference: name, name(), name(1, 2),
// name(a = 1), or mod.name(...).
type Call struct {
	Name FuncName
	Args CallArgs // nil for a bare reference

	At Position
}

// Paren is a parenthesized expression.
type Paren struct {
	Inner Expr

	At Position
}

// Neg is a unary negation.
type Neg struct {
	Inner Expr

	At Position
}

// Binary is a binary arithmetic expression.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr

	At Position
}

func (*Number) exprNode() {}
func (*Call) exprNode()   {}
func (*Paren) exprNode()  {}
func (*Neg) exprNode()    {}
func (*Binary) exprNode() {}

// Pos implements [Node].
func (n *Number) Pos() Position { return n.At }

// Pos implements [Node].
func (n *Call) Pos() Position { return n.At }

// Pos implements [Node].
func (n *Paren) Pos() Position { return n.At }

// Pos implements [Node].
func (n *Neg) Pos() Position { return n.At }

// Pos implements [Node].
func (n *Binary) Pos() Position { return n.At }

// BinaryOp is an arithmetic operator.
type BinaryOp int

const (
	OpAdd BinaryOp = iota // add
	OpSub                 // sub
	OpMul                 // mul
	OpDiv                 // div
)

// Symbol returns the operator as written in source.
func (op BinaryOp) Symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// FuncName is a possibly module-qualified function name.
type FuncName struct {
	Module string // empty when unqualified
	Func   string
}

// String returns the name as written in source.
func (n FuncName) String() string {
	if n.Module == "" {
		return n.Func
	}

	return n.Module + "." + n.Func
}

// CallArgs is one of [EmptyArgs], [PositionalArgs], or [NamedArgs].
// A nil CallArgs on a [Call] means the name was written without parentheses.
type CallArgs interface {
	callArgs()
}

// EmptyArgs is an explicit empty argument list: ().
type EmptyArgs struct{}

// PositionalArgs is a list of one or more expressions: (1, 2).
type PositionalArgs []Expr

// NamedArgs is a list of one or more name/value pairs: (a = 1, b = 2).
// Names are not required to be unique.
type NamedArgs []NamedArg

// NamedArg is a single named call argument.
type NamedArg struct {
	Name  string
	Value Expr

	At Position
}

// Pos implements [Node].
func (n *NamedArg) Pos() Position { return n.At }

func (EmptyArgs) callArgs()      {}
func (PositionalArgs) callArgs() {}
func (NamedArgs) callArgs()      {}

// Imports returns an iterator over the document's import statements in
// source order.
func (d *Document) Imports() iter.Seq[*Import] {
	return func(yield func(*Import) bool) {
		for _, st := range d.Statements {
			if im, ok := st.(*Import); ok && !yield(im) {
				return
			}
		}
	}
}

// Definitions returns an iterator over the document's definitions in source
// order.
func (d *Document) Definitions() iter.Seq[*FuncDef] {
	return func(yield func(*FuncDef) bool) {
		for _, st := range d.Statements {
			if def, ok := st.(*FuncDef); ok && !yield(def) {
				return
			}
		}
	}
}

// Definition returns the first definition with the given name.
// Returns (nil, false) if no such definition exists.
func (d *Document) Definition(name string) (*FuncDef, bool) {
	for def := range d.Definitions() {
		if def.Name == name {
			return def, true
		}
	}

	return nil, false
}
