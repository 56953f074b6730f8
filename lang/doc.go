// Package lang parses funcad source text into an abstract syntax tree.
//
// A document is a sequence of import statements and function or constant
// definitions. Definition bodies are arithmetic expressions over numbers and
// function calls.
//
// # Grammar
//
// Informal EBNF. Whitespace may appear between tokens but not inside
// identifiers, numbers, function names, or file names.
//
//	Document   → Statement* EOF
//	Statement  → Import | FuncDef
//	Import     → "import" FileName
//	FileName   → "../"* Identifier ("/" Identifier)*
//	FuncDef    → Identifier ("(" ArgDefs ")")? "=" Expr
//	ArgDefs    → Identifier ("," Identifier)*
//	           | Identifier "=" Expr ("," Identifier "=" Expr)*
//	Expr       → Operand (BinOp Operand)*
//	Operand    → "-"* Unit
//	Unit       → Number | "(" Expr ")" | FuncName CallArgs?
//	CallArgs   → "(" ")"
//	           | "(" Identifier "=" Expr ("," Identifier "=" Expr)* ")"
//	           | "(" Expr ("," Expr)* ")"
//	FuncName   → Identifier ("." Identifier)?
//	BinOp      → "+" | "-" | "*" | "/"
//	Identifier → Letter (Letter | Digit)*
//	Number     → "-"? ("0" | [1-9] Digit*) ("." Digit*)? ([eE] [+-]? Digit+)?
//
// Multiplication and division bind tighter than addition and subtraction; all
// four are left associative. Negation applies to the unit that follows it.
//
// "import" is only a keyword when it is followed by a file name, so it may
// also be used as a definition name. The keyword must also end at a word
// boundary: a letter or digit directly after it makes it part of a longer
// identifier, so "importa = 1" defines importa and "importa/b" is not an
// import. Any other character, including "../" or whitespace, ends it.
//
// # Example
//
//	import ../shapes/circle
//
//	tau = 2 * pi
//	area(r) = pi * r * r
//	ring(outer = 2, inner = 1) = area(outer) - area(inner)
//	unit = circle.area(r = 1)
//
// # Errors
//
// A failed parse returns a [*SyntaxError] describing the farthest position
// the parser reached and every token kind that would have been accepted
// there. A failure at end of input is reported just past the last token,
// not after trailing whitespace. There is no error recovery and no partial
// tree.
package lang
