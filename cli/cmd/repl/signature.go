package repl

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ardnew/funcad/lang"
)

// functionCall describes the call whose argument list contains the cursor.
type functionCall struct {
	name     string // function name as written, possibly qualified
	argIndex int    // 0-based index of the argument under the cursor
	argName  string // name of the argument under the cursor in a named list
	inCall   bool
}

// detectFunctionCall finds the innermost unclosed call before cursor.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(max(cursor, 0), len(input))

	open, depth := -1, 0

	for i := cursor - 1; i >= 0 && open < 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i
			} else {
				depth--
			}
		}
	}

	if open < 0 {
		return functionCall{}
	}

	nameEnd := len(strings.TrimRightFunc(input[:open], unicode.IsSpace))
	nameStart := nameEnd

	for nameStart > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:nameStart])
		if r != '.' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}

		nameStart -= size
	}

	name := input[nameStart:nameEnd]
	if _, err := lang.ParseFuncName(name); err != nil {
		return functionCall{}
	}

	call := functionCall{name: name, inCall: true}

	argStart := open + 1
	depth = 0

	for i := open + 1; i < cursor; i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				call.argIndex++
				argStart = i + 1
			}
		}
	}

	if before, _, ok := strings.Cut(input[argStart:cursor], "="); ok {
		if id, err := lang.ParseIdentifier(strings.TrimSpace(before)); err == nil {
			call.argName = id
		}
	}

	return call
}

// param is one parameter of a signature as displayed.
type param struct {
	name string
	text string // name, with " = default" when the parameter has one
}

// signatureOf returns the parameters of the session definition called name.
// Qualified names refer to imported modules and are never found.
func signatureOf(s *Session, name string) ([]param, bool) {
	def, ok := s.Definition(name)
	if !ok {
		return nil, false
	}

	params := make([]param, len(def.Args))

	for i, arg := range def.Args {
		params[i] = param{name: arg.Name, text: arg.Name}
		if arg.Default != nil {
			params[i].text += " = " + lang.FormatExpr(arg.Default)
		}
	}

	return params, true
}

// renderSignatureHint renders name(params) with the parameter under the
// cursor highlighted. In a named argument list the parameter is chosen by
// name; otherwise by position.
func renderSignatureHint(name string, params []param, call functionCall) string {
	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(name))
	b.WriteString(signatureStyle.Render("("))

	for i, p := range params {
		if i > 0 {
			b.WriteString(signatureStyle.Render(", "))
		}

		current := i == call.argIndex
		if call.argName != "" {
			current = p.name == call.argName
		}

		if current {
			b.WriteString(currentParamStyle.Render(p.text))
		} else {
			b.WriteString(signatureStyle.Render(p.text))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
