package lang

import (
	"strconv"
	"unicode"
)

// Identifiers start with a letter and continue with letters or ASCII digits.
// Number digits are ASCII only.

func isLetter(r rune) bool { return r >= 0 && unicode.IsLetter(r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// ParseIdentifier parses s as exactly one identifier.
func ParseIdentifier(s string) (string, error) {
	return parseAtom(s, (*parser).identifier)
}

// ParseNumber parses s as exactly one numeric literal. Unlike numbers inside
// expressions, a leading '-' is accepted as part of the literal.
func ParseNumber(s string) (*Number, error) {
	return parseAtom(s, (*parser).number)
}

// ParseFuncName parses s as exactly one, possibly qualified, function name.
func ParseFuncName(s string) (FuncName, error) {
	return parseAtom(s, (*parser).funcName)
}

// ParseFileName parses s as the file name operand of an import statement,
// without the import keyword.
func ParseFileName(s string) (*Import, error) {
	return parseAtom(s, func(p *parser) (*Import, bool) {
		at := p.mark()

		up, path, ok := p.fileName()
		if !ok {
			return nil, false
		}

		return &Import{Up: up, Path: path, At: at}, true
	})
}

func parseAtom[T any](s string, fn func(*parser) (T, bool)) (T, error) {
	p := newParser(s)

	v, ok := fn(p)
	if ok && p.eof() {
		return v, nil
	}

	if ok {
		p.fail(TokenEOF)
	}

	var zero T

	return zero, p.syntaxError()
}

func (p *parser) identifier() (string, bool) {
	start := p.pos.Offset

	if !isLetter(p.peek()) {
		return "", p.fail(TokenIdentifier)
	}

	p.advance()

	for r := p.peek(); isLetter(r) || isDigit(r); r = p.peek() {
		p.advance()
	}

	return p.src[start:p.pos.Offset], true
}

func (p *parser) number() (*Number, bool) {
	at := p.mark()

	if p.peek() == '-' {
		p.advance()
	}

	switch r := p.peek(); {
	case r == '0':
		p.advance()
	case r >= '1' && r <= '9':
		p.digits()
	default:
		p.reset(at)

		return nil, p.fail(TokenNumber)
	}

	if p.peek() == '.' {
		p.advance()
		p.digits()
	}

	if r := p.peek(); r == 'e' || r == 'E' {
		save := p.mark()

		p.advance()

		if r := p.peek(); r == '+' || r == '-' {
			p.advance()
		}

		if isDigit(p.peek()) {
			p.digits()
		} else {
			p.reset(save)
		}
	}

	lexeme := p.src[at.Offset:p.pos.Offset]

	// Out of range literals keep the ±Inf that ParseFloat reports.
	value, _ := strconv.ParseFloat(lexeme, 64)

	return &Number{Value: value, Lexeme: lexeme, At: at}, true
}

func (p *parser) digits() {
	for isDigit(p.peek()) {
		p.advance()
	}
}

func (p *parser) funcName() (FuncName, bool) {
	first, ok := p.identifier()
	if !ok {
		return FuncName{}, false
	}

	save := p.mark()

	if !p.literal(".", TokenDot) {
		return FuncName{Func: first}, true
	}

	second, ok := p.identifier()
	if !ok {
		p.reset(save)

		return FuncName{Func: first}, true
	}

	return FuncName{Module: first, Func: second}, true
}

func (p *parser) fileName() (int, []string, bool) {
	at := p.mark()
	up := 0

	for p.literal("../", TokenParent) {
		up++
	}

	first, ok := p.identifier()
	if !ok {
		p.reset(at)

		return 0, nil, false
	}

	path := []string{first}

	for {
		save := p.mark()

		if !p.literal("/", TokenSlash) {
			break
		}

		seg, ok := p.identifier()
		if !ok {
			p.reset(save)

			break
		}

		path = append(path, seg)
	}

	return up, path, true
}
