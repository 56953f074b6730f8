package lang

type assoc int

const (
	assocLeft assoc = iota
	assocRight
)

// opTable gives the binding power and associativity of each binary operator.
// Higher precedence binds tighter.
var opTable = [...]struct {
	prec  int
	assoc assoc
}{
	OpAdd: {prec: 1, assoc: assocLeft},
	OpSub: {prec: 1, assoc: assocLeft},
	OpMul: {prec: 2, assoc: assocLeft},
	OpDiv: {prec: 2, assoc: assocLeft},
}

// expression parses: neg* unit (binop neg* unit)*
//
// The operands and operators are first collected into flat lists and then
// combined by precedence climbing.
func (p *parser) expression() (Expr, bool) {
	first, ok := p.operand()
	if !ok {
		return nil, false
	}

	c := &climber{operands: []Expr{first}}

	for {
		save := p.mark()

		op, ok := p.binaryOp()
		if !ok {
			p.reset(save)

			break
		}

		next, ok := p.operand()
		if !ok {
			p.reset(save)

			break
		}

		c.ops = append(c.ops, op)
		c.operands = append(c.operands, next)
	}

	return c.climb(1), true
}

// operand parses neg* unit and wraps the unit in one Neg per '-'.
func (p *parser) operand() (Expr, bool) {
	at := p.mark()

	var negs []Position

	for {
		p.skipSpace()

		pos := p.mark()
		if !p.literal("-", TokenMinus) {
			break
		}

		negs = append(negs, pos)
	}

	unit, ok := p.unit()
	if !ok {
		p.reset(at)

		return nil, false
	}

	for i := len(negs) - 1; i >= 0; i-- {
		unit = &Neg{Inner: unit, At: negs[i]}
	}

	return unit, true
}

// unit parses: number | "(" expression ")" | funcname callargs?
func (p *parser) unit() (Expr, bool) {
	p.skipSpace()

	if n, ok := p.number(); ok {
		return n, true
	}

	if e, ok := p.paren(); ok {
		return e, true
	}

	return p.call()
}

func (p *parser) paren() (Expr, bool) {
	at := p.mark()

	if !p.literal("(", TokenLParen) {
		return nil, false
	}

	inner, ok := p.expression()
	if !ok || !p.token(")", TokenRParen) {
		p.reset(at)

		return nil, false
	}

	return &Paren{Inner: inner, At: at}, true
}

func (p *parser) call() (Expr, bool) {
	at := p.mark()

	name, ok := p.funcName()
	if !ok {
		return nil, false
	}

	save := p.mark()

	p.skipSpace()

	if p.peek() != '(' {
		p.fail(TokenLParen)
		p.reset(save)

		return &Call{Name: name, At: at}, true
	}

	args, ok := p.callArgs()
	if !ok {
		p.reset(at)

		return nil, false
	}

	return &Call{Name: name, Args: args, At: at}, true
}

func (p *parser) binaryOp() (BinaryOp, bool) {
	p.skipSpace()

	for _, cand := range [...]struct {
		sym string
		tok Token
		op  BinaryOp
	}{
		{"+", TokenPlus, OpAdd},
		{"-", TokenMinus, OpSub},
		{"*", TokenStar, OpMul},
		{"/", TokenSlash, OpDiv},
	} {
		if p.literal(cand.sym, cand.tok) {
			return cand.op, true
		}
	}

	return 0, false
}

// climber combines a flat operand/operator list. ops[i] sits between
// operands[i] and operands[i+1].
type climber struct {
	operands []Expr
	ops      []BinaryOp
	next     int
}

func (c *climber) climb(minPrec int) Expr {
	lhs := c.operands[c.next]

	for c.next < len(c.ops) {
		op := c.ops[c.next]

		info := opTable[op]
		if info.prec < minPrec {
			break
		}

		c.next++

		nextMin := info.prec + 1
		if info.assoc == assocRight {
			nextMin = info.prec
		}

		rhs := c.climb(nextMin)
		lhs = &Binary{Op: op, Left: lhs, Right: rhs, At: lhs.Pos()}
	}

	return lhs
}
