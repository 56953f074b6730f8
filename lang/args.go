package lang

// callArgs parses a parenthesized argument list. The form is chosen from the
// first argument: "()" is empty, "identifier =" starts a named list, and
// anything else starts a positional list. Once chosen, the list must be
// completed in that form.
func (p *parser) callArgs() (CallArgs, bool) {
	at := p.mark()

	if !p.token("(", TokenLParen) {
		return nil, false
	}

	if p.token(")", TokenRParen) {
		return EmptyArgs{}, true
	}

	var (
		args CallArgs
		ok   bool
	)

	if p.namedAhead() {
		args, ok = p.namedArgs()
	} else {
		args, ok = p.positionalArgs()
	}

	if !ok {
		p.reset(at)

		return nil, false
	}

	return args, true
}

// namedAhead reports whether the input continues with "identifier =" without
// consuming anything.
func (p *parser) namedAhead() bool {
	save := p.mark()
	defer p.reset(save)

	p.skipSpace()

	if _, ok := p.identifier(); !ok {
		return false
	}

	return p.token("=", TokenAssign)
}

func (p *parser) namedArgs() (NamedArgs, bool) {
	var args NamedArgs

	for {
		p.skipSpace()

		at := p.mark()

		name, ok := p.identifier()
		if !ok || !p.token("=", TokenAssign) {
			return nil, false
		}

		value, ok := p.expression()
		if !ok {
			return nil, false
		}

		args = append(args, NamedArg{Name: name, Value: value, At: at})

		if more, ok := p.listNext(); !more {
			return args, ok
		}
	}
}

func (p *parser) positionalArgs() (PositionalArgs, bool) {
	var args PositionalArgs

	for {
		value, ok := p.expression()
		if !ok {
			return nil, false
		}

		args = append(args, value)

		if more, ok := p.listNext(); !more {
			return args, ok
		}
	}
}

// listNext consumes the separator after a list element. It returns
// more=true after ",", and ok=true after the closing ")".
func (p *parser) listNext() (more, ok bool) {
	if p.token(",", TokenComma) {
		return true, true
	}

	return false, p.token(")", TokenRParen)
}
