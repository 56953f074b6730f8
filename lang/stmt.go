package lang

const keywordImport = "import"

// statement parses one import or definition. The import form is tried first;
// when it does not match, "import" is an ordinary identifier.
func (p *parser) statement() (Statement, bool) {
	p.skipSpace()

	if im, ok := p.importStmt(); ok {
		return im, true
	}

	return p.funcDef()
}

func (p *parser) importStmt() (*Import, bool) {
	at := p.mark()

	if !p.keyword(keywordImport, TokenImport) {
		return nil, false
	}

	p.skipSpace()

	up, path, ok := p.fileName()
	if !ok {
		p.reset(at)

		return nil, false
	}

	return &Import{Up: up, Path: path, At: at}, true
}

func (p *parser) funcDef() (*FuncDef, bool) {
	at := p.mark()

	name, ok := p.identifier()
	if !ok {
		return nil, false
	}

	def := &FuncDef{Name: name, At: at}

	if p.token("(", TokenLParen) {
		if def.Args, ok = p.argDefs(); !ok {
			p.reset(at)

			return nil, false
		}
	}

	if !p.token("=", TokenAssign) {
		p.reset(at)

		return nil, false
	}

	if def.Body, ok = p.expression(); !ok {
		p.reset(at)

		return nil, false
	}

	return def, true
}

// argDefs parses the parameter list after "(". The first parameter decides
// whether every parameter is bare or carries a default.
func (p *parser) argDefs() ([]*ArgDef, bool) {
	var (
		defs      []*ArgDef
		defaulted bool
	)

	for {
		p.skipSpace()

		at := p.mark()

		name, ok := p.identifier()
		if !ok {
			return nil, false
		}

		arg := &ArgDef{Name: name, At: at}

		switch {
		case len(defs) == 0:
			defaulted = p.token("=", TokenAssign)
		case defaulted && !p.token("=", TokenAssign):
			return nil, false
		}

		if defaulted {
			if arg.Default, ok = p.expression(); !ok {
				return nil, false
			}
		}

		defs = append(defs, arg)

		if more, ok := p.listNext(); !more {
			if !ok {
				return nil, false
			}

			return defs, true
		}
	}
}
