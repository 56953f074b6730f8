package lang

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseReader parses a document from an io.Reader.
// The reader is consumed completely before parsing begins.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// ParseString parses a document from a string.
//
// On failure the returned error is a [*SyntaxError] positioned at the
// farthest point any grammar alternative reached.
func ParseString(ctx context.Context, s string, opts ...Option) (*Document, error) {
	cfg := makeConfig(opts...)

	cfg.logger.TraceContext(ctx, "parse start",
		slog.Int("bytes", len(s)))

	p := newParser(s)

	doc, ok := p.document()
	if !ok {
		err := p.syntaxError()

		cfg.logger.TraceContext(ctx, "parse failed",
			slog.Any("error", err))

		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("statement_count", len(doc.Statements)))

	return doc, nil
}

// ParseExpr parses s as a single expression.
func ParseExpr(ctx context.Context, s string, opts ...Option) (Expr, error) {
	cfg := makeConfig(opts...)

	p := newParser(s)

	expr, ok := p.expression()
	if ok {
		p.skipSpace()

		if !p.eof() {
			ok = p.fail(TokenEOF)
		}
	}

	if !ok {
		err := p.syntaxError()

		cfg.logger.TraceContext(ctx, "parse expression failed",
			slog.Any("error", err))

		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse expression complete",
		slog.String("expr", FormatExpr(expr)))

	return expr, nil
}

// document parses: statement* EOF.
func (p *parser) document() (*Document, bool) {
	doc := &Document{Statements: make([]Statement, 0)}

	for {
		save := p.mark()

		st, ok := p.statement()
		if !ok {
			p.reset(save)

			break
		}

		doc.Statements = append(doc.Statements, st)
	}

	p.skipSpace()

	if !p.eof() {
		return nil, p.fail(TokenEOF)
	}

	return doc, true
}

// parser holds the state of a single parse. A parser is never shared.
type parser struct {
	src string
	pos Position

	// Farthest failure seen so far and the token kinds attempted there.
	far  Position
	want tokenSet
}

func newParser(s string) *parser {
	start := Position{Offset: 0, Line: 1, Column: 1}

	return &parser{src: s, pos: start, far: start}
}

// tokenSet is a bit set of Token values.
type tokenSet uint32

func (s tokenSet) add(t Token) tokenSet { return s | 1<<uint(t) }

func (s tokenSet) tokens() []Token {
	var out []Token

	for t := TokenEOF; t <= TokenSlash; t++ {
		if s&(1<<uint(t)) != 0 {
			out = append(out, t)
		}
	}

	return out
}

// fail records that tok was expected at the current position. It always
// returns false so callers can write "return p.fail(tok)".
func (p *parser) fail(tok Token) bool {
	switch {
	case p.pos.Offset > p.far.Offset:
		p.far = p.pos
		p.want = tokenSet(0).add(tok)
	case p.pos.Offset == p.far.Offset:
		p.want = p.want.add(tok)
	}

	return false
}

func (p *parser) syntaxError() *SyntaxError {
	found := "end of input"
	if p.far.Offset < len(p.src) {
		r, _ := utf8.DecodeRuneInString(p.src[p.far.Offset:])
		found = strconv.QuoteRune(r)
	}

	return &SyntaxError{
		Pos:      p.anchor(p.far),
		Expected: p.want.tokens(),
		Found:    found,
		Source:   p.src,
	}
}

// anchor moves a failure at end of input back over trailing whitespace, so
// the error points just past the last token instead of at an empty line.
func (p *parser) anchor(pos Position) Position {
	if pos.Offset < len(p.src) {
		return pos
	}

	end := len(strings.TrimRightFunc(p.src, unicode.IsSpace))
	if end == pos.Offset {
		return pos
	}

	at := newParser(p.src[:end])
	for !at.eof() {
		at.advance()
	}

	return at.pos
}

// Helper methods

func (p *parser) mark() Position { return p.pos }

func (p *parser) reset(pos Position) { p.pos = pos }

func (p *parser) rest() string { return p.src[p.pos.Offset:] }

func (p *parser) eof() bool { return p.pos.Offset >= len(p.src) }

// peek returns the next rune, or -1 at end of input.
func (p *parser) peek() rune {
	if p.eof() {
		return -1
	}

	r, _ := utf8.DecodeRuneInString(p.rest())

	return r
}

func (p *parser) advance() {
	if p.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(p.rest())

	p.pos.Offset += size
	if r == '\n' {
		p.pos.Line++
		p.pos.Column = 1
	} else {
		p.pos.Column++
	}
}

// literal consumes s if the input continues with it.
func (p *parser) literal(s string, tok Token) bool {
	if !strings.HasPrefix(p.rest(), s) {
		return p.fail(tok)
	}

	for range utf8.RuneCountInString(s) {
		p.advance()
	}

	return true
}

// token skips whitespace and then consumes s.
func (p *parser) token(s string, tok Token) bool {
	p.skipSpace()

	return p.literal(s, tok)
}

// keyword consumes kw only if it is not immediately followed by a letter or
// digit.
func (p *parser) keyword(kw string, tok Token) bool {
	rest := p.rest()
	if !strings.HasPrefix(rest, kw) {
		return p.fail(tok)
	}

	if r, _ := utf8.DecodeRuneInString(rest[len(kw):]); isLetter(r) || isDigit(r) {
		return p.fail(tok)
	}

	return p.literal(kw, tok)
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}
