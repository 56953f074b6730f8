package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrSyntax    = NewError("syntax error")
	ErrReadInput = NewError("failed to read input")
	ErrFormat    = NewError("failed to format output")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError returns err itself when it is an *Error, otherwise an Error with
// err as its cause. A *SyntaxError is kept as the cause, never replaced by
// the [ErrSyntax] sentinel it unwraps to.
func WrapError(err error) *Error {
	if ee, ok := err.(*Error); ok {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// "<msg>: <err>", "<msg>", or "<err>" depending on which are set.
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an Error with the same message, so that
// errors derived from a sentinel with [Error.Wrap] or [Error.With] still
// match it.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.msg != "" && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance; the receiver is not modified.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// Token identifies a kind of token or construct the parser can accept.
type Token int

const (
	TokenEOF        Token = iota // end of input
	TokenIdentifier              // identifier
	TokenNumber                  // number
	TokenImport                  // "import"
	TokenParent                  // "../"
	TokenAssign                  // "="
	TokenLParen                  // "("
	TokenRParen                  // ")"
	TokenComma                   // ","
	TokenDot                     // "."
	TokenPlus                    // "+"
	TokenMinus                   // "-"
	TokenStar                    // "*"
	TokenSlash                   // "/"
)

// SyntaxError reports the farthest position the parser reached and the token
// kinds that would have been accepted there.
type SyntaxError struct {
	Pos      Position
	Expected []Token // sorted, without duplicates
	Found    string  // text at Pos, or "end of input"
	Source   string  // the complete input, used to render a snippet
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	var buf strings.Builder

	buf.WriteString("syntax error at line ")
	buf.WriteString(strconv.Itoa(e.Pos.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Pos.Column))
	buf.WriteString(": expected ")
	buf.WriteString(e.expectedList())
	buf.WriteString(", found ")
	buf.WriteString(e.Found)

	if snippet := e.Snippet(); snippet != "" {
		buf.WriteString("\n")
		buf.WriteString(snippet)
	}

	return buf.String()
}

// Unwrap returns [ErrSyntax] so that errors.Is(err, ErrSyntax) holds.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// LogValue implements slog.LogValuer.
func (e *SyntaxError) LogValue() slog.Value {
	expected := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		expected[i] = t.String()
	}

	return slog.GroupValue(
		slog.String("error", ErrSyntax.msg),
		slog.Int("line", e.Pos.Line),
		slog.Int("column", e.Pos.Column),
		slog.Int("offset", e.Pos.Offset),
		slog.Any("expected", expected),
		slog.String("found", e.Found),
	)
}

// Snippet returns the offending source line with a caret under the error
// column, or "" if the source is unavailable.
func (e *SyntaxError) Snippet() string {
	lines := strings.Split(e.Source, "\n")
	if e.Source == "" || e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return ""
	}

	var src strings.Builder

	lineNum := strconv.Itoa(e.Pos.Line)

	src.WriteString("  ")
	src.WriteString(lineNum)
	src.WriteString(" | ")
	src.WriteString(strings.TrimRight(lines[e.Pos.Line-1], "\r"))
	src.WriteRune('\n')

	// 2 leading spaces + " | " (3 chars)
	padding := strings.Repeat(" ", len(lineNum)+5)
	if e.Pos.Column > 0 {
		padding += strings.Repeat(" ", e.Pos.Column-1)
	}

	src.WriteString(padding + "^")

	return src.String()
}

func (e *SyntaxError) expectedList() string {
	switch len(e.Expected) {
	case 0:
		return "nothing"
	case 1:
		return e.Expected[0].String()
	}

	part := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		part[i] = t.String()
	}

	return strings.Join(part[:len(part)-1], ", ") + " or " + part[len(part)-1]
}
