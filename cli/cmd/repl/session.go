package repl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/funcad/lang"
	"github.com/ardnew/funcad/log"
)

// Session accumulates the statements entered during a REPL session.
//
// A definition replaces any earlier definition with the same name. Imports
// are kept once per path.
type Session struct {
	doc    *lang.Document
	logger log.Logger
}

// Result is the outcome of evaluating one input line. Exactly one of
// Statements and Expr is set.
type Result struct {
	Statements []lang.Statement
	Expr       lang.Expr
}

// NewSession returns an empty session that logs through logger.
func NewSession(logger log.Logger) *Session {
	return &Session{
		doc:    &lang.Document{Statements: make([]lang.Statement, 0)},
		logger: logger,
	}
}

// Load parses a whole document from r and adds its statements.
func (s *Session) Load(ctx context.Context, r io.Reader) error {
	doc, err := lang.ParseReader(ctx, r, lang.WithLogger(s.logger))
	if err != nil {
		return err
	}

	s.add(doc.Statements)

	s.logger.DebugContext(ctx, "session loaded",
		slog.Int("statement_count", len(doc.Statements)))

	return nil
}

// Eval parses line as one or more statements and adds them to the session.
// If line is not a statement list it is parsed as a single expression, which
// is returned without changing the session.
//
// When both parses fail, the syntax error that got farther into line is
// returned.
func (s *Session) Eval(ctx context.Context, line string) (Result, error) {
	if strings.TrimSpace(line) == "" {
		return Result{}, ErrEmptyInput
	}

	doc, stmtErr := lang.ParseString(ctx, line, lang.WithLogger(s.logger))
	if stmtErr == nil && len(doc.Statements) > 0 {
		s.add(doc.Statements)

		return Result{Statements: doc.Statements}, nil
	}

	expr, exprErr := lang.ParseExpr(ctx, line, lang.WithLogger(s.logger))
	if exprErr == nil {
		return Result{Expr: expr}, nil
	}

	return Result{}, farthest(stmtErr, exprErr)
}

func farthest(stmtErr, exprErr error) error {
	var se, ee *lang.SyntaxError

	if !errors.As(stmtErr, &se) {
		return exprErr
	}

	if errors.As(exprErr, &ee) && ee.Pos.Offset > se.Pos.Offset {
		return exprErr
	}

	return stmtErr
}

func (s *Session) add(stmts []lang.Statement) {
	for _, st := range stmts {
		switch st := st.(type) {
		case *lang.Import:
			if !slices.ContainsFunc(s.doc.Statements, func(o lang.Statement) bool {
				im, ok := o.(*lang.Import)

				return ok && im.String() == st.String()
			}) {
				s.doc.Statements = append(s.doc.Statements, st)
			}

		case *lang.FuncDef:
			i := slices.IndexFunc(s.doc.Statements, func(o lang.Statement) bool {
				def, ok := o.(*lang.FuncDef)

				return ok && def.Name == st.Name
			})
			if i < 0 {
				s.doc.Statements = append(s.doc.Statements, st)
			} else {
				s.doc.Statements[i] = st
			}
		}
	}
}

// Document returns the session's statements as a document.
func (s *Session) Document() *lang.Document { return s.doc }

// Len returns the number of statements in the session.
func (s *Session) Len() int { return len(s.doc.Statements) }

// Clear removes every statement.
func (s *Session) Clear() { s.doc.Statements = s.doc.Statements[:0] }

// Names returns the sorted completion candidates: defined names and import
// aliases.
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.doc.Statements))

	for im := range s.doc.Imports() {
		names = append(names, im.Alias())
	}

	for def := range s.doc.Definitions() {
		names = append(names, def.Name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// Definition returns the definition of name, if any.
func (s *Session) Definition(name string) (*lang.FuncDef, bool) {
	return s.doc.Definition(name)
}
