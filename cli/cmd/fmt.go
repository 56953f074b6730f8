package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/funcad/lang"
	"github.com/ardnew/funcad/log"
)

// Fmt parses a document and prints it in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as canonical funcad source (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
	Tree   Tree   `cmd:""                    help:"Format as an indented syntax tree."`
}

// Native formats input as canonical funcad source.
type Native struct {
	Write bool `help:"Write the result back to the source file instead of stdout." short:"w"`

	Input
}

// Run executes the native format command.
func (n *Native) Run(ctx context.Context) error {
	doc, err := n.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "native"))
	}

	if !n.Write || n.Source == stdinSource {
		return writeOutput(ctx, func(w io.Writer) error { return doc.Format(ctx, w) })
	}

	var buf bytes.Buffer
	if err := doc.Format(ctx, &buf); err != nil {
		return err
	}

	info, err := os.Stat(n.Source)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	if err := os.WriteFile(n.Source, buf.Bytes(), info.Mode().Perm()); err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("path", n.Source))
	}

	log.DebugContext(ctx, "source rewritten",
		slog.String("path", n.Source),
		slog.Int("statement_count", len(doc.Statements)))

	return nil
}

// JSON formats input as JSON.
type JSON struct {
	Indent int `default:"2" help:"Indent width; 0 prints compact output." short:"i"`

	Input
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	doc, err := j.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "json"))
	}

	return writeOutput(ctx, func(w io.Writer) error {
		return doc.FormatJSON(ctx, w, j.Indent)
	})
}

// YAML formats input as YAML.
type YAML struct {
	Indent int `default:"2" help:"Indent width; 0 prints flow style." short:"i"`

	Input
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	doc, err := y.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "yaml"))
	}

	return writeOutput(ctx, func(w io.Writer) error {
		return doc.FormatYAML(ctx, w, y.Indent)
	})
}

// Tree formats input as an indented syntax tree with node positions.
type Tree struct {
	Input
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) error {
	doc, err := t.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("format", "tree"))
	}

	return writeOutput(ctx, func(w io.Writer) error { return doc.FormatTree(ctx, w) })
}

func writeOutput(ctx context.Context, fn func(io.Writer) error) error {
	if err := fn(outputFrom(ctx)); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
