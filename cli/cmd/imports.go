package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/ardnew/funcad/lang"
)

// Imports lists the import statements of a document, one per line:
// position, path, parent directory count and alias.
type Imports struct {
	Input
}

// Run executes the imports command.
func (i *Imports) Run(ctx context.Context) error {
	doc, err := i.parse(ctx)
	if err != nil {
		return lang.WrapError(err).With(slog.String("command", "imports"))
	}

	tw := tabwriter.NewWriter(outputFrom(ctx), 0, 4, 2, ' ', 0)

	for im := range doc.Imports() {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", im.At, im, im.Up, im.Alias())
	}

	if err := tw.Flush(); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
