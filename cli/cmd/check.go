package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/funcad/log"
)

// Check parses each source and reports every one that fails.
type Check struct {
	Quiet bool `help:"Print only the names of failing sources." short:"q"`

	Sources []string `arg:"" default:"-" help:"Source files or '-' for stdin." name:"source"`
}

// Run executes the check command. It fails with [ErrCheckFailed] when any
// source could not be read or parsed.
func (c *Check) Run(ctx context.Context) error {
	w := outputFrom(ctx)
	sources := uniqueSources(c.Sources)
	failed := 0

	for _, src := range sources {
		doc, err := parseSource(ctx, src)
		if err != nil {
			failed++

			if c.Quiet {
				_, err = fmt.Fprintln(w, sourceName(src))
			} else {
				_, err = fmt.Fprintf(w, "%s: %v\n", sourceName(src), err)
			}

			if err != nil {
				return ErrWriteOutput.Wrap(err)
			}

			continue
		}

		log.DebugContext(ctx, "source ok",
			slog.String("source", sourceName(src)),
			slog.Int("statement_count", len(doc.Statements)))
	}

	if failed > 0 {
		return ErrCheckFailed.With(
			slog.Int("failed", failed),
			slog.Int("total", len(sources)),
		)
	}

	return nil
}
