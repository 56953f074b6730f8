package cmd

import (
	"context"
	"io"
	"os"

	"github.com/ardnew/funcad/cli/cmd/repl"
	"github.com/ardnew/funcad/log"
)

// Repl starts an interactive session for entering statements and inspecting
// expressions.
type Repl struct {
	History bool   `default:"true"     help:"Keep history in the cache directory." negatable:""`
	Cache   string `default:"${cache}" help:"Cache directory."                      hidden:""    type:"path"`

	Source string `arg:"" help:"Source file to preload into the session." optional:"" type:"existingfile"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	cfg := repl.Config{Logger: log.Default()}

	if r.History {
		cfg.CacheDir = r.Cache
	}

	if r.Source != "" {
		f, err := os.Open(r.Source)
		if err != nil {
			return ErrOpenSource.Wrap(err)
		}
		defer f.Close()

		cfg.Source = f
	}

	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok {
		cfg.Output = w
		cfg.Input = stdinFrom(ctx)
	}

	if err := repl.Run(ctx, cfg); !repl.IsExit(err) {
		return err
	}

	return nil
}
