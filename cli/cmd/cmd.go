package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/ardnew/funcad/lang"
	"github.com/ardnew/funcad/log"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	outputKey struct{}
	stdinKey  struct{}
)

// WithOutput returns a context whose commands write their results to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// WithStdin returns a context whose commands read the "-" source from r.
func WithStdin(ctx context.Context, r io.Reader) context.Context {
	return context.WithValue(ctx, stdinKey{}, r)
}

// outputFrom returns the writer set by WithOutput, else the kong context's
// stdout, else os.Stdout.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

func stdinFrom(ctx context.Context) io.Reader {
	if r, ok := ctx.Value(stdinKey{}).(io.Reader); ok && r != nil {
		return r
	}

	return os.Stdin
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// sourceName returns the name of src used in messages.
func sourceName(src string) string {
	if src == stdinSource {
		return "<stdin>"
	}

	return src
}

// openSource opens the named file, or stdin for "-".
func openSource(ctx context.Context, src string) (io.ReadCloser, error) {
	if src == stdinSource {
		return io.NopCloser(stdinFrom(ctx)), nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, ErrOpenSource.Wrap(err)
	}

	return f, nil
}

// parseSource reads and parses the document in src.
func parseSource(ctx context.Context, src string) (*lang.Document, error) {
	r, err := openSource(ctx, src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return lang.ParseReader(ctx, r, lang.WithLogger(log.Default()))
}

// Input is embedded by commands that read a single document.
type Input struct {
	Source string `arg:"" default:"-" help:"Source file or '-' for stdin." name:"source"`
}

func (s Input) parse(ctx context.Context) (*lang.Document, error) {
	return parseSource(ctx, s.Source)
}

// fileKey uniquely identifies a file by its device and inode numbers.
type fileKey struct {
	dev uint64
	ino uint64
}

// uniqueSources drops repeated sources. Files are compared by device and
// inode, so symlinks and relative paths to the same file count once. Every
// "-" after the first is dropped. Paths that cannot be resolved are kept so
// that opening them reports the error.
func uniqueSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	seen := make(map[fileKey]struct{}, len(sources))
	stdin := false

	for _, src := range sources {
		if src == stdinSource {
			if !stdin {
				out = append(out, src)
			}

			stdin = true

			continue
		}

		key, ok := resolveFileKey(src)
		if ok {
			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		out = append(out, src)
	}

	return out
}

func resolveFileKey(path string) (fileKey, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fileKey{}, false
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fileKey{}, false
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fileKey{}, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
