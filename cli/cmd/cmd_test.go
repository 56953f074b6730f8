package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

// writeSource writes content to a file in a temporary directory and returns
// its path.
func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

// testContext returns a context that reads stdin from stdin and collects
// command output in the returned buffer.
func testContext(t *testing.T, stdin string) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithOutput(t.Context(), &out)
	ctx = WithStdin(ctx, strings.NewReader(stdin))

	return ctx, &out
}

func TestOutputFrom(t *testing.T) {
	t.Parallel()

	if w := outputFrom(context.Background()); w != os.Stdout {
		t.Errorf("outputFrom(empty) = %v, want os.Stdout", w)
	}

	var buf bytes.Buffer
	if w := outputFrom(WithOutput(context.Background(), &buf)); w != &buf {
		t.Errorf("outputFrom() = %v, want the stored writer", w)
	}
}

func TestOpenSource(t *testing.T) {
	t.Parallel()

	ctx, _ := testContext(t, "from stdin")

	r, err := openSource(ctx, stdinSource)
	if err != nil {
		t.Fatal(err)
	}

	data, _ := io.ReadAll(r)
	if string(data) != "from stdin" {
		t.Errorf("stdin = %q", data)
	}

	path := writeSource(t, "a.fc", "from file")

	r, err = openSource(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	data, _ = io.ReadAll(r)
	if string(data) != "from file" {
		t.Errorf("file = %q", data)
	}

	_, err = openSource(ctx, filepath.Join(t.TempDir(), "missing.fc"))
	if !errors.Is(err, ErrOpenSource) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrOpenSource wrapping ErrNotExist", err)
	}
}

func TestUniqueSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.fc")
	b := filepath.Join(dir, "b.fc")
	link := filepath.Join(dir, "link.fc")
	missing := filepath.Join(dir, "missing.fc")

	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("x = 1"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.Symlink(a, link); err != nil {
		t.Skipf("symlink: %v", err)
	}

	got := uniqueSources([]string{a, "-", b, link, a, "-", missing})
	want := []string{a, "-", b, missing}

	if !slices.Equal(got, want) {
		t.Errorf("uniqueSources() = %q, want %q", got, want)
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := ErrWriteOutput.Wrap(cause)

	if err.Error() != "write output: boom" {
		t.Errorf("Error() = %q", err.Error())
	}

	if !errors.Is(err, ErrWriteOutput) || !errors.Is(err, cause) {
		t.Errorf("errors.Is failed for %v", err)
	}

	if errors.Is(err, ErrOpenSource) {
		t.Error("different sentinels must not match")
	}
}
