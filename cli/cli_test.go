package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/funcad/cli/cmd"
	"github.com/ardnew/funcad/log"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "funcad-cli-test-*")
	if err != nil {
		panic(err)
	}

	for key, val := range map[string]string{
		"HOME":            dir,
		"XDG_CONFIG_HOME": filepath.Join(dir, "config"),
		"XDG_CACHE_HOME":  filepath.Join(dir, "cache"),
	} {
		if err := os.Setenv(key, val); err != nil {
			panic(err)
		}
	}

	code := m.Run()

	_ = os.RemoveAll(dir)

	os.Exit(code)
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	keepDefaultLogger(t)

	var out bytes.Buffer

	ctx := cmd.WithOutput(context.Background(), &out)
	ctx = cmd.WithStdin(ctx, strings.NewReader(stdin))

	exit := func(code int) { t.Fatalf("unexpected exit(%d)", code) }

	err := Run(ctx, exit, append([]string{"--log-level=error"}, args...)...)

	return out.String(), err
}

func TestRun_Fmt(t *testing.T) {
	got, err := run(t, "f( x )=x+1", "fmt")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got != "f(x) = x + 1\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_FmtJSON(t *testing.T) {
	got, err := run(t, "x = 1", "fmt", "json", "--indent=0")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.HasPrefix(got, `{"statements":[{`) {
		t.Errorf("output = %q", got)
	}
}

func TestRun_Check(t *testing.T) {
	_, err := run(t, "x = 1", "check")
	if err != nil {
		t.Errorf("Run(check ok) error = %v", err)
	}

	out, err := run(t, "x = ", "check")
	if !errors.Is(err, cmd.ErrCheckFailed) {
		t.Errorf("Run(check bad) error = %v, want ErrCheckFailed", err)
	}

	if !strings.HasPrefix(out, "<stdin>: syntax error at line 1, column 4") {
		t.Errorf("output = %q", out)
	}
}

func TestRun_Imports(t *testing.T) {
	got, err := run(t, "import ../a/b", "imports")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(got, "../a/b") || !strings.HasSuffix(got, "b\n") {
		t.Errorf("output = %q", got)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	if _, err := run(t, "", "bogus"); err == nil {
		t.Error("Run(bogus) should fail")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := configPath(baseConfig + ".yaml")

	if err := mkdirAllRequired(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("log:\n  format: json\n  caller: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Remove(path) })

	if _, err := run(t, "x = 1", "fmt"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	l := log.Default()
	if l.Format() != log.FormatJSON {
		t.Errorf("format = %v, want json from config file", l.Format())
	}

	if l.Level() != log.LevelError {
		t.Errorf("level = %v, want the command line value", l.Level())
	}
}
