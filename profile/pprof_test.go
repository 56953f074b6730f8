//go:build pprof

package profile_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/funcad/profile"
)

func TestStart_CPU(t *testing.T) {
	dir := t.TempDir()

	profile.New(
		profile.WithMode("cpu"),
		profile.WithDir(dir),
		profile.WithQuiet(true),
	).Start().Stop()

	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Errorf("profile not written: %v", err)
	}
}

func TestStart_NoHTTPHandlers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)

	if _, pattern := http.DefaultServeMux.Handler(req); pattern != "" {
		t.Errorf("unexpected handler registered for %q", pattern)
	}
}
