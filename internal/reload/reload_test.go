package reload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/chartcfg/internal/defaults"
	"github.com/dshills/chartcfg/internal/loader"
	"github.com/dshills/chartcfg/internal/native"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func setupBundle(t *testing.T) (dir, manifest string) {
	t.Helper()
	dir = t.TempDir()
	manifest = filepath.Join(dir, "bundle.yaml")
	writeFile(t, manifest, "version: 1\nglobal: [base.toml]\n")
	writeFile(t, filepath.Join(dir, "base.toml"), "[font]\nsize = 14\n")
	return dir, manifest
}

func fontSize(ctx *defaults.Context) native.Value {
	v, _, _ := ctx.ChartChain("line").LookupPath(nil, "font.size")
	return v
}

// runUntilReload starts r, rewrites path with content until a reload is
// reported, then stops r and returns the result.
func runUntilReload(t *testing.T, r *Reloader, path, content string) Result {
	t.Helper()
	results := make(chan Result, 8)
	r.OnReload(func(res Result) { results <- res })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	var res Result
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		select {
		case res = <-results:
			break wait
		case <-tick.C:
			writeFile(t, path, content)
		case err := <-done:
			cancel()
			t.Fatalf("Run() returned early: %v", err)
		case <-deadline:
			cancel()
			t.Fatal("no reload within 5s")
		}
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return res
}

func TestReloader_Reload(t *testing.T) {
	dir, manifest := setupBundle(t)
	target := defaults.NewContext()
	r := New(manifest, loader.New(), target)

	if err := r.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := fontSize(target); !native.Equal(got, native.Int(14)) {
		t.Errorf("font.size = %v, want 14", got)
	}

	tracked := r.Tracked()
	want := []string{filepath.Join(dir, "base.toml"), filepath.Join(dir, "bundle.yaml")}
	if len(tracked) != len(want) || tracked[0] != want[0] || tracked[1] != want[1] {
		t.Errorf("Tracked() = %v, want %v", tracked, want)
	}
}

func TestReloader_RunReloadsOnChange(t *testing.T) {
	dir, manifest := setupBundle(t)
	target := defaults.NewContext()
	r := New(manifest, loader.New(), target, WithDebounce(10*time.Millisecond))

	res := runUntilReload(t, r, filepath.Join(dir, "base.toml"), "[font]\nsize = 16\n")
	if res.Err != nil {
		t.Fatalf("reload error = %v", res.Err)
	}
	if len(res.Files) == 0 || res.Files[0] != filepath.Join(dir, "base.toml") {
		t.Errorf("Files = %v", res.Files)
	}
	if got := fontSize(target); !native.Equal(got, native.Int(16)) {
		t.Errorf("font.size = %v, want 16", got)
	}
}

func TestReloader_RunKeepsDefaultsOnError(t *testing.T) {
	dir, manifest := setupBundle(t)
	target := defaults.NewContext()
	r := New(manifest, loader.New(), target, WithDebounce(10*time.Millisecond))

	res := runUntilReload(t, r, filepath.Join(dir, "base.toml"), "[font]\nsize = \"huge\"\n")
	if res.Err == nil {
		t.Fatal("reload of an invalid document succeeded")
	}
	if got := fontSize(target); !native.Equal(got, native.Int(14)) {
		t.Errorf("font.size = %v, want the previous 14", got)
	}
}

func TestReloader_RunInitialError(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "missing.yaml"), loader.New(), defaults.NewContext())
	if err := r.Run(context.Background()); err == nil {
		t.Error("Run() with a missing manifest should fail")
	}
}
