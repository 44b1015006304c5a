package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/jifkit/pkg/observability"
)

// isolate points every XDG directory at a temp dir so tests neither read a
// user config nor write to the user cache.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Cleanup(observability.Reset)
	return dir
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	for _, name := range []string{"analyze", "presets", "serve", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestCachePathCommand(t *testing.T) {
	dir := isolate(t)
	_, root := newRoot()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"cache", "path"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if got, want := strings.TrimSpace(out.String()), filepath.Join(dir, "cache", appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "jifkit.toml")
	if err := os.WriteFile(path, []byte("siteswap_jugglers = 3\nlog_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(&bytes.Buffer{}, LogInfo)
	c.configPath = path
	if err := c.loadConfig(); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.cfg.SiteswapJugglers != 3 {
		t.Errorf("SiteswapJugglers = %d, want 3", c.cfg.SiteswapJugglers)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("log level = %v, want debug", c.Logger.GetLevel())
	}

	c.configPath = filepath.Join(dir, "missing.toml")
	if err := c.loadConfig(); err == nil {
		t.Error("loadConfig with a missing explicit file succeeded, want error")
	}

	c.configPath = ""
	if err := c.loadConfig(); err != nil {
		t.Errorf("loadConfig without a config file: %v", err)
	}
}

func TestAnalyzeCommandWritesArtifacts(t *testing.T) {
	dir := isolate(t)
	dot := filepath.Join(dir, "orbits.dot")
	pattern := filepath.Join(dir, "pattern.json")

	_, root := newRoot()
	root.SetIn(strings.NewReader("3B 3 3\n3A 3 3\n"))
	root.SetArgs([]string{"analyze", "-", "--no-cache", "--dot", dot, "--json", pattern})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	data, err := os.ReadFile(dot)
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("digraph G {")) {
		t.Errorf("dot = %q, want a digraph", data)
	}
	if _, err := os.Stat(pattern); err != nil {
		t.Errorf("json artifact: %v", err)
	}
}

func TestAnalyzeCommandErrors(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{
		{"analyze"},
		{"analyze", "3B 3 3\n3A 3", "--no-cache"},
		{"presets", "show", "missing"},
	} {
		_, root := newRoot()
		root.SetOut(&bytes.Buffer{})
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		if err := root.ExecuteContext(context.Background()); err == nil {
			t.Errorf("%v succeeded, want error", args)
		}
	}
}
