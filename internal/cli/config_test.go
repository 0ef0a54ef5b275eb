package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/treestack/pkg/errors"
	"github.com/matzehuels/treestack/pkg/session"
	"github.com/matzehuels/treestack/pkg/tree"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
tree = "complete"
duplicates = "record"
status_ttl = "3s"

[layout]
level_height = 100

[render]
formats = ["svg", "json"]
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Tree != "complete" || cfg.Duplicates != "record" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.StatusTTL != 3*time.Second {
		t.Errorf("StatusTTL = %v, want 3s", cfg.StatusTTL)
	}
	if cfg.Layout.LevelHeight != 100 {
		t.Errorf("LevelHeight = %v, want 100", cfg.Layout.LevelHeight)
	}
	if cfg.Layout.MinNodeWidth != 40 {
		t.Errorf("MinNodeWidth = %v, want default 40", cfg.Layout.MinNodeWidth)
	}
	if len(cfg.Render.Formats) != 2 || cfg.Render.PNGScale != defaultPNGScale {
		t.Errorf("Render = %+v", cfg.Render)
	}
}

func TestLoadConfigKeepsExplicitZeros(t *testing.T) {
	path := writeConfig(t, "[layout]\nlevel_decay = 0\nmin_level_factor = 0\nhorizontal_spacing = 0\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	l := cfg.Layout
	if l.LevelDecay != 0 || l.MinLevelFactor != 0 || l.HorizontalSpacing != 0 {
		t.Errorf("Layout = %+v, want explicit zeros kept", l)
	}
	if l.LevelHeight != 80 || l.MinNodeWidth != 40 {
		t.Errorf("Layout = %+v, want unset keys at defaults", l)
	}
	if got := l.LevelFactor(5); got != 1 {
		t.Errorf("LevelFactor(5) = %v, want 1 with no decay", got)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() with no file error = %v", err)
	}
	if cfg.Tree != string(tree.KindBST) || cfg.StatusTTL != session.DefaultStatusTTL {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte(`tree = "complete"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Tree != "complete" {
		t.Errorf("Tree = %q, want complete", cfg.Tree)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `tree = `},
		{"unknown key", `colour = "red"`},
		{"bad kind", `tree = "avl"`},
		{"bad policy", `duplicates = "merge"`},
		{"negative ttl", `status_ttl = "-1s"`},
		{"zero ttl", `status_ttl = "0s"`},
		{"zero node width", "[layout]\nmin_node_width = 0"},
		{"bad factor", "[layout]\nmin_level_factor = 1.5"},
		{"bad format", "[render]\nformats = [\"gif\"]"},
		{"bad type", "[render]\ntypes = [\"tower\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("loadConfig() expected error")
			}
		})
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("loadConfig() error = %v, want INVALID_CONFIG", err)
	}
}

func TestSessionOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tree = "complete"

	opts, err := cfg.sessionOptions("")
	if err != nil {
		t.Fatal(err)
	}
	if got := session.New(opts...).Kind(); got != tree.KindComplete {
		t.Errorf("Kind() = %v, want complete", got)
	}

	opts, err = cfg.sessionOptions("bst")
	if err != nil {
		t.Fatal(err)
	}
	if got := session.New(opts...).Kind(); got != tree.KindBST {
		t.Errorf("flag override: Kind() = %v, want bst", got)
	}

	if _, err := cfg.sessionOptions("heap"); err == nil {
		t.Error("sessionOptions() expected error for unknown kind")
	}
}
