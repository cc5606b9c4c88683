package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("UIKIT_CONFIG_PATH", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SkinsPath() != "" || cfg.LogFile() != "" || cfg.LogLevel() != "info" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Debounce() != 250*time.Millisecond {
		t.Fatalf("unexpected debounce %v", cfg.Debounce())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	doc := "skins: ~/skins\nlog:\n  file: /tmp/uikit.log\ndebounce: 100ms\n"
	if err := os.WriteFile(filepath.Join(dir, ".uikit.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UIKIT_CONFIG_PATH", dir)
	t.Setenv("UIKIT_LOG_LEVEL", "debug")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	home, _ := os.UserHomeDir()
	if cfg.SkinsPath() != filepath.Join(home, "skins") {
		t.Fatalf("expected expanded skins path, got %q", cfg.SkinsPath())
	}
	if cfg.LogFile() != "/tmp/uikit.log" || cfg.LogLevel() != "debug" || cfg.Debounce() != 100*time.Millisecond {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestStaticDefaults(t *testing.T) {
	var s Static
	if s.LogLevel() != "info" || s.Debounce() != 250*time.Millisecond {
		t.Fatalf("unexpected defaults %q %v", s.LogLevel(), s.Debounce())
	}
}

func TestWatchSkinsCoalesces(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := WatchSkins(ctx, dir, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	for _, name := range []string{"tpl_button.html", "notes.txt", "tpl_label.html"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<b>x</b>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.After(2 * time.Second)
	seen := map[string]bool{}
	for len(seen) < 2 {
		select {
		case evt := <-ch:
			for _, f := range evt.Files {
				if filepath.Ext(f) != ".html" {
					t.Fatalf("unexpected file %q", f)
				}
				seen[filepath.Base(f)] = true
			}
		case <-deadline:
			t.Fatalf("timed out waiting for skin changes, saw %v", seen)
		}
	}
}
