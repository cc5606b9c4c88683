package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("UIKIT_CONFIG_PATH", dir)
	t.Setenv("UIKIT_SKINS", "")
	t.Chdir(t.TempDir())
	return dir
}

func TestSubcommands(t *testing.T) {
	cmd := New()
	want := map[string]bool{"render": false, "inspect": false, "skins": false, "play": false, "version": false}
	for _, c := range cmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("expected subcommand %q", name)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"render"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), `id="age"`) {
		t.Fatalf("expected demo markup, got %q", out.String())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := isolate(t)
	skins := filepath.Join(dir, "skins")
	if err := os.MkdirAll(skins, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(skins, "tpl_label.html"), []byte(`<b>{{.caption}}</b>`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UIKIT_SKINS", skins)

	e, err := loadEnv(true)
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	if len(e.overrides) != 1 || e.overrides[0] != "#tpl_label" {
		t.Fatalf("unexpected overrides %v", e.overrides)
	}
}

func TestLoadEnvMissingSkinsDir(t *testing.T) {
	dir := isolate(t)
	t.Setenv("UIKIT_SKINS", filepath.Join(dir, "absent"))
	e, err := loadEnv(true)
	if err != nil {
		t.Fatalf("expected a missing skins dir to be ignored: %v", err)
	}
	if len(e.overrides) != 0 {
		t.Fatalf("unexpected overrides %v", e.overrides)
	}
}
