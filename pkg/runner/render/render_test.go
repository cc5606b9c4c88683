package render

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/uikit/pkg/skin"
)

func TestRenderDemo(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer
	r := Render{Skins: skin.Default(), Out: &out}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Demo\n") || !strings.Contains(out.String(), `<div id="submit" class="button`) {
		t.Fatalf("unexpected output\n%s", out.String())
	}
}

func TestWrap(t *testing.T) {
	got := Wrap(`<span class="a">one two three</span>`, 10)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Fatalf("line %q longer than 10", line)
		}
	}
	if Wrap("abc", 0) != "abc" {
		t.Fatal("expected zero width to leave text alone")
	}
}
