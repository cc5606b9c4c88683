package eventviewer

import (
	"strings"
	"testing"
)

func TestAppendNewestFirst(t *testing.T) {
	m := NewModel(2)
	m.Append(Entry{Source: "a", Summary: "one"})
	m.Append(Entry{Source: "b", Summary: "two"})
	m.Append(Entry{Summary: "three"})

	got := m.Entries()
	if len(got) != 2 {
		t.Fatalf("expected cap of 2 entries, got %d", len(got))
	}
	if got[0].Summary != "three" || got[1].Summary != "two" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].Source != "page" {
		t.Fatalf("expected default source, got %q", got[0].Source)
	}
	if got[0].Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be filled in")
	}
}

func TestViewRequiresSize(t *testing.T) {
	m := NewModel(10)
	if v := m.View(); v != "" {
		t.Fatalf("expected empty view before sizing, got %q", v)
	}
	m.SetSize(60, 6)
	m.Append(Entry{Source: "age", Summary: "sp:change:value", Detail: "31"})
	v := m.View()
	if !strings.Contains(v, "Events (1)") {
		t.Fatalf("expected header in view, got %q", v)
	}
	if !strings.Contains(v, "sp:change:value: 31") {
		t.Fatalf("expected entry in view, got %q", v)
	}
}

func TestClear(t *testing.T) {
	m := NewModel(10)
	m.SetSize(40, 5)
	m.Append(Entry{Summary: "x"})
	m.Clear()
	if len(m.Entries()) != 0 {
		t.Fatalf("expected no entries after clear")
	}
	if !strings.Contains(m.View(), "No events yet") {
		t.Fatalf("expected placeholder after clear")
	}
}
