package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firefly-engineering/hydra-pin/internal/hydra"
	"github.com/firefly-engineering/hydra-pin/internal/overlay"
)

func testCandidates() []hydra.Candidate {
	return []hydra.Candidate{
		{Key: "hello", Job: hydra.Job{Success: true, BuildID: "2", Name: "hello-2.12.1"}},
		{Key: "hello", Job: hydra.Job{Success: true, BuildID: "5", Status: "Succeeded"}},
	}
}

func TestBuildItemMethods(t *testing.T) {
	item := buildItem{candidate: testCandidates()[0]}

	t.Run("Title", func(t *testing.T) {
		if got := item.Title(); got != "build 2" {
			t.Errorf("Title() = %q, want %q", got, "build 2")
		}
	})

	t.Run("FilterValue", func(t *testing.T) {
		if got := item.FilterValue(); got != "2" {
			t.Errorf("FilterValue() = %q, want %q", got, "2")
		}
	})

	t.Run("Description", func(t *testing.T) {
		desc := item.Description()
		if !strings.Contains(desc, "hello-2.12.1") || !strings.Contains(desc, "Succeeded") {
			t.Errorf("Description() = %q", desc)
		}
	})
}

func TestPicker_EnterSelects(t *testing.T) {
	m := NewPicker("hello", testCandidates())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter should quit the picker")
	}

	chosen, ok := updated.(Model).Chosen()
	if !ok {
		t.Fatal("enter should select the highlighted build")
	}
	if chosen.Job.BuildID != "2" {
		t.Errorf("chosen = %+v, want build 2", chosen)
	}
}

func TestPicker_NavigateThenSelect(t *testing.T) {
	var m tea.Model = NewPicker("hello", testCandidates())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	chosen, ok := m.(Model).Chosen()
	if !ok || chosen.Job.BuildID != "5" {
		t.Errorf("chosen = %+v, %v; want build 5", chosen, ok)
	}
}

func TestPicker_QuitAborts(t *testing.T) {
	m := NewPicker("hello", testCandidates())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("q should quit the picker")
	}
	if _, ok := updated.(Model).Chosen(); ok {
		t.Error("quitting should not select a build")
	}
	if view := updated.(Model).View(); view != "" {
		t.Errorf("View after quit = %q, want empty", view)
	}
}

func TestBuildPicker_SingleCandidate(t *testing.T) {
	only := testCandidates()[:1]

	got, err := BuildPicker("hello")(only)
	if err != nil {
		t.Fatalf("BuildPicker failed: %v", err)
	}
	if got.Job.BuildID != "2" {
		t.Errorf("got %+v, want build 2", got)
	}
}

func TestPackageList(t *testing.T) {
	pkgs := []overlay.Package{
		{Name: "hello", URL: "https://github.com/NixOS/nixpkgs/archive/aaa.tar.gz", SHA256: "0hash1"},
		{Name: "jq", URL: "https://github.com/NixOS/nixpkgs/archive/bbb.tar.gz", SHA256: "0hash2"},
	}

	out := PackageList("/etc/nixos/pins.nix", pkgs)
	for _, want := range []string{"/etc/nixos/pins.nix", "1. ", "hello", "2. ", "jq", "archive/bbb.tar.gz", "0hash2"} {
		if !strings.Contains(out, want) {
			t.Errorf("PackageList output missing %q:\n%s", want, out)
		}
	}
}

func TestPackageList_Empty(t *testing.T) {
	out := PackageList("pins.nix", nil)
	if !strings.Contains(out, "No packages pinned") {
		t.Errorf("PackageList output = %q", out)
	}
}
